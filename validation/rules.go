package validation

import (
	"fmt"
	"strings"
)

// Error reports a rejected argument together with the rule that rejected it
type Error struct {
	Value string
	Rule  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation: value %q violates rule %q", e.Value, e.Rule)
}

// Rule checks a single string argument before it is sent to the API
type Rule interface {
	Check(value string) *Error
}

// NonEmpty rejects empty and all-whitespace values
type NonEmpty struct{}

// Check ...
func (NonEmpty) Check(value string) *Error {
	if strings.TrimSpace(value) == "" {
		return &Error{Value: value, Rule: "NonEmpty"}
	}
	return nil
}
