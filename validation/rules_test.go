package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonEmpty(t *testing.T) {
	rule := NonEmpty{}

	assert.Nil(t, rule.Check("Acme"))

	for _, v := range []string{"", "   ", "\t\n"} {
		err := rule.Check(v)
		assert.NotNil(t, err)
		assert.Equal(t, v, err.Value)
		assert.Equal(t, "NonEmpty", err.Rule)
	}
}
