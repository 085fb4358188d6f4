package configuration

// Key names a single configuration value
type Key string

// Keys understood by the client libraries
const (
	BaseURL        Key = "base_url"
	APIKey         Key = "api_key"
	Token          Key = "token"
	TimeoutSeconds Key = "timeout_seconds"
	PageLimit      Key = "page_limit"
)

// ConfigStorage ...
type ConfigStorage interface {
	Get(key Key) (string, error)
	Set(key Key, val string) error
}
