package orgs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskboard-io/taskboard-libraries/configuration"
)

func testConfig(t *testing.T) *configuration.Configuration {
	s := configuration.NewLocalConfigStorage()
	cfg := configuration.NewProvider(s)
	assert.NoError(t, cfg.Set(configuration.BaseURL, "https://api.taskboard.io/1"))
	assert.NoError(t, cfg.Set(configuration.APIKey, "k123"))
	assert.NoError(t, cfg.Set(configuration.Token, "t456"))
	return cfg
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(testConfig(t), "abc123")
	assert.NoError(t, err)

	col := client.Organizations()
	assert.Equal(t, "abc123", col.OwnerID())

	writable := client.WritableOrganizations()
	assert.Equal(t, "abc123", writable.OwnerID())
}

func TestNewClientSharesCache(t *testing.T) {
	client, err := NewClient(testConfig(t), "abc123")
	assert.NoError(t, err)

	a := client.Organizations()
	b := client.WritableOrganizations()
	assert.True(t, a.cache == b.cache)
}

func TestNewClientMissingBaseURL(t *testing.T) {
	s := configuration.NewLocalConfigStorage()
	cfg := configuration.NewProvider(s)
	assert.NoError(t, cfg.Set(configuration.APIKey, "k123"))

	_, err := NewClient(cfg, "abc123")
	assert.Error(t, err)
}
