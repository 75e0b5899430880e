package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDefaults(t *testing.T, c *Config) {
	t.Helper()
	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Empty(t, c.DatabaseDSN)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, "http://localhost:8080/photos", c.PhotoBaseURL)
	assert.Empty(t, c.PhotoDir)
	assert.Empty(t, c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Equal(t, "http://127.0.0.1:9000/", c.S3BaseEndpoint)
	assert.Equal(t, "admin", c.S3RootUser)
	assert.Equal(t, "secretpassword", c.S3RootPassword)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assertDefaults(t, &c)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assertDefaults(t, c)
}
