package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTokenValidityDuration)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.S3Bucket)
}

func TestParseFlagsOverridesDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server", "-a", ":9090", "-s", "flagsecret", "-t", "30", "-w", "12"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddrHTTP)
	assert.Equal(t, "flagsecret", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.SessionTokenValidityDuration)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestParseJsonOverlay(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	body := `{
		"endpoint_addr_http": ":7070",
		"secret_key": "jsonsecret",
		"session_token_validity_duration": "48h",
		"s3_bucket": "trailers"
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	os.Args = []string{"server", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":7070", cfg.EndpointAddrHTTP)
	assert.Equal(t, "jsonsecret", cfg.SecretKey)
	assert.Equal(t, 48*time.Hour, cfg.SessionTokenValidityDuration)
	assert.Equal(t, "trailers", cfg.S3Bucket)
	// untouched fields keep their defaults
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestFlagsWinOverJson(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"secret_key": "jsonsecret"}`), 0o600))

	os.Args = []string{"server", "-c", path, "-s", "flagsecret"}

	cfg := LoadConfig()
	assert.Equal(t, "flagsecret", cfg.SecretKey)
}
