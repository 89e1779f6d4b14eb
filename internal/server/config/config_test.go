package config

import (
	"encoding/json"
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

	assert.Equal(t, ":5000", cfg.EndpointAddrHTTP)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "mygymbro", cfg.MongoDatabase)
	assert.Equal(t, 30*24*time.Hour, cfg.TokenValidityDuration)
	assert.NotEmpty(t, cfg.SecretKey)
	assert.NotEmpty(t, cfg.S3Bucket)
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"server", "-a", ":8080", "-n", "gymtest", "-t", "24"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	assert.Equal(t, "gymtest", cfg.MongoDatabase)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
	// untouched fields keep defaults
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
}

func TestParseJson_Overrides(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	jc := JsonConfig{
		EndpointAddrHTTP: ":9999",
		MongoURI:         "mongodb://db:27017",
		MongoDatabase:    "gym",
		SecretKey:        "filekey",
	}
	jc.TokenValidityDuration.Duration = 48 * time.Hour

	data, err := json.Marshal(jc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	os.Args = []string{"server", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "gym", cfg.MongoDatabase)
	assert.Equal(t, "filekey", cfg.SecretKey)
	assert.Equal(t, 48*time.Hour, cfg.TokenValidityDuration)
}
