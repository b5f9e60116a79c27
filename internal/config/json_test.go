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

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"request_ttl": "12h"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "dialect": "sqlite", "dsn": "file:farm.db" },
			"ledger": { "backend": "sql" },
			"ciphertexts": { "backend": "s3" },
			"s3": { "bucket": "ct", "region": "eu-central-1", "access_key": "ak", "secret_key": "sk" }
		},
		"fhe": { "log_n": 13, "public_key_path": "keys/fhe.pk" },
		"attestation": { "issuer": "oracle" },
		"adapter": { "server_url": "http://farm", "request_timeout": "5s" },
		"workers": { "sweep_interval": "1m", "poll_interval": 1000000000, "batch_size": 8, "max_attempts": 2 }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 12*time.Hour, cfg.App.RequestTTL)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DialectSQLite, cfg.Storage.DB.Dialect)
	assert.Equal(t, CiphertextsS3, cfg.Storage.Ciphertexts.Backend)
	assert.Equal(t, S3{Region: "eu-central-1", Bucket: "ct", AccessKey: "ak", SecretKey: "sk"}, cfg.Storage.S3)
	assert.Equal(t, 13, cfg.FHE.LogN)
	assert.Equal(t, "oracle", cfg.Attestation.Issuer)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SweepInterval)
	assert.Equal(t, time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, 8, cfg.Workers.BatchSize)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseJSON(p)

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "error decoding json configs")
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))

	out, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m0s"`, string(out))
}

func TestViews_Validate(t *testing.T) {
	base := defaultConfig()

	client := &ClientConfig{Adapter: base.Adapter, FHE: base.FHE}
	assert.NoError(t, client.validate())
	client.Adapter.ServerURL = ""
	assert.ErrorIs(t, client.validate(), ErrInvalidAdapterConfigs)

	oracle := &OracleConfig{Adapter: base.Adapter, FHE: base.FHE, Attestation: base.Attestation, Workers: base.Workers}
	assert.NoError(t, oracle.validate())
	oracle.Workers.BatchSize = 0
	assert.ErrorIs(t, oracle.validate(), ErrInvalidWorkerConfigs)

	server := defaultConfig()
	assert.ErrorIs(t, server.validateServer(), ErrInvalidAppConfigs)
	server.App.TokenSignKey = "k"
	assert.NoError(t, server.validateServer())
	server.Storage.Ciphertexts.Backend = CiphertextsS3
	assert.ErrorIs(t, server.validateServer(), ErrInvalidStorageConfigs)
}
