package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key": "sign-key",
			"token_issuer":   "school-admin",
			"token_duration": "168h",
			"bcrypt_cost":    10,
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "postgres://localhost/school"},
		},
		"server": map[string]any{
			"http_address":    "0.0.0.0:8080",
			"request_timeout": "30s",
		},
		"client": map[string]any{
			"server_address": "http://localhost:8080",
			"session_path":   "/tmp/session.db",
			"watch_interval": "1m",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "school-admin", cfg.App.TokenIssuer)
	assert.Equal(t, 168*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, "postgres://localhost/school", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Client.ServerAddress)
	assert.Equal(t, "/tmp/session.db", cfg.Client.SessionPath)
	assert.Equal(t, time.Minute, cfg.Client.WatchInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeTempJSONConfig(t, "just a string, not an object")
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"string form", `"1h30m"`, 90 * time.Minute},
		{"numeric nanoseconds", `1000000000`, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}

	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, `"1h0m0s"`, string(data))
}
