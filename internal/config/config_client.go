package config

import (
	"fmt"
	"time"
)

// ServerConfig is the narrowed server-side view of [StructuredConfig].
type ServerConfig struct {
	// App contains token and password hashing settings.
	App App
	// Storage contains database settings.
	Storage Storage
	// Server contains listen address and timeouts.
	Server Server
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerAddress is the API server base address used by the client.
	ServerAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// SessionPath is the local SQLite file holding the persisted session.
	SessionPath string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// WatchInterval defines how often the session expiry watcher runs.
	WatchInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetServerConfig builds and validates the server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerAddress:  cfg.Client.ServerAddress,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionPath: cfg.Client.SessionPath,
		},
		Workers: ClientWorkers{WatchInterval: cfg.Client.WatchInterval},
	}

	return clientCfg, clientCfg.validate()
}
