package client

import (
	"fmt"

	cm "github.com/steelcutops/bskycli/bskycli/commandmanager"
	"github.com/steelcutops/bskycli/bskycli/networkmanager"
)

// Supported networks.
const (
	NetworkBluesky = "bluesky"
	NetworkCommand = "command"
)

// NeedsCredentials reports whether the network authenticates with an
// account handle and app password.
func NeedsCredentials(network string) bool {
	return network == NetworkBluesky
}

func NewClient(network string, options ...ClientOption) (networkmanager.NetworkManager, error) {
	cfg := &clientConfig{}

	// Apply each ClientOption
	for _, option := range options {
		option(cfg)
	}

	switch network {
	case NetworkBluesky:
		return configureBluesky(cfg), nil
	case NetworkCommand:
		return configureCommand(cfg)
	default:
		return nil, fmt.Errorf("unsupported network: %s", network)
	}
}

func configureBluesky(cfg *clientConfig) networkmanager.NetworkManager {
	return &networkmanager.BlueskyNetworkManager{
		Credentials: cfg.credentials,
		BaseURL:     cfg.baseURL,
		Logger:      cfg.logger,
	}
}

func configureCommand(cfg *clientConfig) (networkmanager.NetworkManager, error) {
	if cfg.binary == "" {
		return nil, fmt.Errorf("network %s requires a binary", NetworkCommand)
	}
	cmdManager := cfg.commandManager
	if cmdManager == nil {
		cmdManager = &cm.LocalCommandManager{Logger: cfg.logger}
	}
	return &networkmanager.CommandNetworkManager{
		CommandManager: cmdManager,
		Binary:         cfg.binary,
	}, nil
}
