package client

import (
	cm "github.com/steelcutops/bskycli/bskycli/commandmanager"
	"github.com/steelcutops/bskycli/bskycli/credentials"
	"github.com/steelcutops/bskycli/logger"
)

type ClientOption func(*clientConfig)

type clientConfig struct {
	credentials    credentials.Credentials
	baseURL        string
	binary         string
	commandManager cm.CommandManager
	logger         logger.Logger
}

// WithCredentials returns a ClientOption that sets the account credentials.
func WithCredentials(creds credentials.Credentials) ClientOption {
	return func(c *clientConfig) {
		c.credentials = creds
	}
}

// WithBaseURL returns a ClientOption that overrides the network's API endpoint.
func WithBaseURL(url string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithBinary returns a ClientOption that sets the external CLI used by the
// command network.
func WithBinary(binary string) ClientOption {
	return func(c *clientConfig) {
		c.binary = binary
	}
}

// WithCommandManager returns a ClientOption that sets how external commands run.
func WithCommandManager(manager cm.CommandManager) ClientOption {
	return func(c *clientConfig) {
		c.commandManager = manager
	}
}

func WithLogger(l logger.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = l
	}
}
