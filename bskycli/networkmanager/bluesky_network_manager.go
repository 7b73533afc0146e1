package networkmanager

import (
	"context"
	"fmt"

	"github.com/steelcutops/bskycli/bskycli/credentials"
	"github.com/steelcutops/bskycli/logger"
)

const DefaultBlueskyBaseURL = "https://bsky.social/xrpc"

// BlueskyNetworkManager talks to a Bluesky PDS. The XRPC protocol is not
// wired up yet: requests are validated and then rejected with
// ErrNotImplemented.
type BlueskyNetworkManager struct {
	Credentials credentials.Credentials
	BaseURL     string
	Logger      logger.Logger
}

func (b *BlueskyNetworkManager) Name() string { return "bluesky" }

func (b *BlueskyNetworkManager) baseURL() string {
	if b.BaseURL == "" {
		return DefaultBlueskyBaseURL
	}
	return b.BaseURL
}

func (b *BlueskyNetworkManager) Post(ctx context.Context, req PostRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := b.Credentials.Validate(); err != nil {
		return fmt.Errorf("bluesky credentials: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.Logger != nil {
		b.Logger.Debug("Posting message", "network", b.Name(), "url", b.baseURL(), "visibility", req.Visibility, "length", len(req.Message))
	}
	return fmt.Errorf("bluesky post: %w", ErrNotImplemented)
}

func (b *BlueskyNetworkManager) Read(ctx context.Context, req ReadRequest) ([]Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := b.Credentials.Validate(); err != nil {
		return nil, fmt.Errorf("bluesky credentials: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.Logger != nil {
		b.Logger.Debug("Reading posts", "network", b.Name(), "url", b.baseURL(), "limit", req.Limit, "timeRange", req.TimeRange)
	}
	return nil, fmt.Errorf("bluesky read: %w", ErrNotImplemented)
}
