package networkmanager

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotImplemented is returned by operations a network does not support yet.
var ErrNotImplemented = errors.New("not implemented")

const (
	DefaultReadLimit = 20
	MaxReadLimit     = 100
)

// Visibility values accepted by Post.
const (
	VisibilityPublic    = "public"
	VisibilityFollowers = "followers"
	VisibilityMentioned = "mentioned"
)

// PostRequest is a message to publish.
type PostRequest struct {
	Message    string
	Visibility string // optional
}

// ReadRequest selects posts to read.
type ReadRequest struct {
	Limit     int
	TimeRange string // optional, a Go duration such as "24h"
}

// Post is a single message read from a network.
type Post struct {
	Text string `json:"text" yaml:"text"`
}

// NetworkManager is the capability every social network supports.
type NetworkManager interface {
	Name() string
	Post(ctx context.Context, req PostRequest) error
	Read(ctx context.Context, req ReadRequest) ([]Post, error)
}

// Validate checks a post before it is sent anywhere.
func (r PostRequest) Validate() error {
	if r.Message == "" {
		return errors.New("message is empty")
	}
	switch r.Visibility {
	case "", VisibilityPublic, VisibilityFollowers, VisibilityMentioned:
		return nil
	default:
		return fmt.Errorf("unsupported visibility: %s", r.Visibility)
	}
}

// Validate checks the limit bounds and that TimeRange parses.
func (r ReadRequest) Validate() error {
	if r.Limit < 1 || r.Limit > MaxReadLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxReadLimit, r.Limit)
	}
	if r.TimeRange != "" {
		d, err := time.ParseDuration(r.TimeRange)
		if err != nil {
			return fmt.Errorf("invalid time range %q: %w", r.TimeRange, err)
		}
		if d <= 0 {
			return fmt.Errorf("time range must be positive, got %s", r.TimeRange)
		}
	}
	return nil
}
