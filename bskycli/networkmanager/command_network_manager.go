package networkmanager

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	cm "github.com/steelcutops/bskycli/bskycli/commandmanager"
)

// CommandNetworkManager delegates to an external CLI binary that accepts
// "post --message M [--visibility V]" and
// "read [--limit N] [--time-range R]".
type CommandNetworkManager struct {
	CommandManager cm.CommandManager
	Binary         string
}

func (c *CommandNetworkManager) Name() string { return "command" }

func (c *CommandNetworkManager) Post(ctx context.Context, req PostRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	args := []string{"post", "--message", req.Message}
	if req.Visibility != "" {
		args = append(args, "--visibility", req.Visibility)
	}
	_, err := c.run(ctx, "post", args)
	return err
}

func (c *CommandNetworkManager) Read(ctx context.Context, req ReadRequest) ([]Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	args := []string{"read", "--limit", strconv.Itoa(req.Limit)}
	if req.TimeRange != "" {
		args = append(args, "--time-range", req.TimeRange)
	}
	output, err := c.run(ctx, "read", args)
	if err != nil {
		return nil, err
	}

	var posts []Post
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		posts = append(posts, Post{Text: line})
	}
	return posts, nil
}

func (c *CommandNetworkManager) run(ctx context.Context, op string, args []string) (string, error) {
	if c.Binary == "" {
		return "", fmt.Errorf("%s failed: no binary configured", op)
	}
	result, err := c.CommandManager.Run(ctx, cm.CommandConfig{
		Command: c.Binary,
		Args:    args,
	})
	if err != nil {
		if stderr := strings.TrimSpace(result.STDERR); stderr != "" {
			return "", fmt.Errorf("%s failed: %s: %w", op, stderr, err)
		}
		return "", fmt.Errorf("%s failed: %w", op, err)
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("%s failed: exit code %d: %s", op, result.ExitCode, strings.TrimSpace(result.STDERR))
	}
	return result.STDOUT, nil
}
