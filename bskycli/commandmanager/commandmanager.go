package commandmanager

import (
	"context"
	"time"
)

// CommandConfig describes a command to execute.
type CommandConfig struct {
	Command string
	Args    []string
	Env     []string // extra KEY=VALUE pairs appended to the current environment
	Stdin   string
}

// CommandResult encapsulates the results from a command execution.
type CommandResult struct {
	Command  string
	STDOUT   string
	STDERR   string
	ExitCode int
	Duration time.Duration
}

// CommandManager executes commands on the local system.
type CommandManager interface {
	Run(ctx context.Context, config CommandConfig) (CommandResult, error)
}
