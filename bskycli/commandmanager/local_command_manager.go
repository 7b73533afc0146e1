package commandmanager

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/steelcutops/bskycli/logger"
)

type LocalCommandManager struct {
	Logger logger.Logger
}

func (l *LocalCommandManager) Run(ctx context.Context, config CommandConfig) (CommandResult, error) {
	if config.Command == "" {
		return CommandResult{}, errors.New("no command given")
	}
	if l.Logger != nil {
		l.Logger.Debug("Executing local command", "command", config.Command, "args", strings.Join(config.Args, " "))
	}

	start := time.Now()

	cmd := exec.CommandContext(ctx, config.Command, config.Args...)
	if len(config.Env) > 0 {
		cmd.Env = append(os.Environ(), config.Env...)
	}
	if config.Stdin != "" {
		cmd.Stdin = strings.NewReader(config.Stdin)
	}
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		Command:  config.Command,
		STDOUT:   stdout.String(),
		STDERR:   stderr.String(),
		ExitCode: getExitCode(err),
		Duration: time.Since(start),
	}
	if l.Logger != nil {
		l.Logger.Debug("Local command finished", "command", result.Command, "exitCode", result.ExitCode, "duration", result.Duration)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}
	return result, err
}

func getExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitError *exec.ExitError
	if errors.As(err, &exitError) {
		return exitError.ExitCode()
	}
	return -1
}
