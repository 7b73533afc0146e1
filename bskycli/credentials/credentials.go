package credentials

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/term"
)

const (
	HandleEnv      = "BLUESKY_HANDLE"
	AppPasswordEnv = "BLUESKY_APP_PASSWORD"
)

// Credentials identify an account on a social network.
type Credentials struct {
	Handle      *Secret
	AppPassword *Secret
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromEnv reads the handle and app password from the environment. Every
// missing variable is reported in the returned error.
func FromEnv(lookup LookupFunc) (Credentials, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var result *multierror.Error
	handle, ok := lookup(HandleEnv)
	if !ok || handle == "" {
		result = multierror.Append(result, fmt.Errorf("%s not set", HandleEnv))
	}
	password, ok := lookup(AppPasswordEnv)
	if !ok || password == "" {
		result = multierror.Append(result, fmt.Errorf("%s not set", AppPasswordEnv))
	}
	if err := result.ErrorOrNil(); err != nil {
		return Credentials{}, err
	}

	return Credentials{
		Handle:      NewSecret(handle),
		AppPassword: NewSecret(password),
	}, nil
}

// Validate reports every missing field.
func (c Credentials) Validate() error {
	var result *multierror.Error
	if c.Handle.Empty() {
		result = multierror.Append(result, fmt.Errorf("handle is empty"))
	}
	if c.AppPassword.Empty() {
		result = multierror.Append(result, fmt.Errorf("app password is empty"))
	}
	return result.ErrorOrNil()
}

// Close zeroes both secrets.
func (c Credentials) Close() error {
	var result *multierror.Error
	if err := c.Handle.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.AppPassword.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// PasswordReader reads a password from a file descriptor without echo.
type PasswordReader func(fd int) ([]byte, error)

// Prompter asks for secrets on a terminal.
type Prompter struct {
	In           *os.File
	Out          io.Writer
	ReadPassword PasswordReader
	IsTerminal   func(fd int) bool
}

// NewPrompter returns a Prompter that reads from stdin and writes prompts
// to stderr so that stdout stays clean for command output.
func NewPrompter() *Prompter {
	return &Prompter{
		In:           os.Stdin,
		Out:          os.Stderr,
		ReadPassword: term.ReadPassword,
		IsTerminal:   term.IsTerminal,
	}
}

// PromptSecret prints label and reads the reply without echo. Input must be
// an interactive terminal.
func (p *Prompter) PromptSecret(label string) (*Secret, error) {
	fd := int(p.In.Fd())
	if p.IsTerminal != nil && !p.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read %s: input is not a terminal", label)
	}

	fmt.Fprintf(p.Out, "%s: ", label)
	value, err := p.ReadPassword(fd)
	fmt.Fprintln(p.Out)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", label, err)
	}
	if len(value) == 0 {
		return nil, fmt.Errorf("empty %s", label)
	}
	return NewSecretFromBytes(value), nil
}
