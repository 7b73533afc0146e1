package credentials

import (
	"fmt"
	"sync"
)

const redacted = "[REDACTED]"

// Secret holds sensitive data such as an app password. Formatting or
// marshaling a Secret never prints its contents. Close zeroes the backing
// memory; a Secret must not be copied after creation.
type Secret struct {
	mu     sync.Mutex
	data   []byte
	closed bool
}

// NewSecret copies value into a new Secret.
func NewSecret(value string) *Secret {
	return &Secret{data: []byte(value)}
}

// NewSecretFromBytes takes ownership of source by copying it and zeroing
// the caller's slice.
func NewSecretFromBytes(source []byte) *Secret {
	data := make([]byte, len(source))
	copy(data, source)
	for i := range source {
		source[i] = 0
	}
	return &Secret{data: data}
}

// Reveal returns the secret value. Call it only where the value leaves the
// process, e.g. when building a request. Panics after Close.
func (s *Secret) Reveal() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		panic("credentials: read from closed secret")
	}
	return string(s.data)
}

// Empty reports whether the secret is nil, closed, or has no content.
func (s *Secret) Empty() bool {
	if s == nil {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed || len(s.data) == 0
}

// Close zeroes the secret. Close is idempotent.
func (s *Secret) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	for i := range s.data {
		s.data[i] = 0
	}
	s.data = nil
	return nil
}

func (s *Secret) String() string { return redacted }

func (s *Secret) GoString() string { return "credentials.Secret(" + redacted + ")" }

// Format keeps %v, %+v, %#v, %s, %q and %x from leaking the value.
func (s *Secret) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			fmt.Fprint(f, s.GoString())
			return
		}
		fmt.Fprint(f, redacted)
	case 'q':
		fmt.Fprintf(f, "%q", redacted)
	default:
		fmt.Fprint(f, redacted)
	}
}

func (s *Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

func (s *Secret) MarshalYAML() (interface{}, error) {
	return redacted, nil
}
