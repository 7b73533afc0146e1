package usermanager

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUTF8 is wrapped by LineDecodeError when a line is not valid text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Filter selects user records by literal, case-sensitive substring
// containment. The zero value matches every record.
type Filter struct {
	Substring string
	Set       bool
}

// Contains returns a Filter that keeps records containing substr.
func Contains(substr string) Filter {
	return Filter{Substring: substr, Set: true}
}

// Match reports whether the record passes the filter.
func (f Filter) Match(record string) bool {
	if !f.Set {
		return true
	}
	return strings.Contains(record, f.Substring)
}

func (f Filter) String() string {
	if !f.Set {
		return "<none>"
	}
	return fmt.Sprintf("%q", f.Substring)
}

// UserManager encompasses operations related to listing user identifiers.
type UserManager interface {
	// Lists at most limit user identifiers that pass the filter, in source order
	ListUsers(filter Filter, limit int) ([]string, error)
}

// FileOpenError is returned when the users file cannot be opened.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("could not open users file %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// LineDecodeError is returned when a line of the users file cannot be read
// or is not valid text. Line is 1-based.
type LineDecodeError struct {
	Path string
	Line int
	Err  error
}

func (e *LineDecodeError) Error() string {
	return fmt.Sprintf("could not read line %d from %s: %v", e.Line, e.Path, e.Err)
}

func (e *LineDecodeError) Unwrap() error { return e.Err }

// FilterUsers keeps the records matching filter, preserving order.
func FilterUsers(users []string, filter Filter) []string {
	if !filter.Set {
		return users
	}
	filtered := []string{}
	for _, user := range users {
		if filter.Match(user) {
			filtered = append(filtered, user)
		}
	}
	return filtered
}

// LimitUsers returns the first limit records. A limit of zero or less
// yields an empty result.
func LimitUsers(users []string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}
	if len(users) <= limit {
		return users
	}
	return users[:limit]
}
