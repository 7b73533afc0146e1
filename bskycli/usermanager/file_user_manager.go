package usermanager

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/steelcutops/bskycli/logger"
)

// DefaultUsersFile is read when no path is configured.
const DefaultUsersFile = "users.txt"

// FileUserManager lists users from a newline-delimited text file. The file
// is read in full on every call; nothing is cached between calls.
type FileUserManager struct {
	Path   string
	Logger logger.Logger
}

func (f *FileUserManager) ListUsers(filter Filter, limit int) ([]string, error) {
	path := f.Path
	if path == "" {
		path = DefaultUsersFile
	}

	users, err := LoadUsers(path)
	if err != nil {
		return nil, err
	}

	result := LimitUsers(FilterUsers(users, filter), limit)
	if f.Logger != nil {
		f.Logger.Debug("Listed users", "file", path, "loaded", len(users), "filter", filter.String(), "limit", limit, "returned", len(result))
	}
	return result, nil
}

// LoadUsers reads every line of the file at path. Lines are split on '\n'
// with the '\r' of a CRLF pair removed; a final newline does not add an empty
// record. Any unreadable or non-UTF-8 line aborts the load.
func LoadUsers(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	users := []string{}
	for lineNo := 1; ; lineNo++ {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &LineDecodeError{Path: path, Line: lineNo, Err: err}
		}
		if line == "" && err != nil {
			break
		}

		if strings.HasSuffix(line, "\n") {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		}
		if !utf8.ValidString(line) {
			return nil, &LineDecodeError{Path: path, Line: lineNo, Err: ErrInvalidUTF8}
		}
		users = append(users, line)

		if err != nil {
			break
		}
	}
	return users, nil
}
