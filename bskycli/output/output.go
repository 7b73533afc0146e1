package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/steelcutops/bskycli/bskycli/networkmanager"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every format accepted by NewRenderer.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Renderer writes command results to w.
type Renderer struct {
	format string
	w      io.Writer
}

func NewRenderer(format string, w io.Writer) (*Renderer, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return &Renderer{format: format, w: w}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Users writes one identifier per line in text mode, or a list otherwise.
// Empty results render as [] in json and yaml.
func (r *Renderer) Users(users []string) error {
	if users == nil {
		users = []string{}
	}
	switch r.format {
	case FormatText:
		for _, user := range users {
			if _, err := fmt.Fprintln(r.w, user); err != nil {
				return err
			}
		}
		return nil
	default:
		return r.encode(users)
	}
}

// Posts writes one post per line in text mode.
func (r *Renderer) Posts(posts []networkmanager.Post) error {
	if posts == nil {
		posts = []networkmanager.Post{}
	}
	switch r.format {
	case FormatText:
		for _, post := range posts {
			if _, err := fmt.Fprintln(r.w, post.Text); err != nil {
				return err
			}
		}
		return nil
	default:
		return r.encode(posts)
	}
}

func (r *Renderer) encode(v interface{}) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", r.format)
	}
}
