package content

import (
	"fmt"
	"strings"
)

// Fields is the loosely-typed metadata of a document, as authored.
// Accessors perform the coercions the authoring format allows: scalars
// where lists are expected, missing keys, YAML's mixed-type lists.
type Fields map[string]any

// String returns the trimmed string value for key, or "" when the key
// is absent or not a string.
func (f Fields) String(key string) string {
	if v, ok := f[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// Bool returns the boolean value for key, defaulting to false.
func (f Fields) Bool(key string) bool {
	v, _ := f[key].(bool)
	return v
}

// Strings normalizes the value for key into a slice of non-empty
// strings. A list is stringified element by element with empties
// dropped; a non-empty scalar string becomes a single-element slice;
// anything else becomes an empty slice. The result is never nil.
func (f Fields) Strings(key string) []string {
	switch v := f[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s := strings.TrimSpace(stringify(item))
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	}
	return []string{}
}

// Tags returns the normalized tag list.
func (f Fields) Tags() []string {
	return f.Strings("tags")
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
