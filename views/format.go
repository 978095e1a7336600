package views

import (
	"fmt"
	"strings"
)

type formatConfig struct {
	sep     string
	pattern string
	open    string
	close   string
}

// FormatOption configures Format.
type FormatOption func(*formatConfig)

// WithSeparator sets the text between two elements. The default is ", ".
func WithSeparator(sep string) FormatOption {
	return func(c *formatConfig) { c.sep = sep }
}

// WithPattern sets the fmt verb pattern used for each element. The default is "%v".
func WithPattern(pattern string) FormatOption {
	return func(c *formatConfig) { c.pattern = pattern }
}

// WithBrackets sets the text around the whole view. The default is "[" and "]".
func WithBrackets(open, close string) FormatOption {
	return func(c *formatConfig) {
		c.open = open
		c.close = close
	}
}

// Format renders every element of v.
func Format[T any](v View[T], opts ...FormatOption) string {
	cfg := formatConfig{sep: ", ", pattern: "%v", open: "[", close: "]"}
	for _, opt := range opts {
		opt(&cfg)
	}

	var sb strings.Builder
	sb.WriteString(cfg.open)
	for i, x := range v.Indexed() {
		if i > 0 {
			sb.WriteString(cfg.sep)
		}
		fmt.Fprintf(&sb, cfg.pattern, x)
	}
	sb.WriteString(cfg.close)
	return sb.String()
}
