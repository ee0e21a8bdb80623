package formatter

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds parameters for formatting a tree.
type Config struct {
	// LineWidth is the target output width in fixed-width ‘en’s.
	LineWidth int
	// Context is the UAX#11 context used to resolve ambiguous rune widths.
	// If nil, uax11.LatinContext is used.
	Context *uax11.Context
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

func (config *Config) normalized() Config {
	out := Config{LineWidth: 65, Context: uax11.LatinContext}
	if config == nil {
		return out
	}
	if config.LineWidth > 0 {
		out.LineWidth = config.LineWidth
	}
	if config.Context != nil {
		out.Context = config.Context
	}
	return out
}
