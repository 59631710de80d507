package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Loader handles loading configuration from command-line arguments.
type Loader struct {
	out io.Writer
}

// ErrHelpRequested is returned when the user requests help via --help flag.
var ErrHelpRequested = errors.New("help requested")

// NewLoader creates a new configuration Loader that prints help to out.
func NewLoader(out io.Writer) *Loader {
	return &Loader{out: out}
}

// Load parses command-line arguments into a Config. Flags that are not given
// keep their defaults, so an empty argument list is a valid burst.
func (l *Loader) Load(args []string) (*Config, error) {
	cmd := newFlagCommand(l.out)
	if err := cmd.Flags().Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			displayHelp(cmd)
			return nil, ErrHelpRequested
		}
		return nil, err
	}

	if rest := cmd.Flags().Args(); len(rest) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}

	settings := viper.New()
	settings.SetDefault("requests", DefaultRequests)
	settings.SetDefault("url", DefaultTargetURL)
	if err := settings.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	cfg := &Config{}
	if err := settings.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return cfg, nil
}
