// Package config provides configuration loading and validation for burstload.
package config

import (
	"fmt"
	"strings"
)

const (
	// DefaultRequests is the burst size used when --requests is not given.
	DefaultRequests = 100
	// DefaultTargetURL is the target used when --url is not given.
	DefaultTargetURL = "http://localhost:9999"
)

// Config is the immutable description of one burst.
type Config struct {
	Requests  int    `mapstructure:"requests"`
	TargetURL string `mapstructure:"url"`
}

type ValidationError struct {
	issues []string
}

func (e ValidationError) Error() string {
	if len(e.issues) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.issues, "; "))
}

func (e ValidationError) Issues() []string {
	return append([]string(nil), e.issues...)
}

// Validate checks the request count. The target URL is deliberately left
// unchecked; a malformed URL fails each request individually.
func (c Config) Validate() error {
	var issues []string

	if c.Requests < 0 {
		issues = append(issues, "requests must be >= 0")
	}

	if len(issues) > 0 {
		return ValidationError{issues: issues}
	}
	return nil
}
