package runner

import "github.com/oklog/ulid/v2"

// NewRunID returns a lexically sortable identifier for one burst.
func NewRunID() string {
	return ulid.Make().String()
}
