// Package command reads shell commands out of hits from the commands index.
package command

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoCommandLine means a hit carries no usable "command" attribute.
var ErrNoCommandLine = errors.New("hit has no command line")

// Line extracts the "command" attribute from a raw hit.
func Line(raw json.RawMessage) (string, error) {
	var hit struct {
		Command *string `json:"command"`
	}
	if err := json.Unmarshal(raw, &hit); err != nil {
		return "", fmt.Errorf("decode hit: %w", err)
	}
	if hit.Command == nil {
		return "", ErrNoCommandLine
	}
	return *hit.Command, nil
}
