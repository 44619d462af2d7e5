// Package guide renders multi-step guides for terminal output.
package guide

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Step is a single described command in a guide.
type Step struct {
	Description string `json:"description"`
	Command     string `json:"command"`
}

// Guide is the part of a guides hit the service reads.
type Guide struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Steps       []Step `json:"steps"`
}

// Decode reads a guide from a raw hit.
func Decode(raw json.RawMessage) (Guide, error) {
	var g Guide
	if err := json.Unmarshal(raw, &g); err != nil {
		return Guide{}, fmt.Errorf("decode guide: %w", err)
	}
	return g, nil
}

// Format renders the guide as:
//
//	<title>
//
//	Step 1: <description>
//	$ <command>
//
// with surrounding whitespace trimmed.
func (g Guide) Format() string {
	var b strings.Builder
	b.WriteString(g.Title)
	b.WriteString("\n\n")
	for i, s := range g.Steps {
		b.WriteString("Step ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(": ")
		b.WriteString(s.Description)
		b.WriteString("\n$ ")
		b.WriteString(s.Command)
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}
