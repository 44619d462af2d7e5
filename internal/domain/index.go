package domain

// IndexKind names one of the engine indexes this service owns.
type IndexKind string

const (
	// IndexCommands holds single-line shell commands.
	IndexCommands IndexKind = "commands"
	// IndexGuides holds multi-step guides.
	IndexGuides IndexKind = "guides"
)

// String returns the index name.
func (k IndexKind) String() string { return string(k) }
