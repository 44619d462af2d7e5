package document

import "encoding/json"

// Bundle is the content of a documents source, one raw object per document.
// A nil Guides means the source has no guides section.
type Bundle struct {
	Commands []json.RawMessage
	Guides   []json.RawMessage
}
