package datafile

import "encoding/json"

// documentsFile is the on-disk layout of the documents file.
type documentsFile struct {
	Commands []json.RawMessage `json:"commands"`
	Guides   []json.RawMessage `json:"guides"`
}

// synonymsFile is the on-disk layout of the synonyms file.
type synonymsFile struct {
	Synonyms map[string][]string `json:"synonyms"`
}
