// Package model defines core data structures for cfgextract.
package model

import "strings"

// Kind indicates which keyword introduced a block.
type Kind string

const (
	ContractType  Kind = "CONTRACT_TYPE"
	ContractGroup Kind = "CONTRACT_GROUP"
)

// Kinds lists the recognized block keywords.
var Kinds = []Kind{ContractType, ContractGroup}

// Lower returns the lowercase keyword, used for hash-derived names.
func (k Kind) Lower() string {
	return strings.ToLower(string(k))
}

// Block is a balanced-brace span of text beginning at a recognized keyword.
type Block struct {
	Kind  Kind
	Text  string
	Start int // offset of the keyword
	End   int // offset one past the closing brace
}

// NamedBlock is a block with its logical name resolved.
type NamedBlock struct {
	Block
	Name     string
	Explicit bool // Name came from a name field rather than the content hash
}

// Location is where a block ended up on disk.
type Location struct {
	Path    string // Relative to the working directory
	Written bool   // False when an identical file was already present
}

// Entry records one saved copy of a named block.
type Entry struct {
	Saved  string `json:"saved"`
	Source string `json:"source"`
}

// Manifest maps logical names to every place they were saved, per kind.
type Manifest struct {
	Contracts map[string][]Entry `json:"contracts"`
	Groups    map[string][]Entry `json:"groups"`
}
