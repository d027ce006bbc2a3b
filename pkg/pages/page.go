// Package pages holds the ordered page collection behind the navigator:
// the store that owns order and titles, the active selection and the
// controller that mints new pages.
package pages

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNoPages is returned when a collection is initialized without pages.
	ErrNoPages = errors.New("page collection must contain at least one page")
	// ErrEmptyID is returned for a page without an identifier.
	ErrEmptyID = errors.New("page id must not be empty")
	// ErrDuplicateID is returned when an id is already present in the collection.
	ErrDuplicateID = errors.New("duplicate page id")
	// ErrPageNotFound is returned when an operation references an unknown page.
	ErrPageNotFound = errors.New("page not found")
	// ErrReentrant is returned when a mutation is attempted from inside a change notification.
	ErrReentrant = errors.New("page collection is already being mutated")
)

// Page is a navigable entry in the tab strip.
type Page struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Title string `json:"title" yaml:"title" toml:"title"`
}

// IDGenerator mints page identifiers.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string { return f() }

// UUIDGenerator returns random (version 4) UUIDs, 122 bits of entropy per id.
var UUIDGenerator IDGenerator = IDGeneratorFunc(uuid.NewString)

func clonePages(in []Page) []Page {
	out := make([]Page, len(in))
	copy(out, in)
	return out
}
