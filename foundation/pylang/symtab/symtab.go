// File: symtab.go
// Title: Symbol Table
// Description: Records every identifier seen by the lexer together with
//              the type and value inferred by constant folding. IDs are
//              assigned in first-seen order starting at 1 and are never
//              reused; entries are never removed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package symtab implements the identifier table of an analysis run.
package symtab

import (
	"sort"
)

// Sentinel values for unregistered names and freshly registered entries
const (
	UnknownID   = -1
	TypeUnknown = "unknown"
	ValueNA     = "N/A"
)

// Inferred data types
const (
	TypeInt      = "int"
	TypeFloat    = "float"
	TypeString   = "string"
	TypeBool     = "bool"
	TypeFunction = "function"
	ValueBuiltin = "built-in"
)

// Entry is one row of the table
type Entry struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	DataType string `json:"data_type" yaml:"data_type"`
	Value    string `json:"value" yaml:"value"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
}

// Table maps identifier names to entries. It is owned by a single
// analysis run and is not safe for concurrent mutation.
type Table struct {
	entries map[string]*Entry
	nextID  int
}

// New creates an empty table
func New() *Table {
	return &Table{
		entries: make(map[string]*Entry),
		nextID:  1,
	}
}

// Add registers name and returns its ID. A known name keeps its ID.
func (t *Table) Add(name string) int {
	return t.AddAt(name, 0)
}

// AddAt is Add that also records the line of first occurrence
func (t *Table) AddAt(name string, line int) int {
	if e, ok := t.entries[name]; ok {
		return e.ID
	}

	e := &Entry{
		ID:       t.nextID,
		Name:     name,
		DataType: TypeUnknown,
		Value:    ValueNA,
		Line:     line,
	}
	t.entries[name] = e
	t.nextID++
	return e.ID
}

// SetInfo updates type and value of a registered name. Unregistered
// names are ignored.
func (t *Table) SetInfo(name, dataType, value string) {
	if e, ok := t.entries[name]; ok {
		e.DataType = dataType
		e.Value = value
	}
}

// Reset marks a registered name as unknown/N/A again
func (t *Table) Reset(name string) {
	t.SetInfo(name, TypeUnknown, ValueNA)
}

// Has reports whether name is registered
func (t *Table) Has(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// ID returns the ID of name, or UnknownID
func (t *Table) ID(name string) int {
	if e, ok := t.entries[name]; ok {
		return e.ID
	}
	return UnknownID
}

// DataType returns the inferred type of name, or TypeUnknown
func (t *Table) DataType(name string) string {
	if e, ok := t.entries[name]; ok {
		return e.DataType
	}
	return TypeUnknown
}

// Value returns the inferred value of name, or ValueNA
func (t *Table) Value(name string) string {
	if e, ok := t.entries[name]; ok {
		return e.Value
	}
	return ValueNA
}

// Lookup returns a copy of the entry for name
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.entries[name]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Entries returns copies of all entries sorted by ID
func (t *Table) Entries() []Entry {
	result := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}
