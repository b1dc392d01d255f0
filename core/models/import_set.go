package models

import (
	"fmt"
	"strings"
)

// ImportSet collects the import statements needed by one declaration file.
// Statements are unique by exact text and render in insertion order.
type ImportSet struct {
	statements []string
	seen       map[string]struct{}
}

func NewImportSet() *ImportSet {
	return &ImportSet{seen: make(map[string]struct{})}
}

// ImportStatement renders the statement binding shortName to modulePath.
func ImportStatement(shortName, modulePath string) string {
	return fmt.Sprintf("import { %s } from '%s'", shortName, modulePath)
}

// Add inserts statement unless it is already present. It reports whether
// the set changed.
func (is *ImportSet) Add(statement string) bool {
	if is.seen == nil {
		is.seen = make(map[string]struct{})
	}
	if _, exists := is.seen[statement]; exists {
		return false
	}
	is.seen[statement] = struct{}{}
	is.statements = append(is.statements, statement)
	return true
}

// Render returns every statement followed by a newline.
func (is *ImportSet) Render() string {
	var sb strings.Builder
	for _, stmt := range is.statements {
		sb.WriteString(stmt)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (is *ImportSet) Clear() {
	is.statements = nil
	is.seen = make(map[string]struct{})
}

func (is *ImportSet) Len() int {
	return len(is.statements)
}

func (is *ImportSet) Statements() []string {
	out := make([]string, len(is.statements))
	copy(out, is.statements)
	return out
}
