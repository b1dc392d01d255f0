// Package typemap translates JVM type names into TypeScript type names.
package typemap

import (
	"strings"

	"github.com/tristendillon/dtsgen/core/errors"
	"github.com/tristendillon/dtsgen/core/models"
)

var primitives = map[string]string{
	"boolean": "boolean",
	"String":  "string",
	"void":    "void",
}

var tsPrimitives = map[string]struct{}{
	"boolean": {},
	"string":  {},
	"void":    {},
}

// IsPrimitive reports whether name is a TypeScript primitive that never
// needs an import.
func IsPrimitive(name string) bool {
	_, ok := tsPrimitives[name]
	return ok
}

// Mapper resolves type names for one declaration file and records the
// imports they require.
type Mapper struct {
	imports *models.ImportSet
}

func New(imports *models.ImportSet) *Mapper {
	if imports == nil {
		imports = models.NewImportSet()
	}
	return &Mapper{imports: imports}
}

func (m *Mapper) Imports() *models.ImportSet {
	return m.imports
}

// Map returns the TypeScript name for typeName. A qualified non-primitive
// name registers an import of its short name from its package path.
func (m *Mapper) Map(typeName string) (string, error) {
	i := strings.LastIndex(typeName, ".")
	if i < 0 {
		return mapBare(typeName), nil
	}

	modulePath, shortName := typeName[:i], typeName[i+1:]
	if shortName == "" {
		return "", errors.InvalidType(typeName)
	}

	resolved := mapBare(shortName)
	if !IsPrimitive(resolved) {
		m.imports.Add(models.ImportStatement(shortName, modulePath))
	}
	return resolved, nil
}

func mapBare(typeName string) string {
	if mapped, ok := primitives[typeName]; ok {
		return mapped
	}
	return typeName
}
