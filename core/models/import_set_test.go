package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportSetAddIsIdempotent(t *testing.T) {
	is := NewImportSet()

	assert.True(t, is.Add(ImportStatement("Bar", "com.foo")))
	assert.False(t, is.Add(ImportStatement("Bar", "com.foo")))
	assert.True(t, is.Add(ImportStatement("Baz", "com.foo")))

	assert.Equal(t, 2, is.Len())
	assert.Equal(t, []string{
		"import { Bar } from 'com.foo'",
		"import { Baz } from 'com.foo'",
	}, is.Statements())
}

func TestImportSetRender(t *testing.T) {
	is := NewImportSet()
	assert.Equal(t, "", is.Render())

	is.Add("import { B } from 'b'")
	is.Add("import { A } from 'a'")
	assert.Equal(t, "import { B } from 'b'\nimport { A } from 'a'\n", is.Render())
}

func TestImportSetClear(t *testing.T) {
	is := NewImportSet()
	is.Add("import { A } from 'a'")
	is.Clear()

	assert.Equal(t, 0, is.Len())
	assert.Equal(t, "", is.Render())
	assert.True(t, is.Add("import { A } from 'a'"))
}

func TestImportSetZeroValue(t *testing.T) {
	var is ImportSet
	assert.True(t, is.Add("import { A } from 'a'"))
	assert.Equal(t, 1, is.Len())
}
