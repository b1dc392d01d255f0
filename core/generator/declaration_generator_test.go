package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/dtsgen/core/config"
	"github.com/tristendillon/dtsgen/core/errors"
)

func writeDescriptor(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

const dogDescriptor = `{
  "name": "com.example.Dog",
  "superClass": "com.example.Animal",
  "methods": [{"name": "bark", "params": {}, "returnType": "void", "isStatic": false}]
}`

func TestGenerateDogExample(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "com/example/Dog.json", dogDescriptor)

	report, err := NewDeclarationGenerator(config.Default()).Generate(root)
	require.NoError(t, err)

	out := filepath.Join(root, "com", "example", "Dog.d.ts")
	assert.Equal(t, []string{out}, report.Generated)
	assert.Equal(t, "import { Animal } from 'com.example'\n\n"+
		"export class Dog extends Animal {\n"+
		"  bark(): void;\n"+
		"}\n", readFile(t, out))
}

func TestGenerateImportIsolation(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "a/A.json", `{"name": "a.A", "methods": [{"name": "bar", "params": {}, "returnType": "com.foo.Bar"}]}`)
	writeDescriptor(t, root, "b/B.json", `{"name": "B", "methods": [{"name": "n", "params": {"x": "int"}, "returnType": "String"}]}`)

	_, err := NewDeclarationGenerator(config.Default()).Generate(root)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(readFile(t, filepath.Join(root, "a", "A.d.ts")), "import { Bar } from 'com.foo'\n\n"))
	assert.Equal(t, "\nexport class B {\n  n(x: int): string;\n}\n", readFile(t, filepath.Join(root, "b", "B.d.ts")))
}

func TestGenerateIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "com/example/Dog.json", dogDescriptor)
	writeDescriptor(t, root, "com/example/Cat.json", `{
  "name": "com.example.Cat",
  "constructors": [{"params": {"owner": "com.people.Person"}}],
  "methods": [{"name": "purr", "params": {"loud": "boolean"}, "returnType": "void", "isStatic": false}],
  "fields": [{"name": "LIVES", "type": "int", "isStatic": true}]
}`)

	gen := NewDeclarationGenerator(config.Default())

	_, err := gen.Generate(root)
	require.NoError(t, err)
	first := map[string]string{
		"Dog": readFile(t, filepath.Join(root, "com", "example", "Dog.d.ts")),
		"Cat": readFile(t, filepath.Join(root, "com", "example", "Cat.d.ts")),
	}

	report, err := gen.Generate(root)
	require.NoError(t, err)
	assert.Len(t, report.Generated, 2)
	assert.Len(t, report.Skipped, 2)

	assert.Equal(t, first["Dog"], readFile(t, filepath.Join(root, "com", "example", "Dog.d.ts")))
	assert.Equal(t, first["Cat"], readFile(t, filepath.Join(root, "com", "example", "Cat.d.ts")))
}

func TestGenerateSkipsNonDescriptors(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "README.md", "# notes")
	writeDescriptor(t, root, "Dog.json", dogDescriptor)

	report, err := NewDeclarationGenerator(config.Default()).Generate(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "README.md")}, report.Skipped)
	assert.Len(t, report.Generated, 1)
}

func TestGenerateContinuesPastFailures(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "a.json", `{"name": "broken"`)
	writeDescriptor(t, root, "b.json", `{"name": "B", "methods": [], "superClass": "com."}`)
	writeDescriptor(t, root, "c.json", dogDescriptor)

	report, err := NewDeclarationGenerator(config.Default()).Generate(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 descriptors failed")

	require.Len(t, report.Failures, 2)
	assert.Equal(t, filepath.Join(root, "a.json"), report.Failures[0].Path)
	assert.True(t, errors.Is(report.Failures[0].Err, errors.ErrParse))
	assert.Equal(t, filepath.Join(root, "b.json"), report.Failures[1].Path)
	assert.True(t, errors.Is(report.Failures[1].Err, errors.ErrInvalidType))

	assert.Equal(t, []string{filepath.Join(root, "c.d.ts")}, report.Generated)
	assert.NoFileExists(t, filepath.Join(root, "a.d.ts"))
	assert.NoFileExists(t, filepath.Join(root, "b.d.ts"))
}

func TestGenerateHaltsOnFirstFailure(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "a.json", `not json`)
	writeDescriptor(t, root, "b.json", dogDescriptor)

	cfg := config.Default()
	cfg.OnError = config.Halt

	report, err := NewDeclarationGenerator(cfg).Generate(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrParse))
	assert.Len(t, report.Failures, 1)
	assert.Empty(t, report.Generated)
	assert.NoFileExists(t, filepath.Join(root, "b.d.ts"))
}

func TestGenerateMissingRoot(t *testing.T) {
	_, err := NewDeclarationGenerator(config.Default()).Generate(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrIO))
}

func TestGenerateCustomSuffixes(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "Dog.class.json", dogDescriptor)

	cfg := config.Default()
	cfg.DescriptorSuffix = ".class.json"
	cfg.DeclarationSuffix = ".ts"

	report, err := NewDeclarationGenerator(cfg).Generate(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "Dog.ts")}, report.Generated)
}

func TestWriteFailureLeavesNoPartialOutput(t *testing.T) {
	root := t.TempDir()
	path := writeDescriptor(t, root, "Dog.json", dogDescriptor)
	// A directory in place of the output file makes the final rename fail.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Dog.d.ts", "inner"), 0755))

	_, err := NewDeclarationGenerator(config.Default()).GenerateFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrIO))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
	}
}
