package emitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/dtsgen/core/errors"
	"github.com/tristendillon/dtsgen/core/models"
	"github.com/tristendillon/dtsgen/core/typemap"
)

func str(s string) *string { return &s }

func params(pairs ...string) *models.Params {
	p := models.Params{}
	for i := 0; i+1 < len(pairs); i += 2 {
		p = append(p, models.Param{Name: pairs[i], Type: pairs[i+1]})
	}
	return &p
}

func method(name string, p *models.Params, returnType string, isStatic bool) models.Method {
	return models.Method{Name: str(name), Params: p, ReturnType: str(returnType), IsStatic: isStatic}
}

func field(name, fieldType string, isStatic bool) models.Field {
	return models.Field{Name: str(name), Type: str(fieldType), IsStatic: isStatic}
}

func TestEmitDogExample(t *testing.T) {
	methods := []models.Method{method("bark", params(), "void", false)}
	cd := &models.ClassDescriptor{
		Name:       str("com.example.Dog"),
		SuperClass: models.Some("com.example.Animal"),
		Methods:    &methods,
	}

	decl, err := Emit(cd)
	require.NoError(t, err)

	assert.Equal(t, "Dog", decl.ClassName)
	assert.Equal(t, "import { Animal } from 'com.example'\n\nexport class Dog extends Animal {\n  bark(): void;\n}\n", decl.Contents())
}

func TestEmitMembersInDescriptorOrder(t *testing.T) {
	methods := []models.Method{
		method("getName", params(), "java.lang.String", false),
		method("of", params("name", "String", "age", "int"), "com.zoo.Cat", true),
	}
	cd := &models.ClassDescriptor{
		Name:    str("com.zoo.Cat"),
		Methods: &methods,
		Fields:  models.Some([]models.Field{field("COUNT", "int", true)}),
	}

	decl, err := Emit(cd)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(decl.Body, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "export class Cat {", lines[0])
	assert.Equal(t, "  getName(): string;", lines[1])
	assert.Equal(t, "  static of(name: string, age: int): Cat;", lines[2])
	assert.Equal(t, "  static COUNT: int;", lines[3])
	assert.Equal(t, "}", lines[4])

	assert.Equal(t, []string{"import { Cat } from 'com.zoo'"}, decl.Imports.Statements())
}

func TestEmitConstructors(t *testing.T) {
	methods := []models.Method{}
	cd := &models.ClassDescriptor{
		Name: str("Point"),
		Constructors: models.Some([]models.Constructor{
			{Params: params()},
			{Params: params("x", "double", "y", "double")},
			{Params: params("label", "org.geo.Label")},
		}),
		Methods: &methods,
	}

	decl, err := Emit(cd)
	require.NoError(t, err)

	assert.Equal(t, "export class Point {\n"+
		"  constructor();\n"+
		"  constructor(x: double, y: double);\n"+
		"  constructor(label: Label);\n"+
		"}\n", decl.Body)
	assert.Equal(t, "import { Label } from 'org.geo'\n", decl.Imports.Render())
}

func TestEmitEmptyClass(t *testing.T) {
	methods := []models.Method{}
	cd := &models.ClassDescriptor{
		Name:         str("Empty"),
		Constructors: models.Some([]models.Constructor{}),
		Methods:      &methods,
		Fields:       models.Some([]models.Field{}),
	}

	decl, err := Emit(cd)
	require.NoError(t, err)
	assert.Equal(t, "\nexport class Empty {\n}\n", decl.Contents())
}

func TestEmitEmptySuperClassIsIgnored(t *testing.T) {
	methods := []models.Method{}
	cd := &models.ClassDescriptor{
		Name:       str("a.A"),
		SuperClass: models.Some(""),
		Methods:    &methods,
	}

	decl, err := Emit(cd)
	require.NoError(t, err)
	assert.Equal(t, "export class A {\n}\n", decl.Body)
}

func TestEmitImportOrderFollowsResolution(t *testing.T) {
	methods := []models.Method{
		method("run", params("in", "x.In"), "x.Out", false),
	}
	cd := &models.ClassDescriptor{
		Name:       str("x.Job"),
		SuperClass: models.Some("x.Base"),
		Methods:    &methods,
		Fields:     models.Some([]models.Field{field("in", "x.In", false)}),
	}

	decl, err := Emit(cd)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"import { Base } from 'x'",
		"import { Out } from 'x'",
		"import { In } from 'x'",
	}, decl.Imports.Statements())
}

func TestEmitPropagatesInvalidType(t *testing.T) {
	tests := []struct {
		name     string
		cd       func() *models.ClassDescriptor
		location string
	}{
		{
			name: "superclass",
			cd: func() *models.ClassDescriptor {
				methods := []models.Method{}
				return &models.ClassDescriptor{Name: str("A"), SuperClass: models.Some("com."), Methods: &methods}
			},
			location: "superClass",
		},
		{
			name: "method param",
			cd: func() *models.ClassDescriptor {
				methods := []models.Method{method("go", params("to", "com."), "void", false)}
				return &models.ClassDescriptor{Name: str("A"), Methods: &methods}
			},
			location: "method go",
		},
		{
			name: "field",
			cd: func() *models.ClassDescriptor {
				methods := []models.Method{}
				return &models.ClassDescriptor{
					Name:    str("A"),
					Methods: &methods,
					Fields:  models.Some([]models.Field{field("f", "com.", false)}),
				}
			},
			location: "field f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Emit(tt.cd())
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidType))
			assert.Contains(t, err.Error(), tt.location)
		})
	}
}

func TestRenderParams(t *testing.T) {
	m := typemap.New(nil)

	got, err := RenderParams(m, models.Params{})
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = RenderParams(m, *params("b", "boolean", "s", "java.lang.String", "d", "com.x.Dog"))
	require.NoError(t, err)
	assert.Equal(t, "b: boolean, s: string, d: Dog", got)
	assert.Equal(t, []string{"import { Dog } from 'com.x'"}, m.Imports().Statements())
}
