package emitter

import (
	"strings"

	"github.com/tristendillon/dtsgen/core/errors"
	"github.com/tristendillon/dtsgen/core/models"
	"github.com/tristendillon/dtsgen/core/typemap"
)

const indent = "  "

// Declaration is the rendered output for one class descriptor.
type Declaration struct {
	ClassName string
	Body      string
	Imports   *models.ImportSet
}

// Contents is the text of the declaration file: imports, a blank line, then
// the class block.
func (d *Declaration) Contents() string {
	return d.Imports.Render() + "\n" + d.Body
}

// Emit renders cd with a fresh import set.
func Emit(cd *models.ClassDescriptor) (*Declaration, error) {
	imports := models.NewImportSet()
	body, err := EmitWith(typemap.New(imports), cd)
	if err != nil {
		return nil, err
	}
	return &Declaration{
		ClassName: cd.ShortName(),
		Body:      body,
		Imports:   imports,
	}, nil
}

// EmitWith renders cd using mapper for every type reference.
func EmitWith(mapper *typemap.Mapper, cd *models.ClassDescriptor) (string, error) {
	var sb strings.Builder

	sb.WriteString("export class ")
	sb.WriteString(cd.ShortName())

	if superClass, ok := cd.SuperClass.Get(); ok && superClass != "" {
		resolved, err := mapper.Map(superClass)
		if err != nil {
			return "", errors.Wrap(err, "superClass")
		}
		sb.WriteString(" extends ")
		sb.WriteString(resolved)
	}
	sb.WriteString(" {\n")

	if constructors, ok := cd.Constructors.Get(); ok {
		for i, ctor := range constructors {
			params, err := RenderParams(mapper, ctor.ParamList())
			if err != nil {
				return "", errors.Wrapf(err, "constructor %d", i)
			}
			sb.WriteString(indent + "constructor(" + params + ");\n")
		}
	}

	for _, method := range cd.MethodList() {
		line, err := renderMethod(mapper, method)
		if err != nil {
			return "", err
		}
		sb.WriteString(line)
	}

	if fields, ok := cd.Fields.Get(); ok {
		for _, field := range fields {
			line, err := renderField(mapper, field)
			if err != nil {
				return "", err
			}
			sb.WriteString(line)
		}
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}

// RenderParams renders "name: type" pairs in declaration order.
func RenderParams(mapper *typemap.Mapper, params models.Params) (string, error) {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		resolved, err := mapper.Map(p.Type)
		if err != nil {
			return "", errors.Wrapf(err, "param %s", p.Name)
		}
		parts = append(parts, p.Name+": "+resolved)
	}
	return strings.Join(parts, ", "), nil
}

func renderMethod(mapper *typemap.Mapper, method models.Method) (string, error) {
	name := deref(method.Name)

	returnType, err := mapper.Map(deref(method.ReturnType))
	if err != nil {
		return "", errors.Wrapf(err, "method %s return type", name)
	}
	params, err := RenderParams(mapper, method.ParamList())
	if err != nil {
		return "", errors.Wrapf(err, "method %s", name)
	}

	return indent + staticPrefix(method.IsStatic) + name + "(" + params + "): " + returnType + ";\n", nil
}

func renderField(mapper *typemap.Mapper, field models.Field) (string, error) {
	name := deref(field.Name)

	fieldType, err := mapper.Map(deref(field.Type))
	if err != nil {
		return "", errors.Wrapf(err, "field %s", name)
	}

	return indent + staticPrefix(field.IsStatic) + name + ": " + fieldType + ";\n", nil
}

func staticPrefix(isStatic bool) string {
	if isStatic {
		return "static "
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
