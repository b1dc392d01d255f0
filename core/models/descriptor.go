package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Optional distinguishes a field that is absent (missing key or null) from
// one that is present but empty.
type Optional[T any] struct {
	Value   T
	Present bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Present: true}
}

func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Present
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		o.Present = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Present = true
	return nil
}

type Param struct {
	Name string
	Type string
}

// Params is a parameter name to qualified type mapping that keeps the
// declaration order of the source object.
type Params []Param

func (p *Params) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("params must be an object, got %v", tok)
	}

	params := Params{}
	index := map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name := keyTok.(string)

		var typeName string
		if err := dec.Decode(&typeName); err != nil {
			return fmt.Errorf("param %q: type must be a string: %w", name, err)
		}

		// A repeated key keeps its first position and takes the last value.
		if i, seen := index[name]; seen {
			params[i].Type = typeName
			continue
		}
		index[name] = len(params)
		params = append(params, Param{Name: name, Type: typeName})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = params
	return nil
}

type Constructor struct {
	Params *Params `json:"params"`
}

type Method struct {
	Name       *string `json:"name"`
	Params     *Params `json:"params"`
	ReturnType *string `json:"returnType"`
	IsStatic   bool    `json:"isStatic"`
}

type Field struct {
	Name     *string `json:"name"`
	Type     *string `json:"type"`
	IsStatic bool    `json:"isStatic"`
}

// ClassDescriptor describes one declared class. Required members are
// pointers so a missing key can be told apart from an empty value; the
// descriptor parser rejects descriptors where they are nil.
type ClassDescriptor struct {
	Name         *string                 `json:"name"`
	SuperClass   Optional[string]        `json:"superClass"`
	Constructors Optional[[]Constructor] `json:"constructors"`
	Methods      *[]Method               `json:"methods"`
	Fields       Optional[[]Field]       `json:"fields"`
}

// ShortName is the declared name without its package qualifier.
func (cd *ClassDescriptor) ShortName() string {
	if cd.Name == nil {
		return ""
	}
	name := *cd.Name
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

func (cd *ClassDescriptor) MethodList() []Method {
	if cd.Methods == nil {
		return nil
	}
	return *cd.Methods
}

func (m Method) ParamList() Params {
	if m.Params == nil {
		return nil
	}
	return *m.Params
}

func (c Constructor) ParamList() Params {
	if c.Params == nil {
		return nil
	}
	return *c.Params
}
