package descriptor

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/tristendillon/dtsgen/core/errors"
	"github.com/tristendillon/dtsgen/core/logger"
	"github.com/tristendillon/dtsgen/core/models"
)

// ParseFile reads and decodes the descriptor at path.
func ParseFile(path string) (*models.ClassDescriptor, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO(err, "failed to read descriptor %s", path)
	}

	cd, err := Parse(src)
	if err != nil {
		return nil, errors.Parse(err, path)
	}

	logger.Debug("Parsed %s: class %s with %d methods", path, cd.ShortName(), len(cd.MethodList()))
	return cd, nil
}

// Parse decodes a single JSON descriptor. Unknown keys are ignored; required
// keys that are missing fail with ErrParse.
func Parse(src []byte) (*models.ClassDescriptor, error) {
	dec := json.NewDecoder(bytes.NewReader(src))

	var cd models.ClassDescriptor
	if err := dec.Decode(&cd); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "malformed descriptor"), errors.ErrParse)
	}
	if dec.More() {
		return nil, errors.Parsef("unexpected content after descriptor object")
	}

	if err := validate(&cd); err != nil {
		return nil, err
	}
	return &cd, nil
}

func validate(cd *models.ClassDescriptor) error {
	if cd.Name == nil {
		return errors.Parsef("missing required key %q", "name")
	}
	if cd.Methods == nil {
		return errors.Parsef("missing required key %q", "methods")
	}

	if constructors, ok := cd.Constructors.Get(); ok {
		for i, ctor := range constructors {
			if ctor.Params == nil {
				return errors.Parsef("constructors[%d]: missing required key %q", i, "params")
			}
		}
	}

	for i, m := range *cd.Methods {
		switch {
		case m.Name == nil:
			return errors.Parsef("methods[%d]: missing required key %q", i, "name")
		case m.Params == nil:
			return errors.Parsef("methods[%d] %s: missing required key %q", i, *m.Name, "params")
		case m.ReturnType == nil:
			return errors.Parsef("methods[%d] %s: missing required key %q", i, *m.Name, "returnType")
		}
	}

	if fields, ok := cd.Fields.Get(); ok {
		for i, f := range fields {
			switch {
			case f.Name == nil:
				return errors.Parsef("fields[%d]: missing required key %q", i, "name")
			case f.Type == nil:
				return errors.Parsef("fields[%d] %s: missing required key %q", i, *f.Name, "type")
			}
		}
	}

	return nil
}
