package schema

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/teranos/assocgen/errors"
)

// Load reads and parses a YAML schema file, then validates it.
// Any failure is a schema error identifying the file or the offending
// declaration.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading schema file %s", path)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "schema file %s", path)
	}
	return s, nil
}

// Parse parses a YAML schema document and validates it.
func Parse(data []byte) (*Schema, error) {
	var s Schema

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, errors.WrapSchema(err, "parsing schema document")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
