package schema

import (
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/teranos/assocgen/errors"
)

// Validate checks the schema for internal consistency. Every failure is a
// schema error naming the offending entity or association; the first
// problem found aborts validation (fail fast, the run produces no output).
func (s *Schema) Validate() error {
	if len(s.Entities) == 0 {
		return errors.NewSchemaErrorf("schema declares no entities")
	}

	seen := make(map[string]bool, len(s.Entities))
	for i := range s.Entities {
		e := &s.Entities[i]
		if e.Name == "" {
			return errors.NewSchemaErrorf("entity %d: missing name", i)
		}
		if seen[e.Name] {
			return errors.NewSchemaErrorf("entity %q declared twice", e.Name)
		}
		seen[e.Name] = true

		if err := validateAttributes(e); err != nil {
			return err
		}
	}

	// Alias collisions are checked per source entity: two associations that
	// normalize to the same singular base would generate duplicate method
	// names, so they are rejected here rather than at emission time.
	aliases := make(map[string]map[string]string) // source -> normalized alias -> description

	for i, a := range s.Associations {
		if !a.Kind.Valid() {
			return errors.NewSchemaErrorf("association %d (%s -> %s): unknown kind %q", i, a.Source, a.Target, string(a.Kind))
		}
		if s.Entity(a.Source) == nil {
			return errors.NewSchemaErrorf("association %d: source references undeclared entity %q", i, a.Source)
		}
		if s.Entity(a.Target) == nil {
			return errors.NewSchemaErrorf("association %d (%s): target references undeclared entity %q", i, a.Source, a.Target)
		}
		if a.Kind == BelongsToMany && a.Through == "" {
			return errors.NewSchemaErrorf("association %s -> %s: belongs_to_many requires a join-table name (through)", a.Source, a.Target)
		}
		if a.Kind != BelongsToMany && a.Through != "" {
			return errors.NewSchemaErrorf("association %s -> %s: through is only valid for belongs_to_many, not %s", a.Source, a.Target, a.Kind)
		}

		key := normalizeAlias(a.EffectiveAlias())
		if prev, ok := aliases[a.Source][key]; ok {
			return errors.NewSchemaErrorf("entity %q: alias collision between %s and %s %q", a.Source, prev, a.Kind, a.EffectiveAlias())
		}
		if aliases[a.Source] == nil {
			aliases[a.Source] = make(map[string]string)
		}
		aliases[a.Source][key] = string(a.Kind) + " " + `"` + a.EffectiveAlias() + `"`
	}

	return nil
}

func validateAttributes(e *Entity) error {
	names := make(map[string]bool, len(e.Attributes))
	for _, attr := range e.Attributes {
		if attr.Name == "" {
			return errors.NewSchemaErrorf("entity %q: attribute with missing name", e.Name)
		}
		if names[attr.Name] {
			return errors.NewSchemaErrorf("entity %q: attribute %q declared twice", e.Name, attr.Name)
		}
		names[attr.Name] = true

		if !attr.Type.Valid() {
			return errors.NewSchemaErrorf("entity %q: attribute %q has unknown type %q", e.Name, attr.Name, string(attr.Type))
		}
		if attr.Type == TypeEnum && len(attr.Values) == 0 {
			return errors.NewSchemaErrorf("entity %q: enum attribute %q declares no values", e.Name, attr.Name)
		}
		if attr.Type != TypeEnum && len(attr.Values) > 0 {
			return errors.NewSchemaErrorf("entity %q: attribute %q: values are only valid for enum attributes", e.Name, attr.Name)
		}
	}
	return nil
}

// normalizeAlias reduces an alias to its lowercased singular form so that
// e.g. "post" and "Posts" on the same entity are caught as a collision.
func normalizeAlias(alias string) string {
	return strings.ToLower(inflection.Singular(alias))
}
