// Package schema holds the in-memory representation of entities, attributes,
// and declared associations, plus the loader and validator for the YAML
// schema format.
//
// Entities and associations are built once per generation run and are
// immutable afterwards. Associations are plain data records tagged by kind;
// nothing in this package attaches behavior to entities.
package schema

// Kind identifies the relationship kind of an association.
type Kind string

const (
	BelongsTo     Kind = "belongs_to"      // source holds the foreign key to one target
	HasOne        Kind = "has_one"         // one target holds the foreign key back
	HasMany       Kind = "has_many"        // many targets hold the foreign key back
	BelongsToMany Kind = "belongs_to_many" // many-to-many via a join table
)

// Valid reports whether k is one of the four supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case BelongsTo, HasOne, HasMany, BelongsToMany:
		return true
	}
	return false
}

// Plural reports whether the kind contributes the plural accessor family
// (get/set/add/remove/has/count) rather than the singular get/set/create.
func (k Kind) Plural() bool {
	return k == HasMany || k == BelongsToMany
}

// AttrType is the semantic type of an attribute.
type AttrType string

const (
	TypeString AttrType = "string"
	TypeNumber AttrType = "number"
	TypeDate   AttrType = "date"
	TypeEnum   AttrType = "enum"
)

// Valid reports whether t is a supported attribute type.
func (t AttrType) Valid() bool {
	switch t {
	case TypeString, TypeNumber, TypeDate, TypeEnum:
		return true
	}
	return false
}

// Attribute is a single declared attribute of an entity.
type Attribute struct {
	Name     string   `yaml:"name"`
	Type     AttrType `yaml:"type"`
	Optional bool     `yaml:"optional,omitempty"`
	// Values holds the literal members of an enum attribute.
	Values []string `yaml:"values,omitempty"`
}

// Entity is a declared model with an ordered attribute list.
// Declaration order is preserved and drives output ordering.
type Entity struct {
	Name       string      `yaml:"name"`
	Attributes []Attribute `yaml:"attributes"`
}

// Attribute returns the attribute with the given name, or nil.
func (e *Entity) Attribute(name string) *Attribute {
	for i := range e.Attributes {
		if e.Attributes[i].Name == name {
			return &e.Attributes[i]
		}
	}
	return nil
}

// Association is a declared relationship between two entities. It is pure
// data; accessor methods are derived from it by the mixin catalog.
type Association struct {
	Kind   Kind   `yaml:"kind"`
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	// Alias overrides the name used for the related entity in accessor
	// method names. Empty means the target entity name is used.
	Alias string `yaml:"alias,omitempty"`
	// Through names the join table. Required for belongs_to_many,
	// forbidden otherwise.
	Through string `yaml:"through,omitempty"`
}

// EffectiveAlias returns the alias used for naming: the declared alias when
// present, else the target entity name.
func (a Association) EffectiveAlias() string {
	if a.Alias != "" {
		return a.Alias
	}
	return a.Target
}

// NameForms is an explicit override for the singular and plural method-name
// forms derived from an association alias. Either field may be empty to keep
// the heuristic derivation for that form.
type NameForms struct {
	Singular string `yaml:"singular,omitempty"`
	Plural   string `yaml:"plural,omitempty"`
}

// Overrides maps entity name, then association alias, to explicit name
// forms. Applied after heuristic pluralization.
type Overrides map[string]map[string]NameForms

// Lookup returns the override for (entity, alias), if any.
func (o Overrides) Lookup(entity, alias string) (NameForms, bool) {
	if o == nil {
		return NameForms{}, false
	}
	byAlias, ok := o[entity]
	if !ok {
		return NameForms{}, false
	}
	forms, ok := byAlias[alias]
	return forms, ok
}

// Schema is the full declarative input to a generation run.
type Schema struct {
	Entities     []Entity      `yaml:"entities"`
	Associations []Association `yaml:"associations,omitempty"`
	Overrides    Overrides     `yaml:"overrides,omitempty"`
}

// Entity returns the declared entity with the given name, or nil.
func (s *Schema) Entity(name string) *Entity {
	for i := range s.Entities {
		if s.Entities[i].Name == name {
			return &s.Entities[i]
		}
	}
	return nil
}
