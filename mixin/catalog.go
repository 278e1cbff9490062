// Package mixin is the catalog of accessor methods implied by each
// association kind. The catalog is static data shared process-wide: one
// fixed, ordered method family per kind, parameterized by the related
// entity's types and identity key. Naming derives from the association
// alias via best-effort pluralization, with an explicit override map
// applied afterwards.
package mixin

import (
	"fmt"

	"github.com/jinzhu/inflection"

	"github.com/teranos/assocgen/internal/strutil"
	"github.com/teranos/assocgen/schema"
)

// Target carries the TypeScript-facing names of the related entity an
// association points at.
type Target struct {
	Instance   string // instance type, e.g. "UserInstance"
	Attributes string // attributes type, e.g. "UserAttributes"
	Key        string // identity key type, e.g. "number"
}

// Method is one rendered accessor signature contributed to the declaring
// entity's instance type.
type Method struct {
	Name   string // e.g. "addPost"
	Params string // e.g. "value: PostInstance | number"
	Return string // e.g. "Promise<void>"
}

// Signature renders the full TypeScript method signature.
func (m Method) Signature() string {
	return fmt.Sprintf("%s(%s): %s;", m.Name, m.Params, m.Return)
}

// Warning records a plural form that was derived heuristically with no
// explicit override present. Non-fatal; surfaced alongside output.
type Warning struct {
	Entity  string // declaring entity
	Alias   string // effective association alias
	Derived string // plural form the heuristic produced
}

func (w Warning) String() string {
	return fmt.Sprintf("entity %q: pluralized alias %q as %q heuristically; add an override if this is wrong", w.Entity, w.Alias, w.Derived)
}

type nameForm uint8

const (
	singular nameForm = iota
	plural
)

// template is one entry of the static catalog: a method prefix, which name
// form it uses, and the parameter/return shapes.
type template struct {
	prefix string
	form   nameForm
	params func(t Target) string
	ret    func(t Target) string
}

func none(Target) string { return "" }

func promiseVoid(Target) string { return "Promise<void>" }

func promiseBool(Target) string { return "Promise<boolean>" }

func promiseNumber(Target) string { return "Promise<number>" }

func promiseInstance(t Target) string { return "Promise<" + t.Instance + ">" }

func promiseInstances(t Target) string { return "Promise<" + t.Instance + "[]>" }

func oneValue(t Target) string { return "value: " + t.Instance + " | " + t.Key }

func oneValueOrNull(t Target) string { return "value: " + t.Instance + " | " + t.Key + " | null" }

func manyValues(t Target) string { return "values: Array<" + t.Instance + " | " + t.Key + ">" }

func creationValues(t Target) string { return "values?: " + t.Attributes }

// singularFamily is the fixed get/set/create family contributed by
// belongs_to and has_one associations.
var singularFamily = []template{
	{"get", singular, none, promiseInstance},
	{"set", singular, oneValueOrNull, promiseVoid},
	{"create", singular, creationValues, promiseInstance},
}

// pluralFamily is the fixed ten-method family contributed by has_many and
// belongs_to_many associations. Order is part of the contract: output is
// emitted in exactly this order.
var pluralFamily = []template{
	{"get", plural, none, promiseInstances},
	{"set", plural, manyValues, promiseVoid},
	{"add", plural, manyValues, promiseVoid},
	{"add", singular, oneValue, promiseVoid},
	{"create", singular, creationValues, promiseInstance},
	{"remove", singular, oneValue, promiseVoid},
	{"remove", plural, manyValues, promiseVoid},
	{"has", singular, oneValue, promiseBool},
	{"has", plural, manyValues, promiseBool},
	{"count", plural, none, promiseNumber},
}

// catalog maps each association kind to its method family. Every kind maps
// to exactly one non-empty family.
var catalog = map[schema.Kind][]template{
	schema.BelongsTo:     singularFamily,
	schema.HasOne:        singularFamily,
	schema.HasMany:       pluralFamily,
	schema.BelongsToMany: pluralFamily,
}

// Forms derives the singular and plural method-name forms for an
// association: the effective alias run through the pluralization
// heuristic, then any explicit override applied on top. The second return
// reports whether an override was present.
func Forms(a schema.Association, ov schema.Overrides) (schema.NameForms, bool) {
	alias := a.EffectiveAlias()
	forms := schema.NameForms{
		Singular: inflection.Singular(alias),
		Plural:   inflection.Plural(alias),
	}

	override, ok := ov.Lookup(a.Source, alias)
	if ok {
		if override.Singular != "" {
			forms.Singular = override.Singular
		}
		if override.Plural != "" {
			forms.Plural = override.Plural
		}
	}
	return forms, ok
}

// MethodsFor returns the ordered accessor methods the association
// contributes to its declaring entity, plus any heuristic warnings. For
// belongs_to_many every method additionally carries the join-table name as
// a string-literal through option.
func MethodsFor(a schema.Association, target Target, ov schema.Overrides) ([]Method, []Warning) {
	forms, overridden := Forms(a, ov)

	var warnings []Warning
	if a.Kind.Plural() && !overridden {
		warnings = append(warnings, Warning{
			Entity:  a.Source,
			Alias:   a.EffectiveAlias(),
			Derived: forms.Plural,
		})
	}

	templates := catalog[a.Kind]
	methods := make([]Method, 0, len(templates))
	for _, tpl := range templates {
		name := forms.Singular
		if tpl.form == plural {
			name = forms.Plural
		}

		params := tpl.params(target)
		if a.Kind == schema.BelongsToMany {
			through := fmt.Sprintf("options?: { through: %q }", a.Through)
			if params == "" {
				params = through
			} else {
				params += ", " + through
			}
		}

		methods = append(methods, Method{
			Name:   tpl.prefix + strutil.ToPascalCase(name),
			Params: params,
			Return: tpl.ret(target),
		})
	}
	return methods, warnings
}
