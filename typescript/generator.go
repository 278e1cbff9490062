// Package typescript renders declaration blocks for resolved entities: an
// attributes interface plus an instance interface carrying every accessor
// method implied by the entity's owned associations.
//
// Output is deterministic: own attributes in declaration order, then
// associations in declaration order, then the fixed catalog order within
// each association. Fixed input produces byte-identical output.
package typescript

import (
	"fmt"
	"strings"

	"github.com/teranos/assocgen/errors"
	"github.com/teranos/assocgen/internal/strutil"
	"github.com/teranos/assocgen/mixin"
	"github.com/teranos/assocgen/schema"
)

// TypeMapping defines how semantic attribute types map to TypeScript types.
// Enum attributes are rendered as literal unions instead.
var TypeMapping = map[schema.AttrType]string{
	schema.TypeString: "string",
	schema.TypeNumber: "number",
	schema.TypeDate:   "Date",
}

// AttributesName returns the attributes interface name for an entity.
func AttributesName(entity string) string {
	return entity + "Attributes"
}

// InstanceName returns the instance interface name for an entity.
func InstanceName(entity string) string {
	return entity + "Instance"
}

// FileName returns the output file base name for an entity, e.g.
// "BlogPost" -> "blog_post.ts".
func FileName(entity string) string {
	return strutil.ToSnakeCase(entity) + ".ts"
}

// AttrTSType returns the TypeScript type for a single attribute.
func AttrTSType(attr schema.Attribute) string {
	if attr.Type == schema.TypeEnum {
		parts := make([]string, len(attr.Values))
		for i, v := range attr.Values {
			parts[i] = fmt.Sprintf("'%s'", v)
		}
		return strings.Join(parts, " | ")
	}
	if mapped, ok := TypeMapping[attr.Type]; ok {
		return mapped
	}
	// Validation rejects unknown types before emission
	return "unknown"
}

// TargetFor builds the mixin target for a related entity: its instance and
// attributes type names and the TypeScript type of its identity key. An
// entity without an "id" attribute keys by number.
func TargetFor(e *schema.Entity) mixin.Target {
	key := "number"
	if id := e.Attribute("id"); id != nil {
		key = AttrTSType(*id)
	}
	return mixin.Target{
		Instance:   InstanceName(e.Name),
		Attributes: AttributesName(e.Name),
		Key:        key,
	}
}

// GenerateAttributes renders the attributes-only interface: every own
// attribute, then one optional field per owned association permitting
// either the related entity's identity key or a nested attributes value.
func GenerateAttributes(re schema.ResolvedEntity, res *schema.Resolved, ov schema.Overrides) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("export interface %s {\n", AttributesName(re.Name)))

	for _, attr := range re.Attributes {
		optionalMark := ""
		if attr.Optional {
			optionalMark = "?"
		}
		sb.WriteString(fmt.Sprintf("  %s%s: %s;\n", attr.Name, optionalMark, AttrTSType(attr)))
	}

	for _, a := range re.Owned {
		target := res.Entity(a.Target)
		forms, _ := mixin.Forms(a, ov)

		tgt := TargetFor(target.Entity)
		value := fmt.Sprintf("%s | %s", tgt.Key, tgt.Attributes)

		fieldName := strutil.ToCamelCase(forms.Singular)
		if a.Kind.Plural() {
			fieldName = strutil.ToCamelCase(forms.Plural)
			value = fmt.Sprintf("Array<%s>", value)
		}

		sb.WriteString(fmt.Sprintf("  %s?: %s;\n", fieldName, value))
	}

	sb.WriteString("}")

	return sb.String()
}

// GenerateInstance renders the instance interface: the attributes interface
// extended with every mixin method contributed by the entity's owned
// associations. Identical duplicate signatures are de-duplicated; a name
// collision between two distinct signatures is a generation error, never a
// silent pick.
func GenerateInstance(re schema.ResolvedEntity, res *schema.Resolved, ov schema.Overrides) (string, []mixin.Warning, error) {
	var warnings []mixin.Warning

	seen := make(map[string]mixin.Method)
	var order []mixin.Method

	for _, a := range re.Owned {
		target := res.Entity(a.Target)
		methods, warns := mixin.MethodsFor(a, TargetFor(target.Entity), ov)
		warnings = append(warnings, warns...)

		for _, m := range methods {
			prev, ok := seen[m.Name]
			if !ok {
				seen[m.Name] = m
				order = append(order, m)
				continue
			}
			if prev != m {
				return "", nil, errors.NewGenerationErrorf(
					"entity %q: method name %q resolves to conflicting signatures %q and %q (association %s %q)",
					re.Name, m.Name, prev.Signature(), m.Signature(), a.Kind, a.EffectiveAlias())
			}
		}
	}

	var sb strings.Builder
	if len(order) == 0 {
		sb.WriteString(fmt.Sprintf("export interface %s extends %s {}", InstanceName(re.Name), AttributesName(re.Name)))
		return sb.String(), warnings, nil
	}

	sb.WriteString(fmt.Sprintf("export interface %s extends %s {\n", InstanceName(re.Name), AttributesName(re.Name)))
	for _, m := range order {
		sb.WriteString("  " + m.Signature() + "\n")
	}
	sb.WriteString("}")

	return sb.String(), warnings, nil
}

// GenerateBlock renders the full declaration block for one entity:
// attributes interface, blank line, instance interface.
func GenerateBlock(re schema.ResolvedEntity, res *schema.Resolved, ov schema.Overrides) (string, []mixin.Warning, error) {
	instance, warnings, err := GenerateInstance(re, res, ov)
	if err != nil {
		return "", nil, err
	}

	attrs := GenerateAttributes(re, res, ov)
	return attrs + "\n\n" + instance + "\n", warnings, nil
}
