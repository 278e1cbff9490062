package schema

import (
	"github.com/teranos/assocgen/errors"
)

// ResolvedEntity pairs an entity with the association lists relevant to it.
// Owned associations (declared with this entity as source) contribute both
// attribute fields and accessor methods. Inverse associations (this entity
// as target) contribute nothing to the entity's own declaration block but
// are resolved here so tooling can walk both directions.
type ResolvedEntity struct {
	*Entity
	Owned   []Association
	Inverse []Association
}

// Resolved is the fully-resolved view of a schema: every entity with its
// owned and inverse association lists, in entity declaration order.
type Resolved struct {
	Entities []ResolvedEntity

	byName map[string]*ResolvedEntity
}

// Entity returns the resolved entity with the given name, or nil.
func (r *Resolved) Entity(name string) *ResolvedEntity {
	return r.byName[name]
}

// Resolve builds the resolved view in two phases: the entity set is
// registered first, then associations are walked against the complete set.
// The schema must already be validated; an unresolvable reference here is
// an internal inconsistency, not a user error.
func (s *Schema) Resolve() (*Resolved, error) {
	res := &Resolved{
		Entities: make([]ResolvedEntity, len(s.Entities)),
		byName:   make(map[string]*ResolvedEntity, len(s.Entities)),
	}
	for i := range s.Entities {
		res.Entities[i] = ResolvedEntity{Entity: &s.Entities[i]}
		res.byName[s.Entities[i].Name] = &res.Entities[i]
	}

	for _, a := range s.Associations {
		src := res.byName[a.Source]
		dst := res.byName[a.Target]
		if src == nil || dst == nil {
			return nil, errors.AssertionFailedf("unvalidated association %s -> %s reached resolution", a.Source, a.Target)
		}
		src.Owned = append(src.Owned, a)
		dst.Inverse = append(dst.Inverse, a)
	}

	return res, nil
}
