package assocgen

import (
	"github.com/teranos/assocgen/mixin"
)

// Result holds the generated declaration blocks for all entities in a run.
// A Result only exists for fully successful runs; any schema or generation
// error aborts the run with no partial output.
type Result struct {
	// Blocks maps entity names to their declaration-block text
	// (attributes interface + instance interface)
	Blocks map[string]string

	// Order lists entity names in schema declaration order, for
	// deterministic iteration over Blocks
	Order []string

	// Warnings collects non-fatal heuristic warnings: plural forms that
	// were derived without an explicit override
	Warnings []mixin.Warning
}

// Entities returns the entity names in declaration order.
func (r *Result) Entities() []string {
	return r.Order
}
