package model

import "slices"

const EntityName = "search"

// Result tiers, ordered by precision. A lower tier is only consulted when
// every higher tier came back empty.
const (
	TierFullText  = 1
	TierTrigram   = 2
	TierSubstring = 3
)

// tables maps public entity names to the searchable tables carrying the
// search_text / search_vector projection columns.
var tables = map[string]string{
	"room":      "rooms",
	"room_type": "room_types",
	"booking":   "bookings",
	"user":      "users",
	"floor":     "floors",
	"feature":   "features",
	"bed_type":  "bed_types",
	"addon":     "addons",
}

// TableFor resolves an entity name to its table. Unknown entities report
// ok false; the table name is never taken from user input directly.
func TableFor(entity string) (table string, ok bool) {
	table, ok = tables[entity]

	return table, ok
}

// Entities lists the searchable entity names, sorted.
func Entities() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
