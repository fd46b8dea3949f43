// Package candidates derives skin name candidates from a free-text query.
package candidates

import "strings"

// BaseName strips all whitespace out of the query. "Ender Dragon" -> "EnderDragon".
func BaseName(query string) string {
	return strings.Join(strings.Fields(query), "")
}

// Generate returns the candidate identifiers for a query, most likely match
// first. The order encodes a relevance prior (exact name, then common
// decorations) and must stay fixed: callers rely on it being reproducible.
func Generate(query string) []string {
	base := BaseName(query)
	return []string{
		base,
		base + "_",
		"The" + base,
		"Itz" + base,
		"Real" + base,
		base + "123",
		base + "PVP",
		base + "Girl",
		base + "Boy",
	}
}
