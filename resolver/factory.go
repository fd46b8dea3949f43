package resolver

import (
	"log"
	"strings"

	"github.com/raushankrgupta/skin-finder/resolver/local"
	"github.com/raushankrgupta/skin-finder/resolver/namemc"
)

// ForStrategy returns the resolver for the configured strategy name.
// Unknown values fall back to the local heuristic strategy.
func ForStrategy(strategy string) Resolver {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", "local":
		return local.New()
	case "namemc":
		return namemc.New()
	default:
		log.Printf("Unknown resolver strategy %q, using local", strategy)
		return local.New()
	}
}
