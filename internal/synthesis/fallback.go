package synthesis

import (
	"fmt"
	"strings"

	"valuesprism/internal/catalog"
	"valuesprism/internal/session"
)

// FallbackDefinition produces an offline definition for one value item. It is
// total: no network, no error path, and it tolerates names missing from the
// tagline table. The service calls it both when the model path is skipped
// entirely and per-id when the model returns a partial result.
func FallbackDefinition(item catalog.ValueItem) session.Definition {
	lower := strings.ToLower(item.Name)
	return session.Definition{
		Tagline: FallbackTagline(item.Name),
		Definition: fmt.Sprintf(
			"%s represents %s. This value guides how you approach decisions and relationships. When you honor this value, you feel aligned with your authentic self.",
			item.Name, strings.ToLower(item.Description)),
		BehavioralAnchors: []string{
			fmt.Sprintf("When making important decisions, ask: Does this align with %s?", lower),
			fmt.Sprintf("In moments of doubt, ask: What would honoring %s look like here?", lower),
			fmt.Sprintf("Before committing, ask: Will this choice reflect my commitment to %s?", lower),
		},
		UserEdited: false,
	}
}

// FallbackDefinitions fills a definition map for every requested id that
// resolves in the catalog. Unknown ids are skipped rather than failing the
// whole batch.
func FallbackDefinitions(ids []string) map[string]session.Definition {
	defs := make(map[string]session.Definition, len(ids))
	for _, id := range ids {
		item, ok := catalog.ValueByID(id)
		if !ok {
			continue
		}
		defs[id] = FallbackDefinition(item)
	}
	return defs
}
