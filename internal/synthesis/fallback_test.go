package synthesis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuesprism/internal/catalog"
)

func TestFallbackDefinition(t *testing.T) {
	item, ok := catalog.ValueByID("integrity")
	require.True(t, ok)

	def := FallbackDefinition(item)
	assert.Equal(t, "Truth in action", def.Tagline)
	assert.Contains(t, def.Definition, "Integrity represents")
	assert.Contains(t, def.Definition, "aligned with your authentic self")
	require.Len(t, def.BehavioralAnchors, 3)
	for _, anchor := range def.BehavioralAnchors {
		assert.Contains(t, anchor, "integrity")
		assert.True(t, strings.HasSuffix(anchor, "?"))
	}
	assert.False(t, def.UserEdited)
}

func TestFallbackTaglineCoversCatalog(t *testing.T) {
	// Every catalog value should have a curated tagline, not the generic one.
	for _, v := range catalog.Values {
		assert.NotEqual(t, defaultTagline, FallbackTagline(v.Name), "missing tagline for %s", v.Name)
	}
	assert.Equal(t, defaultTagline, FallbackTagline("Nonexistent Value"))
}

func TestFallbackDefinitionsSkipsUnknownIDs(t *testing.T) {
	defs := FallbackDefinitions([]string{"integrity", "not-a-value", "courage"})
	require.Len(t, defs, 2)
	assert.Contains(t, defs, "integrity")
	assert.Contains(t, defs, "courage")
}
