package synthesis

import (
	"fmt"
	"strings"

	"valuesprism/internal/catalog"
	"valuesprism/internal/insights"
)

// systemPrompt fixes the model's role. The voice-preservation and relational
// rules apply to every request; per-session context goes in the user prompt.
const systemPrompt = `You are a values articulation specialist helping people discover and express their personal values.

PRINCIPLES:
1. PRESERVE VOICE: When the user provides a transcript, incorporate their actual phrases and language. Echo back their authentic voice.

2. THREE CRITICAL ELEMENTS: Every definition must address:
   - How this value shows up in daily life
   - How it guides decision-making
   - How it shapes relationships with others

3. BEHAVIORAL ANCHORS: Generate 3-5 practical questions they can ask themselves when making decisions. Format: "When [situation], ask: [question]?"

4. SECOND PERSON: Write in second person ("You..." / "For you..."). Make it personal and direct.

5. RELATIONAL: For values #2 and #3, consider how they relate to and complement the #1 value.

EXAMPLE ANCHORS:
- "When pressure mounts, ask: Can I look at myself in the mirror afterward?"
- "Before committing, ask: Does this honor what I truly value?"
- "When faced with shortcuts, ask: Would the person I want to be take this path?"
- "In conflict, ask: Am I responding with the care this person deserves?"
- "When making trade-offs, ask: What would I regret not prioritizing?"

Use the generate_value_definition tool for EACH of the top 3 values. Call the tool 3 times total.`

// SystemPrompt returns the fixed role instructions.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt assembles the per-session context: the ranked top 3 with
// domain and description, the sorting summary, the full very-important list,
// and the transcript verbatim when present. The transcript ends with a mining
// instruction so the model attributes phrases to individual values.
func BuildUserPrompt(rankedValues []string, transcript string, tiers insights.Tiers) string {
	top3 := rankedValues
	if len(top3) > 3 {
		top3 = top3[:3]
	}

	var top3Lines []string
	for i, id := range top3 {
		v, ok := catalog.ValueByID(id)
		if !ok {
			continue
		}
		domainName := "Unknown"
		if d, ok := catalog.DomainByID(v.DomainID); ok {
			domainName = d.Name
		}
		top3Lines = append(top3Lines, fmt.Sprintf("#%d: %s (%s) - %s", i+1, v.Name, domainName, v.Description))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `TASK: Generate personalized definitions for this person's top 3 values.

TOP 3 RANKED VALUES:
%s

%s

FULL "VERY IMPORTANT" LIST:
%s
`, strings.Join(top3Lines, "\n"), insights.SortingContext(tiers), insights.ValuesContext(tiers.Very))

	if strings.TrimSpace(transcript) != "" {
		fmt.Fprintf(&b, "\n\nUSER'S VOICE TRANSCRIPT (about their top 3 values):\n\"%s\"\n\n", transcript)
		b.WriteString("IMPORTANT: Parse the transcript for mentions of each value. Incorporate their actual language where appropriate. They may have discussed:\n")
		for i, id := range top3 {
			if v, ok := catalog.ValueByID(id); ok {
				fmt.Fprintf(&b, "- %s (#%d)\n", v.Name, i+1)
			}
		}
		b.WriteString("\nPreserve their authentic voice in each definition.")
	} else {
		b.WriteString("\n\nNOTE: The user did not provide a voice transcript. Generate thoughtful definitions based on the sorting data and value descriptions.")
	}

	b.WriteString("\n\nNow generate definitions for all 3 values using the generate_value_definition tool. Call it once for each value.")
	return b.String()
}
