// Package insights computes domain-level views over arbitrary subsets of the
// value deck. All functions are pure; the synthesis prompt builder is the main
// consumer.
package insights

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"valuesprism/internal/catalog"
)

// DomainDistribution is one row of a distribution: how many of the input ids
// fall in the domain and what share of the input that is.
type DomainDistribution struct {
	DomainID   string `json:"domainId"`
	DomainName string `json:"domainName"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// Distribution maps a set of value ids onto all 9 domains, zero-count domains
// included, sorted by count descending. Percentages are rounded to the
// nearest integer of count/total*100 and are all zero for an empty input.
// Ties keep canonical catalog domain order, so the result is deterministic
// regardless of input order.
func Distribution(ids []string) []DomainDistribution {
	counts := make(map[string]int, catalog.DomainCount)
	total := 0
	for _, id := range ids {
		v, ok := catalog.ValueByID(id)
		if !ok {
			continue
		}
		counts[v.DomainID]++
		total++
	}

	out := make([]DomainDistribution, 0, catalog.DomainCount)
	for _, d := range catalog.Domains {
		row := DomainDistribution{DomainID: d.ID, DomainName: d.Name, Count: counts[d.ID]}
		if total > 0 {
			row.Percentage = int(math.Round(float64(row.Count) / float64(total) * 100))
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// ValuesContext renders value ids as numbered "Name (Domain) - description"
// lines for the model prompt. Unknown ids are skipped without renumbering
// gaps.
func ValuesContext(ids []string) string {
	var b strings.Builder
	n := 0
	for _, id := range ids {
		v, ok := catalog.ValueByID(id)
		if !ok {
			continue
		}
		domainName := "Unknown"
		if d, ok := catalog.DomainByID(v.DomainID); ok {
			domainName = d.Name
		}
		n++
		if n > 1 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s (%s) - %s", n, v.Name, domainName, v.Description)
	}
	return b.String()
}

// Tiers is the three-way sort partition the context summarizers consume.
type Tiers struct {
	Very     []string
	Somewhat []string
	Less     []string
}

// SortingContext summarizes the sort outcome for the model prompt: tier
// sizes, the dominant domains among "very important" (top 3 with a nonzero
// count), and domains the user deprioritized (over 15% of "less important",
// top 2).
func SortingContext(t Tiers) string {
	veryDist := Distribution(t.Very)
	var top []string
	for _, d := range veryDist {
		if d.Count == 0 || len(top) == 3 {
			break
		}
		top = append(top, fmt.Sprintf("%s (%d%%)", d.DomainName, d.Percentage))
	}
	topDomains := strings.Join(top, ", ")
	if topDomains == "" {
		topDomains = "Evenly distributed"
	}

	var depri []string
	for _, d := range Distribution(t.Less) {
		if len(depri) == 2 {
			break
		}
		if d.Percentage > 15 {
			depri = append(depri, d.DomainName)
		}
	}
	deprioritized := strings.Join(depri, ", ")
	if deprioritized == "" {
		deprioritized = "None significantly deprioritized"
	}

	return fmt.Sprintf(`SORTING SUMMARY:
- Very Important: %d values
- Somewhat Important: %d values
- Less Important: %d values

DOMINANT DOMAINS (Very Important):
%s

DEPRIORITIZED DOMAINS (Less Important):
%s`, len(t.Very), len(t.Somewhat), len(t.Less), topDomains, deprioritized)
}
