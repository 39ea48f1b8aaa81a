// Package catalog holds the static value-item deck the assessment is built
// on: 90 value items across 9 domains, compiled into the binary and validated
// at startup. Everything here is read-only after Validate.
package catalog

import "fmt"

// Counts the deck must satisfy. Validate fails fast on any deviation so a bad
// deck never serves traffic.
const (
	ValueCount  = 90
	DomainCount = 9
)

// ValueItem is one sortable card in the deck.
type ValueItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DomainID    string `json:"domainId"`
}

// Domain groups related value items.
type Domain struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var (
	valuesByID  = make(map[string]ValueItem, ValueCount)
	domainsByID = make(map[string]Domain, DomainCount)
)

func init() {
	for _, d := range Domains {
		domainsByID[d.ID] = d
	}
	for _, v := range Values {
		valuesByID[v.ID] = v
	}
}

// Validate checks the compiled deck against the catalog contract: exactly 90
// unique value items, exactly 9 domains, every domain reference resolvable.
func Validate() error {
	if len(Values) != ValueCount {
		return fmt.Errorf("catalog: expected %d value items, have %d", ValueCount, len(Values))
	}
	if len(Domains) != DomainCount {
		return fmt.Errorf("catalog: expected %d domains, have %d", DomainCount, len(Domains))
	}
	if len(valuesByID) != ValueCount {
		return fmt.Errorf("catalog: duplicate value ids (%d unique of %d)", len(valuesByID), len(Values))
	}
	if len(domainsByID) != DomainCount {
		return fmt.Errorf("catalog: duplicate domain ids (%d unique of %d)", len(domainsByID), len(Domains))
	}
	for _, v := range Values {
		if _, ok := domainsByID[v.DomainID]; !ok {
			return fmt.Errorf("catalog: value %q references unknown domain %q", v.ID, v.DomainID)
		}
	}
	return nil
}

// ValueByID looks up a value item by id.
func ValueByID(id string) (ValueItem, bool) {
	v, ok := valuesByID[id]
	return v, ok
}

// DomainByID looks up a domain by id.
func DomainByID(id string) (Domain, bool) {
	d, ok := domainsByID[id]
	return d, ok
}

// DomainForValue resolves the domain a value item belongs to.
func DomainForValue(valueID string) (Domain, bool) {
	v, ok := valuesByID[valueID]
	if !ok {
		return Domain{}, false
	}
	return DomainByID(v.DomainID)
}

// ValuesByDomain returns the value items in a domain, in deck order.
func ValuesByDomain(domainID string) []ValueItem {
	var out []ValueItem
	for _, v := range Values {
		if v.DomainID == domainID {
			out = append(out, v)
		}
	}
	return out
}

// AllIDs returns the ids of every value item in deck order.
func AllIDs() []string {
	ids := make([]string, 0, len(Values))
	for _, v := range Values {
		ids = append(ids, v.ID)
	}
	return ids
}
