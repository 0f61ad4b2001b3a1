package query

import (
	"sort"

	"github.com/reboundcg/lead-portal/internal/entity"
	"github.com/reboundcg/lead-portal/internal/parse"
)

// Statistics summarizes a lead set for the dashboard header.
type Statistics struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	ByType   map[string]int `json:"by_type"`

	// TotalRecoverableSurplus sums parsed surplus over leads that are not
	// Dead and whose surplus parses to a positive number. Negative or
	// unparseable amounts contribute zero, never a negative adjustment.
	TotalRecoverableSurplus float64 `json:"total_recoverable_surplus"`
}

// Stats aggregates over the full (role-scoped) lead set, not the filtered
// subset, so the header stays stable while the operator filters.
func Stats(leads []entity.Lead) Statistics {
	stats := Statistics{
		Total:    len(leads),
		ByStatus: make(map[string]int),
		ByType:   make(map[string]int),
	}

	for _, l := range leads {
		stats.ByStatus[l.Status]++
		stats.ByType[l.LeadType]++

		if l.Status == entity.StatusDead {
			continue
		}
		if v, ok := parse.Currency(l.Surplus); ok && v > 0 {
			stats.TotalRecoverableSurplus += v
		}
	}
	return stats
}

// Counties returns the sorted distinct county codes present across the lead
// set. Computed over all leads so filter menus stay stable while filtering.
func Counties(leads []entity.Lead) []string {
	return distinct(leads, func(l entity.Lead) string { return l.County })
}

// States returns the sorted distinct two-letter state codes derivable from
// the county codes present across the lead set.
func States(leads []entity.Lead) []string {
	return distinct(leads, func(l entity.Lead) string {
		state, _ := parse.CountyState(l.County)
		return state
	})
}

func distinct(leads []entity.Lead, key func(entity.Lead) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, l := range leads {
		v := key(l)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
