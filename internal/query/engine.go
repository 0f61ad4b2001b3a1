// Package query computes filtered, sorted and aggregated projections of the
// lead portfolio. Everything here is pure: callers pass the lead snapshot and
// the viewing operator explicitly, and get a fresh slice back.
package query

import (
	"sort"
	"strings"

	"github.com/reboundcg/lead-portal/internal/entity"
	"github.com/reboundcg/lead-portal/internal/parse"
)

// FilterAll is the sentinel meaning "no filter" for a structured filter.
// A zero-value filter field behaves the same.
const FilterAll = "all"

type Filters struct {
	Status   string
	LeadType string
	County   string
	State    string
}

type SortKey string

const (
	SortByDate    SortKey = "date"
	SortBySurplus SortKey = "surplus"
)

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

type Sort struct {
	Key SortKey
	Dir SortDir
}

// Scope drops every lead the operator may not see. Admins see everything;
// standard operators only leads assigned to them. Applied before any other
// filter.
func Scope(leads []entity.Lead, viewer entity.User) []entity.Lead {
	if viewer.IsAdmin() {
		return leads
	}

	scoped := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if l.AssignedTo == viewer.ID {
			scoped = append(scoped, l)
		}
	}
	return scoped
}

// Project returns the ordered subset of leads visible to the operator under
// the given filters, search text and sort. Structured filters and search are
// combined with AND; the sort is stable so ties keep input order.
func Project(leads []entity.Lead, viewer entity.User, f Filters, search string, s Sort) []entity.Lead {
	out := make([]entity.Lead, 0, len(leads))
	for _, l := range Scope(leads, viewer) {
		if matches(l, f, search) {
			out = append(out, l)
		}
	}
	sortLeads(out, s)
	return out
}

func matches(l entity.Lead, f Filters, search string) bool {
	if !filterExact(f.Status, l.Status) {
		return false
	}
	if !filterExact(f.LeadType, l.LeadType) {
		return false
	}
	if !filterExact(f.County, l.County) {
		return false
	}
	if active(f.State) {
		state, _ := parse.CountyState(l.County)
		if state == "" || state != f.State {
			return false
		}
	}

	if search = strings.TrimSpace(search); search != "" {
		s := strings.ToLower(search)
		if !contains(l.CaseNumber, s) &&
			!contains(l.PropertyAddress, s) &&
			!contains(l.County, s) &&
			!contains(l.Defendants, s) {
			return false
		}
	}
	return true
}

func active(filter string) bool {
	return filter != "" && filter != FilterAll
}

func filterExact(filter, value string) bool {
	return !active(filter) || filter == value
}

func contains(haystack, lowered string) bool {
	return strings.Contains(strings.ToLower(haystack), lowered)
}

func sortLeads(leads []entity.Lead, s Sort) {
	var less func(a, b entity.Lead) bool
	switch s.Key {
	case SortByDate:
		less = func(a, b entity.Lead) bool {
			return parse.AuctionDate(a.AuctionDate).Before(parse.AuctionDate(b.AuctionDate))
		}
	case SortBySurplus:
		less = func(a, b entity.Lead) bool {
			return surplusOrZero(a) < surplusOrZero(b)
		}
	default:
		return
	}

	if s.Dir == SortDesc {
		asc := less
		less = func(a, b entity.Lead) bool { return asc(b, a) }
	}
	sort.SliceStable(leads, func(i, j int) bool { return less(leads[i], leads[j]) })
}

func surplusOrZero(l entity.Lead) float64 {
	v, ok := parse.Currency(l.Surplus)
	if !ok {
		return 0
	}
	return v
}
