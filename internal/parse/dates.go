package parse

import "time"

// Auction dates arrive from imports in a handful of loose formats.
var auctionDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
}

// AuctionDate parses a stored auction date. Blank or unparseable dates come
// back as the zero time, which sorts as earliest possible.
func AuctionDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range auctionDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
