package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/foodsharenow/foodshare-api/schema"
)

// Category is the second filter dimension applied next to the search text.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryUrgent   Category = "urgent"
	CategoryVerified Category = "verified"
)

var ErrUnknownCategory = fmt.Errorf("unknown listing category")

// ParseCategory converts a query parameter into a Category. An empty value
// selects every listing.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.TrimSpace(s)); c {
	case "":
		return CategoryAll, nil
	case CategoryAll, CategoryUrgent, CategoryVerified:
		return c, nil
	default:
		return "", ErrUnknownCategory
	}
}

func (c Category) match(l schema.Listing) bool {
	switch c {
	case CategoryAll:
		return true
	case CategoryUrgent:
		return l.Urgent
	case CategoryVerified:
		return l.Verified
	default:
		return false
	}
}

// Query returns the listings whose food type or location contains text,
// compared case-insensitively, and which belong to category. The catalog
// order is kept and the input slice is left untouched.
func Query(listings []schema.Listing, text string, category Category) []schema.Listing {
	folder := cases.Fold()
	needle := folder.String(text)

	result := make([]schema.Listing, 0, len(listings))
	for _, l := range listings {
		if !category.match(l) {
			continue
		}

		if needle == "" ||
			strings.Contains(folder.String(l.FoodType), needle) ||
			strings.Contains(folder.String(l.Location), needle) {
			result = append(result, l)
		}
	}

	return result
}
