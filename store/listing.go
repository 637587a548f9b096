package store

import (
	"fmt"

	"github.com/foodsharenow/foodshare-api/schema"
)

var ErrListingNotFound = fmt.Errorf("listing not found")

// ListListings returns a copy of the catalog in seed order
func (s *FoodShareStore) ListListings() []schema.Listing {
	listings := make([]schema.Listing, len(s.seed.Listings))
	copy(listings, s.seed.Listings)
	return listings
}

// GetListing looks up a listing by its id
func (s *FoodShareStore) GetListing(id int64) (*schema.Listing, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, ErrListingNotFound
	}

	l := s.seed.Listings[i]
	return &l, nil
}

// Recommendations returns the canned insights of the listings screen
func (s *FoodShareStore) Recommendations() []schema.Recommendation {
	recommendations := make([]schema.Recommendation, len(s.seed.Recommendations))
	copy(recommendations, s.seed.Recommendations)
	return recommendations
}

func (s *FoodShareStore) Highlights() []schema.Highlight {
	highlights := make([]schema.Highlight, len(s.seed.Highlights))
	copy(highlights, s.seed.Highlights)
	return highlights
}

func (s *FoodShareStore) Features() []schema.Feature {
	features := make([]schema.Feature, len(s.seed.Features))
	copy(features, s.seed.Features)
	return features
}
