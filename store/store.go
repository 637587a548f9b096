package store

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/foodsharenow/foodshare-api/catalog"
	"github.com/foodsharenow/foodshare-api/schema"
)

const storeLogPrefix = "store"

// FoodShareCore is the main datastore behind every screen
type FoodShareCore interface {
	Pinger
	ListingCatalog
	RequestTracker
	PickupPlanner
	ImpactReporter
	Showcase
}

// Pinger - check the storage health status
type Pinger interface {
	Ping() error
}

// ListingCatalog - read access to the seeded food listings
type ListingCatalog interface {
	ListListings() []schema.Listing
	GetListing(id int64) (*schema.Listing, error)
}

// RequestTracker - per session pickup requests
type RequestTracker interface {
	RequestState(sessionID string) catalog.RequestState
	RequestPickup(sessionID string, listingID int64) (catalog.RequestState, bool, error)
}

// PickupPlanner - pickup schedule and the precomputed route
type PickupPlanner interface {
	ListPickups() []schema.PickupSchedule
	PickupRoute() schema.Route
	PickupSummary() schema.PickupSummary
}

// ImpactReporter - figures of the impact dashboard
type ImpactReporter interface {
	ImpactStats(period string) (*schema.ImpactStats, error)
	EnvironmentalImpact(period string) (*schema.EnvironmentalImpact, error)
	RecentActivity() []schema.Activity
	TopDonors() []schema.TopDonor
	WasteHotspots() []schema.WasteHotspot
}

// Showcase - landing page and listing screen content
type Showcase interface {
	Highlights() []schema.Highlight
	Features() []schema.Feature
	Recommendations() []schema.Recommendation
}

// FoodShareStore is an in-memory implementation of FoodShareCore. The seed
// is read-only after construction; only request states change.
type FoodShareStore struct {
	seed Seed

	// listing id to its index in seed.Listings
	index map[int64]int

	mu       sync.RWMutex
	requests map[string]catalog.RequestState
}

// NewFoodShareStore validates seed and builds a store around it
func NewFoodShareStore(seed Seed) (*FoodShareStore, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}

	index := make(map[int64]int, len(seed.Listings))
	for i, l := range seed.Listings {
		index[l.ID] = i
	}

	log.WithField("prefix", storeLogPrefix).Infof("seeded %d listings, %d pickups", len(seed.Listings), len(seed.Pickups))

	return &FoodShareStore{
		seed:     seed,
		index:    index,
		requests: make(map[string]catalog.RequestState),
	}, nil
}

// Ping always succeeds, there is no backing database
func (s *FoodShareStore) Ping() error {
	return nil
}
