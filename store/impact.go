package store

import (
	"fmt"

	"github.com/foodsharenow/foodshare-api/schema"
)

var ErrUnknownPeriod = fmt.Errorf("unknown dashboard period")

// ImpactStats returns the headline figures of a dashboard period
func (s *FoodShareStore) ImpactStats(period string) (*schema.ImpactStats, error) {
	stats, ok := s.seed.Impact[period]
	if !ok {
		return nil, ErrUnknownPeriod
	}

	return &stats, nil
}

// EnvironmentalImpact returns the environment card of a period. Only the
// CO2 figure depends on the period.
func (s *FoodShareStore) EnvironmentalImpact(period string) (*schema.EnvironmentalImpact, error) {
	stats, ok := s.seed.Impact[period]
	if !ok {
		return nil, ErrUnknownPeriod
	}

	env := s.seed.Environment
	env.CO2Saved = stats.CO2Saved
	return &env, nil
}

func (s *FoodShareStore) RecentActivity() []schema.Activity {
	activity := make([]schema.Activity, len(s.seed.Activity))
	copy(activity, s.seed.Activity)
	return activity
}

func (s *FoodShareStore) TopDonors() []schema.TopDonor {
	donors := make([]schema.TopDonor, len(s.seed.TopDonors))
	copy(donors, s.seed.TopDonors)
	return donors
}

func (s *FoodShareStore) WasteHotspots() []schema.WasteHotspot {
	hotspots := make([]schema.WasteHotspot, len(s.seed.WasteHotspots))
	copy(hotspots, s.seed.WasteHotspots)
	return hotspots
}
