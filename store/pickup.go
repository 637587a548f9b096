package store

import (
	"github.com/foodsharenow/foodshare-api/schema"
)

func (s *FoodShareStore) ListPickups() []schema.PickupSchedule {
	pickups := make([]schema.PickupSchedule, len(s.seed.Pickups))
	copy(pickups, s.seed.Pickups)
	return pickups
}

// PickupRoute returns the precomputed pickup sequence
func (s *FoodShareStore) PickupRoute() schema.Route {
	route := s.seed.Route
	route.Stops = make([]schema.RouteStop, len(s.seed.Route.Stops))
	copy(route.Stops, s.seed.Route.Stops)
	return route
}

// PickupSummary counts the schedules by status
func (s *FoodShareStore) PickupSummary() schema.PickupSummary {
	summary := schema.PickupSummary{
		Total:      len(s.seed.Pickups),
		TotalMeals: s.seed.TotalMeals,
	}

	for _, p := range s.seed.Pickups {
		switch p.Status {
		case schema.PICKUP_CONFIRMED:
			summary.Confirmed++
		case schema.PICKUP_PENDING:
			summary.Pending++
		case schema.PICKUP_IN_PROGRESS:
			summary.InProgress++
		}
	}

	return summary
}
