package store

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/foodsharenow/foodshare-api/schema"
)

var (
	ErrEmptyCatalog        = fmt.Errorf("seed has no listings")
	ErrInvalidListingID    = fmt.Errorf("listing id must be positive")
	ErrDuplicatedListingID = fmt.Errorf("listing id is duplicated")
	ErrMissingPeriod       = fmt.Errorf("seed is missing impact stats of a period")
)

// Seed is the mock data every screen is rendered from
type Seed struct {
	Listings        []schema.Listing              `yaml:"listings"`
	Recommendations []schema.Recommendation       `yaml:"recommendations"`
	Pickups         []schema.PickupSchedule       `yaml:"pickups"`
	Route           schema.Route                  `yaml:"route"`
	TotalMeals      string                        `yaml:"total_meals"`
	Impact          map[string]schema.ImpactStats `yaml:"impact"`
	Environment     schema.EnvironmentalImpact    `yaml:"environment"`
	Activity        []schema.Activity             `yaml:"activity"`
	TopDonors       []schema.TopDonor             `yaml:"top_donors"`
	WasteHotspots   []schema.WasteHotspot         `yaml:"waste_hotspots"`
	Highlights      []schema.Highlight            `yaml:"highlights"`
	Features        []schema.Feature              `yaml:"features"`
}

// Validate checks the invariants the store relies on
func (s Seed) Validate() error {
	if len(s.Listings) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[int64]struct{}, len(s.Listings))
	for _, l := range s.Listings {
		if l.ID <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidListingID, l.ID)
		}
		if _, ok := seen[l.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicatedListingID, l.ID)
		}
		seen[l.ID] = struct{}{}
	}

	for _, p := range []string{schema.PERIOD_WEEK, schema.PERIOD_MONTH, schema.PERIOD_YEAR} {
		if _, ok := s.Impact[p]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingPeriod, p)
		}
	}

	return nil
}

// LoadSeedFile reads a YAML seed file. Unknown keys are rejected.
func LoadSeedFile(filename string) (Seed, error) {
	var seed Seed

	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return seed, err
	}

	if err := yaml.UnmarshalStrict(data, &seed); err != nil {
		return seed, fmt.Errorf("parse seed file %s: %w", filename, err)
	}

	return seed, nil
}

// DefaultSeed returns the built-in mock data
func DefaultSeed() Seed {
	return Seed{
		Listings: []schema.Listing{
			{
				ID:          1,
				FoodType:    "Vegetable Curry & Rice",
				Quantity:    "25 servings",
				ExpiryTime:  "3 hours",
				Location:    "Green Valley Restaurant, Downtown",
				Distance:    "0.8 km",
				Donor:       "Green Valley Restaurant",
				DonorPhone:  "+91 98765 43210",
				Description: "Fresh vegetable curry with basmati rice. Prepared this morning for a cancelled event.",
				Image:       "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?w=300&h=200&fit=crop",
				Urgent:      true,
				Verified:    true,
			},
			{
				ID:          2,
				FoodType:    "Fresh Bread & Pastries",
				Quantity:    "40 pieces",
				ExpiryTime:  "6 hours",
				Location:    "Sunrise Bakery, Mall Road",
				Distance:    "1.2 km",
				Donor:       "Sunrise Bakery",
				DonorPhone:  "+91 98765 43211",
				Description: "Assorted fresh bread, croissants, and pastries from today's batch.",
				Image:       "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=300&h=200&fit=crop",
				Urgent:      false,
				Verified:    true,
			},
			{
				ID:          3,
				FoodType:    "Wedding Leftovers - Mixed",
				Quantity:    "100+ servings",
				ExpiryTime:  "4 hours",
				Location:    "Paradise Banquet Hall, Sector 15",
				Distance:    "2.1 km",
				Donor:       "Paradise Banquet Hall",
				DonorPhone:  "+91 98765 43212",
				Description: "Various dishes from wedding reception: dal, sabzi, rice, roti, and sweets.",
				Image:       "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=300&h=200&fit=crop",
				Urgent:      true,
				Verified:    true,
			},
			{
				ID:          4,
				FoodType:    "Fresh Fruits",
				Quantity:    "20 kg",
				ExpiryTime:  "12 hours",
				Location:    "City Fresh Mart, Central Market",
				Distance:    "1.5 km",
				Donor:       "City Fresh Mart",
				DonorPhone:  "+91 98765 43213",
				Description: "Assorted fresh fruits - apples, bananas, oranges. Slightly overripe but good quality.",
				Image:       "https://images.unsplash.com/photo-1619566636858-adf3ef46400b?w=300&h=200&fit=crop",
				Urgent:      false,
				Verified:    true,
			},
			{
				ID:          5,
				FoodType:    "Cooked Meals",
				Quantity:    "15 servings",
				ExpiryTime:  "2 hours",
				Location:    "Home Kitchen, Rose Garden",
				Distance:    "0.5 km",
				Donor:       "Priya Sharma",
				DonorPhone:  "+91 98765 43214",
				Description: "Home-cooked dal, rice, and vegetables. Made for a family gathering that got cancelled.",
				Image:       "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=300&h=200&fit=crop",
				Urgent:      true,
				Verified:    false,
			},
		},
		Recommendations: []schema.Recommendation{
			{Kind: "hotspot", Title: "Hotspot Alert", Message: "High food availability in Downtown area today"},
			{Kind: "match", Title: "Best Match", Message: "Vegetable Curry matches your organization's preferences"},
			{Kind: "route", Title: "Optimal Route", Message: "3 pickups can be combined for efficient collection"},
		},
		Pickups: []schema.PickupSchedule{
			{
				ID:        1,
				Time:      "10:30 AM",
				FoodType:  "Vegetable Curry & Rice",
				Donor:     "Green Valley Restaurant",
				Recipient: "Hope Foundation NGO",
				Location:  "Downtown, 0.8 km",
				Status:    schema.PICKUP_CONFIRMED,
				Urgency:   schema.URGENCY_HIGH,
				Quantity:  "25 servings",
				Volunteer: "Raj Patel",
			},
			{
				ID:        2,
				Time:      "2:00 PM",
				FoodType:  "Wedding Leftovers",
				Donor:     "Paradise Banquet Hall",
				Recipient: "Child Care Center",
				Location:  "Sector 15, 2.1 km",
				Status:    schema.PICKUP_PENDING,
				Urgency:   schema.URGENCY_HIGH,
				Quantity:  "100+ servings",
				Volunteer: "Priya Sharma",
			},
			{
				ID:        3,
				Time:      "4:30 PM",
				FoodType:  "Fresh Bread & Pastries",
				Donor:     "Sunrise Bakery",
				Recipient: "Senior Care Home",
				Location:  "Mall Road, 1.2 km",
				Status:    schema.PICKUP_CONFIRMED,
				Urgency:   schema.URGENCY_MEDIUM,
				Quantity:  "40 pieces",
				Volunteer: "Amit Kumar",
			},
			{
				ID:        4,
				Time:      "6:15 PM",
				FoodType:  "Fresh Fruits",
				Donor:     "City Fresh Mart",
				Recipient: "Community Kitchen",
				Location:  "Central Market, 1.5 km",
				Status:    schema.PICKUP_IN_PROGRESS,
				Urgency:   schema.URGENCY_LOW,
				Quantity:  "20 kg",
				Volunteer: "Sarah Wilson",
			},
		},
		Route: schema.Route{
			Stops: []schema.RouteStop{
				{Order: 1, Location: "Green Valley Restaurant", Time: "10:30 AM", Distance: "0.8 km"},
				{Order: 2, Location: "Sunrise Bakery", Time: "11:15 AM", Distance: "0.4 km from stop 1"},
				{Order: 3, Location: "City Fresh Mart", Time: "12:00 PM", Distance: "0.3 km from stop 2"},
				{Order: 4, Location: "Paradise Banquet Hall", Time: "2:00 PM", Distance: "0.9 km from stop 3"},
			},
			TotalDistance: "2.4 km",
			TotalDuration: "3.5 hours",
			Savings:       "Saves 1.2 km compared to individual trips",
		},
		TotalMeals: "185+",
		Impact: map[string]schema.ImpactStats{
			schema.PERIOD_WEEK: {
				MealsServed: 847,
				FoodSaved:   "2.3 tons",
				Donations:   156,
				Pickups:     89,
				Volunteers:  23,
				CO2Saved:    "1.8 tons",
			},
			schema.PERIOD_MONTH: {
				MealsServed: 3420,
				FoodSaved:   "9.2 tons",
				Donations:   678,
				Pickups:     342,
				Volunteers:  67,
				CO2Saved:    "7.1 tons",
			},
			schema.PERIOD_YEAR: {
				MealsServed: 28340,
				FoodSaved:   "78.5 tons",
				Donations:   5234,
				Pickups:     2890,
				Volunteers:  189,
				CO2Saved:    "62.3 tons",
			},
		},
		Environment: schema.EnvironmentalImpact{
			WaterSaved:  "45,000L",
			EnergySaved: "1,200 kWh",
		},
		Activity: []schema.Activity{
			{ID: 1, Type: "donation", Title: "New food donation", Description: "Green Valley Restaurant donated 25 servings of curry", Time: "2 minutes ago"},
			{ID: 2, Type: "pickup", Title: "Pickup completed", Description: "Hope Foundation collected bread from Sunrise Bakery", Time: "15 minutes ago"},
			{ID: 3, Type: "volunteer", Title: "New volunteer joined", Description: "Sarah Wilson signed up as a pickup volunteer", Time: "1 hour ago"},
			{ID: 4, Type: "request", Title: "Food request fulfilled", Description: "Community Kitchen received 100+ servings", Time: "2 hours ago"},
		},
		TopDonors: []schema.TopDonor{
			{Name: "Green Valley Restaurant", Donations: 45, Meals: 1250},
			{Name: "Paradise Banquet Hall", Donations: 23, Meals: 890},
			{Name: "Sunrise Bakery", Donations: 67, Meals: 780},
			{Name: "City Fresh Mart", Donations: 34, Meals: 650},
		},
		WasteHotspots: []schema.WasteHotspot{
			{Area: "Downtown", Waste: "High", Trend: "up"},
			{Area: "Mall Road", Waste: "Medium", Trend: "down"},
			{Area: "Sector 15", Waste: "Medium", Trend: "stable"},
			{Area: "Central Market", Waste: "Low", Trend: "down"},
		},
		Highlights: []schema.Highlight{
			{Label: "Meals Saved", Value: "2,847"},
			{Label: "Active Donors", Value: "156"},
			{Label: "Pickups Today", Value: "23"},
			{Label: "Partner NGOs", Value: "12"},
		},
		Features: []schema.Feature{
			{Icon: "🤖", Title: "AI Food Recognition", Description: "Upload photos and our AI automatically detects food type and estimates quantity"},
			{Icon: "🗺️", Title: "Smart Route Planning", Description: "Optimized pickup routes to minimize travel time and maximize food rescue"},
			{Icon: "📊", Title: "Demand Prediction", Description: "AI-powered insights show food waste hotspots and demand patterns"},
			{Icon: "⚡", Title: "Real-time Matching", Description: "Instant notifications connect food donors with nearby recipients"},
		},
	}
}
