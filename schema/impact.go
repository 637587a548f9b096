package schema

const (
	PERIOD_WEEK  = "week"
	PERIOD_MONTH = "month"
	PERIOD_YEAR  = "year"
)

type ImpactStats struct {
	MealsServed int64  `json:"meals_served" yaml:"meals_served"`
	FoodSaved   string `json:"food_saved" yaml:"food_saved"`
	Donations   int64  `json:"donations" yaml:"donations"`
	Pickups     int64  `json:"pickups" yaml:"pickups"`
	Volunteers  int64  `json:"volunteers" yaml:"volunteers"`
	CO2Saved    string `json:"co2_saved" yaml:"co2_saved"`
}

type EnvironmentalImpact struct {
	CO2Saved    string `json:"co2_saved" yaml:"-"`
	WaterSaved  string `json:"water_saved" yaml:"water_saved"`
	EnergySaved string `json:"energy_saved" yaml:"energy_saved"`
}

type Activity struct {
	ID          int64  `json:"id" yaml:"id"`
	Type        string `json:"type" yaml:"type"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Time        string `json:"time" yaml:"time"`
}

type TopDonor struct {
	Name      string `json:"name" yaml:"name"`
	Donations int64  `json:"donations" yaml:"donations"`
	Meals     int64  `json:"meals" yaml:"meals"`
}

type WasteHotspot struct {
	Area  string `json:"area" yaml:"area"`
	Waste string `json:"waste" yaml:"waste"`
	Trend string `json:"trend" yaml:"trend"`
}

// Dashboard is everything the impact screen renders for one period.
type Dashboard struct {
	Period        string              `json:"period"`
	Stats         ImpactStats         `json:"stats"`
	Environment   EnvironmentalImpact `json:"environment"`
	Activity      []Activity          `json:"recent_activity"`
	TopDonors     []TopDonor          `json:"top_donors"`
	WasteHotspots []WasteHotspot      `json:"waste_hotspots"`
}
