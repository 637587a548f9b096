package schema

const (
	PICKUP_CONFIRMED   = "confirmed"
	PICKUP_PENDING     = "pending"
	PICKUP_IN_PROGRESS = "in-progress"
)

const (
	URGENCY_HIGH   = "high"
	URGENCY_MEDIUM = "medium"
	URGENCY_LOW    = "low"
)

const (
	PICKUP_DATE_TODAY    = "today"
	PICKUP_DATE_TOMORROW = "tomorrow"
	PICKUP_DATE_WEEK     = "week"
)

type PickupSchedule struct {
	ID        int64  `json:"id" yaml:"id"`
	Time      string `json:"time" yaml:"time"`
	FoodType  string `json:"food_type" yaml:"food_type"`
	Donor     string `json:"donor" yaml:"donor"`
	Recipient string `json:"recipient" yaml:"recipient"`
	Location  string `json:"location" yaml:"location"`
	Status    string `json:"status" yaml:"status"`
	Urgency   string `json:"urgency" yaml:"urgency"`
	Quantity  string `json:"quantity" yaml:"quantity"`
	Volunteer string `json:"volunteer" yaml:"volunteer"`
}

type RouteStop struct {
	Order    int    `json:"order" yaml:"order"`
	Location string `json:"location" yaml:"location"`
	Time     string `json:"time" yaml:"time"`
	Distance string `json:"distance" yaml:"distance"`
}

// Route is the precomputed pickup sequence. Nothing in it is derived from
// real coordinates.
type Route struct {
	Stops         []RouteStop `json:"stops" yaml:"stops"`
	TotalDistance string      `json:"total_distance" yaml:"total_distance"`
	TotalDuration string      `json:"total_duration" yaml:"total_duration"`
	Savings       string      `json:"savings" yaml:"savings"`
}

type PickupSummary struct {
	Total      int    `json:"total"`
	Confirmed  int    `json:"confirmed"`
	Pending    int    `json:"pending"`
	InProgress int    `json:"in_progress"`
	TotalMeals string `json:"total_meals"`
}
