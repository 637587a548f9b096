package schema

// Listing is a single food donation offer shown on the listings screen.
// The catalog of listings is seeded once and never changes afterwards.
type Listing struct {
	ID          int64  `json:"id" yaml:"id"`
	FoodType    string `json:"food_type" yaml:"food_type"`
	Quantity    string `json:"quantity" yaml:"quantity"`
	ExpiryTime  string `json:"expiry_time" yaml:"expiry_time"`
	Location    string `json:"location" yaml:"location"`
	Distance    string `json:"distance" yaml:"distance"`
	Donor       string `json:"donor" yaml:"donor"`
	DonorPhone  string `json:"donor_phone" yaml:"donor_phone"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Urgent      bool   `json:"urgent" yaml:"urgent"`
	Verified    bool   `json:"verified" yaml:"verified"`
}

// ListingView is a listing decorated with the request status of the
// current session.
type ListingView struct {
	Listing
	Requested bool `json:"requested"`
}

// Recommendation is a canned insight rendered above the listings grid.
type Recommendation struct {
	Kind    string `json:"kind" yaml:"kind"`
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
}

// ContactLink is the result of the call / message actions on a listing.
type ContactLink struct {
	ListingID int64  `json:"listing_id"`
	Donor     string `json:"donor"`
	Phone     string `json:"phone"`
	Link      string `json:"link"`
}
