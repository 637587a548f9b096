package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	ANALYSIS_ANALYZING = "analyzing"
	ANALYSIS_COMPLETED = "completed"
)

// Donation is a submission of the donation form. Submissions are
// acknowledged but never added to the listing catalog.
type Donation struct {
	FoodType    string `json:"food_type" binding:"required"`
	Quantity    string `json:"quantity" binding:"required"`
	ExpiryHours int    `json:"expiry_hours" binding:"required,oneof=2 4 8 12 24"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description"`
	ContactInfo string `json:"contact_info" binding:"required"`
}

// FoodAnalysis is the result of the simulated image recognition that
// prefills the donation form.
type FoodAnalysis struct {
	ID                uuid.UUID  `json:"id"`
	SessionID         string     `json:"-"`
	Status            string     `json:"status"`
	DetectedFood      string     `json:"detected_food,omitempty"`
	EstimatedQuantity string     `json:"estimated_quantity,omitempty"`
	Confidence        int        `json:"confidence,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}
