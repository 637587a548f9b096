package consts

import "time"

const (
	SESSION_HEADER  = "X-Session-ID"
	SESSION_COOKIE  = "foodshare_session"
	SESSION_MAX_AGE = 24 * time.Hour
)

// Fixed suggestion of the simulated food recognition
const (
	ANALYSIS_DETECTED_FOOD      = "Vegetable Curry"
	ANALYSIS_ESTIMATED_QUANTITY = "15 servings"
	ANALYSIS_CONFIDENCE         = 92
	ANALYSIS_DEFAULT_DELAY      = time.Second
)
