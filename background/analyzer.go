package background

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/uber-go/tally"

	"github.com/foodsharenow/foodshare-api/consts"
	"github.com/foodsharenow/foodshare-api/schema"
)

var ErrAnalysisNotFound = fmt.Errorf("analysis not found")

// Analyzer fakes the photo recognition of the donation form. Every analysis
// completes once after a fixed delay with the same suggestion. A session
// owns at most one analysis at a time.
type Analyzer struct {
	delay   time.Duration
	metrics tally.Scope

	mu       sync.Mutex
	analyses map[uuid.UUID]*schema.FoodAnalysis
	sessions map[string]uuid.UUID
	timers   map[uuid.UUID]*time.Timer
	stopped  bool
}

func NewAnalyzer(delay time.Duration, scope tally.Scope) *Analyzer {
	if delay <= 0 {
		delay = consts.ANALYSIS_DEFAULT_DELAY
	}

	return &Analyzer{
		delay:    delay,
		metrics:  scope,
		analyses: make(map[uuid.UUID]*schema.FoodAnalysis),
		sessions: make(map[string]uuid.UUID),
		timers:   make(map[uuid.UUID]*time.Timer),
	}
}

// Start schedules an analysis for the session. When the session already
// has one in progress, that one is returned and no new timer is scheduled.
// A completed analysis of the session is replaced.
func (a *Analyzer) Start(sessionID string) schema.FoodAnalysis {
	a.mu.Lock()
	defer a.mu.Unlock()

	if id, ok := a.sessions[sessionID]; ok {
		current := a.analyses[id]
		if current.Status == schema.ANALYSIS_ANALYZING {
			return *current
		}
		delete(a.analyses, id)
	}

	analysis := &schema.FoodAnalysis{
		ID:        uuid.New(),
		SessionID: sessionID,
		Status:    schema.ANALYSIS_ANALYZING,
		CreatedAt: time.Now(),
	}
	a.analyses[analysis.ID] = analysis
	a.sessions[sessionID] = analysis.ID

	if !a.stopped {
		id := analysis.ID
		a.timers[id] = time.AfterFunc(a.delay, func() { a.complete(id) })
	}

	a.metrics.Counter("analyses_started").Inc(1)
	log.WithField("session", sessionID).Debugf("analysis %s scheduled in %s", analysis.ID, a.delay)

	return *analysis
}

// Get returns an analysis owned by the session
func (a *Analyzer) Get(sessionID string, id uuid.UUID) (schema.FoodAnalysis, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	analysis, ok := a.analyses[id]
	if !ok || analysis.SessionID != sessionID {
		return schema.FoodAnalysis{}, ErrAnalysisNotFound
	}

	return *analysis, nil
}

func (a *Analyzer) complete(id uuid.UUID) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.timers, id)

	analysis, ok := a.analyses[id]
	if !ok {
		return
	}

	now := time.Now()
	analysis.Status = schema.ANALYSIS_COMPLETED
	analysis.DetectedFood = consts.ANALYSIS_DETECTED_FOOD
	analysis.EstimatedQuantity = consts.ANALYSIS_ESTIMATED_QUANTITY
	analysis.Confidence = consts.ANALYSIS_CONFIDENCE
	analysis.CompletedAt = &now

	log.WithField("session", analysis.SessionID).Debugf("analysis %s completed", id)
}

// Stop cancels pending timers. Analyses started afterwards never complete.
func (a *Analyzer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for id, t := range a.timers {
		t.Stop()
		delete(a.timers, id)
	}
	a.stopped = true
}
