package store

import (
	log "github.com/sirupsen/logrus"

	"github.com/foodsharenow/foodshare-api/catalog"
)

// RequestState returns the listings requested by a session so far. Unknown
// sessions have an empty state.
func (s *FoodShareStore) RequestState(sessionID string) catalog.RequestState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.requests[sessionID]
}

// RequestPickup records a pickup request of a session. The returned flag
// is false when the listing was requested before, in which case the state
// is unchanged.
func (s *FoodShareStore) RequestPickup(sessionID string, listingID int64) (catalog.RequestState, bool, error) {
	if _, ok := s.index[listingID]; !ok {
		return catalog.RequestState{}, false, ErrListingNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.requests[sessionID]
	if current.Has(listingID) {
		return current, false, nil
	}

	next := catalog.RequestPickup(current, listingID)
	s.requests[sessionID] = next

	log.WithField("prefix", storeLogPrefix).
		WithField("session", sessionID).
		Debugf("listing %d requested, %d requests in session", listingID, next.Len())

	return next, true, nil
}
