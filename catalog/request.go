package catalog

import "sort"

// RequestState is the set of listing ids a session has asked to pick up.
// A value is never modified once created; RequestPickup returns a new one.
type RequestState struct {
	ids map[int64]struct{}
}

// NewRequestState returns a state holding ids.
func NewRequestState(ids ...int64) RequestState {
	s := RequestState{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Has reports whether id has been requested.
func (s RequestState) Has(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s RequestState) Len() int {
	return len(s.ids)
}

// IDs returns the requested ids in ascending order.
func (s RequestState) IDs() []int64 {
	ids := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// RequestPickup marks listingID as requested. Requests are never withdrawn,
// so the result always contains every id of s. Requesting an id twice
// returns s itself.
func RequestPickup(s RequestState, listingID int64) RequestState {
	if s.Has(listingID) {
		return s
	}

	next := RequestState{ids: make(map[int64]struct{}, len(s.ids)+1)}
	for id := range s.ids {
		next.ids[id] = struct{}{}
	}
	next.ids[listingID] = struct{}{}
	return next
}
