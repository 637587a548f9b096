package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/foodsharenow/foodshare-api/catalog"
	"github.com/foodsharenow/foodshare-api/consts"
	"github.com/foodsharenow/foodshare-api/schema"
	"github.com/foodsharenow/foodshare-api/store"
)

type listingsResponse struct {
	Listings []schema.ListingView `json:"listings"`
	Total    int                  `json:"total"`
	Message  *struct {
		Title string `json:"title"`
		Hint  string `json:"hint"`
	} `json:"message"`
}

func seedListing(id int64) *schema.Listing {
	for _, l := range store.DefaultSeed().Listings {
		if l.ID == id {
			return &l
		}
	}
	return nil
}

func TestQueryListingsByText(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m, scope := newMockServer(ctl)
	m.EXPECT().ListListings().Return(store.DefaultSeed().Listings).Times(1)
	m.EXPECT().RequestState(testSessionID).Return(catalog.NewRequestState()).Times(1)

	router := newTestRouter(s)
	router.GET("/", s.queryListings)

	req := httptest.NewRequest("GET", "/?text=bread", nil)
	req.Header.Set(consts.SESSION_HEADER, testSessionID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp listingsResponse
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 1, jResp.Total)
	assert.Equal(t, int64(2), jResp.Listings[0].ID)
	assert.Equal(t, "Fresh Bread & Pastries", jResp.Listings[0].FoodType)
	assert.False(t, jResp.Listings[0].Requested)
	assert.Nil(t, jResp.Message)

	assert.Equal(t, int64(1), counterValue(scope, "listing_queries", map[string]string{"category": "all"}))
}

func TestQueryListingsUrgentWithRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m, _ := newMockServer(ctl)
	m.EXPECT().ListListings().Return(store.DefaultSeed().Listings).Times(1)
	m.EXPECT().RequestState(testSessionID).Return(catalog.NewRequestState(3)).Times(1)

	router := newTestRouter(s)
	router.GET("/", s.queryListings)

	req := httptest.NewRequest("GET", "/?category=urgent", nil)
	req.Header.Set(consts.SESSION_HEADER, testSessionID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp listingsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))

	ids := []int64{}
	requested := map[int64]bool{}
	for _, l := range jResp.Listings {
		ids = append(ids, l.ID)
		requested[l.ID] = l.Requested
	}
	assert.Equal(t, []int64{1, 3, 5}, ids)
	assert.Equal(t, map[int64]bool{1: false, 3: true, 5: false}, requested)
}

func TestQueryListingsNoResults(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m, scope := newMockServer(ctl)
	m.EXPECT().ListListings().Return(store.DefaultSeed().Listings).Times(1)
	m.EXPECT().RequestState(gomock.Any()).Return(catalog.NewRequestState()).Times(1)

	router := newTestRouter(s)
	router.GET("/", s.queryListings)

	req := httptest.NewRequest("GET", "/?text=sushi&category=verified", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp listingsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, 0, jResp.Total)
	assert.NotNil(t, jResp.Listings)
	assert.Empty(t, jResp.Listings)
	if assert.NotNil(t, jResp.Message) {
		assert.Equal(t, "No food found", jResp.Message.Title)
		assert.NotEmpty(t, jResp.Message.Hint)
	}

	assert.Equal(t, int64(1), counterValue(scope, "listing_empty_results", nil))
}

func TestQueryListingsUnknownCategory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _, _ := newMockServer(ctl)

	router := newTestRouter(s)
	router.GET("/", s.queryListings)

	req := httptest.NewRequest("GET", "/?category=expired", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, errorUnknownCategory, jResp)
}

func TestGetListing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m, _ := newMockServer(ctl)
	m.EXPECT().GetListing(int64(5)).Return(seedListing(5), nil).Times(1)
	m.EXPECT().RequestState(testSessionID).Return(catalog.NewRequestState(5)).Times(1)

	router := newTestRouter(s)
	router.GET("/:listingID", s.getListing)

	req := httptest.NewRequest("GET", "/5", nil)
	req.Header.Set(consts.SESSION_HEADER, testSessionID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.ListingView
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, *seedListing(5), jResp.Listing)
	assert.True(t, jResp.Requested)
}

func TestGetListingNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m, _ := newMockServer(ctl)
	m.EXPECT().GetListing(int64(42)).Return(nil, store.ErrListingNotFound).Times(1)

	router := newTestRouter(s)
	router.GET("/:listingID", s.getListing)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/42", nil))

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, errorUnknownListing, jResp)
}

type requestPickupResponse struct {
	ListingID        int64   `json:"listing_id"`
	Requested        bool    `json:"requested"`
	AlreadyRequested bool    `json:"already_requested"`
	Requests         []int64 `json:"requests"`
	Message          string  `json:"message"`
}

func TestRequestPickup(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m, scope := newMockServer(ctl)
	m.EXPECT().GetListing(int64(3)).Return(seedListing(3), nil).Times(1)
	m.EXPECT().RequestPickup(testSessionID, int64(3)).Return(catalog.NewRequestState(3), true, nil).Times(1)

	router := newTestRouter(s)
	router.POST("/:listingID/request", s.requestPickup)

	req := httptest.NewRequest("POST", "/3/request", nil)
	req.Header.Set(consts.SESSION_HEADER, testSessionID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp requestPickupResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, requestPickupResponse{
		ListingID:        3,
		Requested:        true,
		AlreadyRequested: false,
		Requests:         []int64{3},
		Message:          `Request sent for "Wedding Leftovers - Mixed"! The donor will be notified and pickup details will be shared.`,
	}, jResp)

	assert.Equal(t, int64(1), counterValue(scope, "pickup_requests", nil))
	assert.Equal(t, int64(1), counterValue(scope, "notifications", map[string]string{"kind": "pickup_request"}))
}

func TestRequestPickupRepeated(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m, scope := newMockServer(ctl)
	m.EXPECT().GetListing(int64(3)).Return(seedListing(3), nil).Times(1)
	m.EXPECT().RequestPickup(testSessionID, int64(3)).Return(catalog.NewRequestState(3), false, nil).Times(1)

	router := newTestRouter(s)
	router.POST("/:listingID/request", s.requestPickup)

	req := httptest.NewRequest("POST", "/3/request", nil)
	req.Header.Set(consts.SESSION_HEADER, testSessionID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp requestPickupResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.True(t, jResp.AlreadyRequested)
	assert.Equal(t, []int64{3}, jResp.Requests)
	assert.Equal(t, `You have already requested "Wedding Leftovers - Mixed".`, jResp.Message)

	assert.Equal(t, int64(0), counterValue(scope, "pickup_requests", nil))
	assert.Equal(t, int64(1), counterValue(scope, "pickup_requests_repeated", nil))
	assert.Equal(t, int64(0), counterValue(scope, "notifications", nil))
}

func TestRequestPickupUnknownListing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m, _ := newMockServer(ctl)
	m.EXPECT().GetListing(int64(9)).Return(nil, store.ErrListingNotFound).Times(1)

	router := newTestRouter(s)
	router.POST("/:listingID/request", s.requestPickup)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/9/request", nil))

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestRequestPickupInvalidID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _, _ := newMockServer(ctl)

	router := newTestRouter(s)
	router.POST("/:listingID/request", s.requestPickup)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/bread/request", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, errorInvalidListingID, jResp)
}

func TestCallAndMessageDonor(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m, _ := newMockServer(ctl)
	m.EXPECT().GetListing(int64(1)).Return(seedListing(1), nil).Times(2)

	router := newTestRouter(s)
	router.POST("/:listingID/call", s.callDonor)
	router.POST("/:listingID/message", s.messageDonor)

	var jResp struct {
		Contact schema.ContactLink `json:"contact"`
		Message string             `json:"message"`
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/1/call", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, "tel:+919876543210", jResp.Contact.Link)
	assert.Equal(t, "Calling Green Valley Restaurant at +91 98765 43210", jResp.Message)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/1/message", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, "sms:+919876543210", jResp.Contact.Link)
	assert.Equal(t, "Green Valley Restaurant", jResp.Contact.Donor)
}

func TestCallDonorWithoutPhone(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m, _ := newMockServer(ctl)
	listing := seedListing(2)
	listing.DonorPhone = ""
	m.EXPECT().GetListing(int64(2)).Return(listing, nil).Times(1)

	router := newTestRouter(s)
	router.POST("/:listingID/call", s.callDonor)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/2/call", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, errorNoDonorContact, jResp)
}
