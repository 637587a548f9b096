package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/foodsharenow/foodshare-api/schema"
	"github.com/foodsharenow/foodshare-api/store"
)

func TestListPickups(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	seed := store.DefaultSeed()
	summary := schema.PickupSummary{Total: 4, Confirmed: 2, Pending: 1, InProgress: 1, TotalMeals: "185+"}

	s, m, _ := newMockServer(ctl)
	m.EXPECT().ListPickups().Return(seed.Pickups).Times(2)
	m.EXPECT().PickupSummary().Return(summary).Times(2)

	router := newTestRouter(s)
	router.GET("/", s.listPickups)

	testCases := map[string]string{
		"/":              schema.PICKUP_DATE_TODAY,
		"/?date=week":    schema.PICKUP_DATE_WEEK,
		"/?date=someday": "",
	}

	for path, expected := range testCases {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))

		if expected == "" {
			assert.Equal(t, http.StatusBadRequest, w.Code, path)
			var jResp ErrorResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
			assert.Equal(t, errorUnknownPickupDate, jResp)
			continue
		}

		assert.Equal(t, http.StatusOK, w.Code, path)

		var jResp struct {
			Date    string                  `json:"date"`
			Pickups []schema.PickupSchedule `json:"pickups"`
			Summary schema.PickupSummary    `json:"summary"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
		assert.Equal(t, expected, jResp.Date)
		assert.Equal(t, seed.Pickups, jResp.Pickups)
		assert.Equal(t, summary, jResp.Summary)
	}
}

func TestPickupRoute(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	seed := store.DefaultSeed()

	s, m, _ := newMockServer(ctl)
	m.EXPECT().PickupRoute().Return(seed.Route).Times(1)

	router := newTestRouter(s)
	router.GET("/route", s.pickupRoute)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/route", nil))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Route schema.Route `json:"route"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, seed.Route, jResp.Route)
	assert.Len(t, jResp.Route.Stops, 4)
}
