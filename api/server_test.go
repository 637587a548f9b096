package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/uber-go/tally"

	"github.com/foodsharenow/foodshare-api/background"
	"github.com/foodsharenow/foodshare-api/consts"
	"github.com/foodsharenow/foodshare-api/store"
)

type ServerTestSuite struct {
	suite.Suite
	server *Server
	router *gin.Engine
}

func (s *ServerTestSuite) SetupTest() {
	core, err := store.NewFoodShareStore(store.DefaultSeed())
	s.Require().NoError(err)

	scope := tally.NewTestScope("", nil)
	s.server = NewServer(core, background.New(10*time.Millisecond, scope), scope)
	s.router = s.server.setupRouter()
}

func (s *ServerTestSuite) TearDownTest() {
	s.server.background.Stop()
}

func (s *ServerTestSuite) do(method, path, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if sessionID != "" {
		req.Header.Set(consts.SESSION_HEADER, sessionID)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ServerTestSuite) TestHealthz() {
	w := s.do("GET", "/healthz", "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestInformation() {
	w := s.do("GET", "/api/information", "")
	s.Equal(http.StatusOK, w.Code)

	var jResp struct {
		Information struct {
			Highlights []map[string]string `json:"highlights"`
			Features   []map[string]string `json:"features"`
		} `json:"information"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &jResp))
	s.Len(jResp.Information.Highlights, 4)
	s.Len(jResp.Information.Features, 4)
}

func (s *ServerTestSuite) TestSessionIssued() {
	w := s.do("GET", "/api/requests", "")
	s.Equal(http.StatusOK, w.Code)

	sessionID := w.Header().Get(consts.SESSION_HEADER)
	s.NotEmpty(sessionID)
	cookie := w.Header().Get("Set-Cookie")
	s.Contains(cookie, consts.SESSION_COOKIE+"="+sessionID)
	s.Contains(cookie, "HttpOnly")
	s.Contains(cookie, "SameSite=Lax")
}

func (s *ServerTestSuite) TestSessionFromCookie() {
	req := httptest.NewRequest("GET", "/api/requests", nil)
	req.AddCookie(&http.Cookie{Name: consts.SESSION_COOKIE, Value: testSessionID})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal(testSessionID, w.Header().Get(consts.SESSION_HEADER))
}

func (s *ServerTestSuite) TestRequestFlow() {
	w := s.do("POST", "/api/listings/3/request", testSessionID)
	s.Equal(http.StatusOK, w.Code)

	w = s.do("POST", "/api/listings/3/request", testSessionID)
	s.Equal(http.StatusOK, w.Code)

	var reqResp requestPickupResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &reqResp))
	s.True(reqResp.AlreadyRequested)
	s.Equal([]int64{3}, reqResp.Requests)

	w = s.do("GET", "/api/listings?category=urgent", testSessionID)
	s.Equal(http.StatusOK, w.Code)

	var listResp listingsResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &listResp))
	s.Equal(3, listResp.Total)
	for _, l := range listResp.Listings {
		s.Equal(l.ID == 3, l.Requested, "listing %d", l.ID)
	}

	// another session does not share the requests
	w = s.do("GET", "/api/requests", "0b1f7e2a-53c4-4d8e-8f87-3f1c9e6a2b10")
	var state struct {
		Requests []int64 `json:"requests"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &state))
	s.Empty(state.Requests)
}

func (s *ServerTestSuite) TestUnknownListing() {
	w := s.do("POST", "/api/listings/99/request", testSessionID)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ServerTestSuite) TestPickupsAndDashboard() {
	w := s.do("GET", "/api/pickups?date=tomorrow", testSessionID)
	s.Equal(http.StatusOK, w.Code)

	w = s.do("GET", "/api/pickups/route", testSessionID)
	s.Equal(http.StatusOK, w.Code)

	w = s.do("GET", "/api/dashboard?period=year", testSessionID)
	s.Equal(http.StatusOK, w.Code)

	w = s.do("GET", "/api/dashboard?period=decade", testSessionID)
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
