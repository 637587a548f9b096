package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodsharenow/foodshare-api/catalog"
	"github.com/foodsharenow/foodshare-api/schema"
	"github.com/foodsharenow/foodshare-api/store"
	"github.com/foodsharenow/foodshare-api/utils"
)

func listingViews(listings []schema.Listing, state catalog.RequestState) []schema.ListingView {
	views := make([]schema.ListingView, 0, len(listings))
	for _, l := range listings {
		views = append(views, schema.ListingView{
			Listing:   l,
			Requested: state.Has(l.ID),
		})
	}
	return views
}

// queryListings is the API for searching the listings by text and category
func (s *Server) queryListings(c *gin.Context) {
	var params struct {
		Text     string `form:"text"`
		Category string `form:"category"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	category, err := catalog.ParseCategory(params.Category)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownCategory, err)
		return
	}

	listings := catalog.Query(s.store.ListListings(), params.Text, category)
	state := s.store.RequestState(c.GetString("session"))

	s.metrics.Tagged(map[string]string{"category": string(category)}).Counter("listing_queries").Inc(1)

	resp := gin.H{
		"listings": listingViews(listings, state),
		"total":    len(listings),
	}

	if len(listings) == 0 {
		s.metrics.Counter("listing_empty_results").Inc(1)
		loc := localizer(c)
		resp["message"] = gin.H{
			"title": utils.LocalizeMessage(loc, "listing.no_results_title", nil),
			"hint":  utils.LocalizeMessage(loc, "listing.no_results_hint", nil),
		}
	}

	c.JSON(http.StatusOK, resp)
}

// findListing resolves the `listingID` path parameter. It aborts the
// request and returns nil when the listing cannot be found.
func (s *Server) findListing(c *gin.Context) *schema.Listing {
	id, err := strconv.ParseInt(c.Param("listingID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidListingID, fmt.Errorf("invalid listing ID"))
		return nil
	}

	listing, err := s.store.GetListing(id)
	if err != nil {
		switch err {
		case store.ErrListingNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownListing)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return nil
	}

	return listing
}

func (s *Server) getListing(c *gin.Context) {
	listing := s.findListing(c)
	if listing == nil {
		return
	}

	state := s.store.RequestState(c.GetString("session"))
	c.JSON(http.StatusOK, schema.ListingView{
		Listing:   *listing,
		Requested: state.Has(listing.ID),
	})
}

// requestPickup is the API for requesting a listing. Requesting the same
// listing again is accepted and changes nothing.
func (s *Server) requestPickup(c *gin.Context) {
	logger := log.WithField("api", "requestPickup")
	sessionID := c.GetString("session")

	listing := s.findListing(c)
	if listing == nil {
		return
	}

	state, added, err := s.store.RequestPickup(sessionID, listing.ID)
	if err != nil {
		switch err {
		case store.ErrListingNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownListing)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	data := map[string]interface{}{"FoodType": listing.FoodType}
	messageID := "listing.already_requested"
	if added {
		messageID = "listing.request_sent"
		s.metrics.Counter("pickup_requests").Inc(1)
		s.background.Notifier.NotifyDonor(*listing)
	} else {
		s.metrics.Counter("pickup_requests_repeated").Inc(1)
	}

	logger.WithField("session", sessionID).Infof("listing %d requested, new: %t", listing.ID, added)

	c.JSON(http.StatusOK, gin.H{
		"listing_id":        listing.ID,
		"requested":         true,
		"already_requested": !added,
		"requests":          state.IDs(),
		"message":           utils.LocalizeMessage(localizer(c), messageID, data),
	})
}

func (s *Server) contactDonor(c *gin.Context, link func(string) string, messageID string) {
	listing := s.findListing(c)
	if listing == nil {
		return
	}

	l := link(listing.DonorPhone)
	if l == "" {
		abortWithEncoding(c, http.StatusUnprocessableEntity, errorNoDonorContact)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contact": schema.ContactLink{
			ListingID: listing.ID,
			Donor:     listing.Donor,
			Phone:     listing.DonorPhone,
			Link:      l,
		},
		"message": utils.LocalizeMessage(localizer(c), messageID, map[string]interface{}{
			"Donor": listing.Donor,
			"Phone": listing.DonorPhone,
		}),
	})
}

// callDonor returns a tel: link of the donor. It does not touch the
// request state.
func (s *Server) callDonor(c *gin.Context) {
	s.contactDonor(c, utils.CallLink, "listing.calling")
}

// messageDonor returns an sms: link of the donor. It does not touch the
// request state.
func (s *Server) messageDonor(c *gin.Context) {
	s.contactDonor(c, utils.MessageLink, "listing.messaging")
}

func (s *Server) listRequests(c *gin.Context) {
	state := s.store.RequestState(c.GetString("session"))
	c.JSON(http.StatusOK, gin.H{"requests": state.IDs()})
}

func (s *Server) getRecommendations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recommendations": s.store.Recommendations()})
}
