package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodsharenow/foodshare-api/schema"
)

// listPickups is the API of the pickup schedule. The date selector is
// validated and echoed back; the seeded schedule is the same for every date.
func (s *Server) listPickups(c *gin.Context) {
	date := c.DefaultQuery("date", schema.PICKUP_DATE_TODAY)

	switch date {
	case schema.PICKUP_DATE_TODAY, schema.PICKUP_DATE_TOMORROW, schema.PICKUP_DATE_WEEK:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownPickupDate, fmt.Errorf("unknown date %q", date))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    date,
		"pickups": s.store.ListPickups(),
		"summary": s.store.PickupSummary(),
	})
}

func (s *Server) pickupRoute(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"route": s.store.PickupRoute()})
}
