package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodsharenow/foodshare-api/schema"
	"github.com/foodsharenow/foodshare-api/store"
)

func (s *Server) getDashboard(c *gin.Context) {
	period := c.DefaultQuery("period", schema.PERIOD_WEEK)

	stats, err := s.store.ImpactStats(period)
	if err != nil {
		switch err {
		case store.ErrUnknownPeriod:
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownPeriod, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	env, err := s.store.EnvironmentalImpact(period)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, schema.Dashboard{
		Period:        period,
		Stats:         *stats,
		Environment:   *env,
		Activity:      s.store.RecentActivity(),
		TopDonors:     s.store.TopDonors(),
		WasteHotspots: s.store.WasteHotspots(),
	})
}
