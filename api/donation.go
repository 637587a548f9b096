package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/foodsharenow/foodshare-api/background"
	"github.com/foodsharenow/foodshare-api/consts"
	"github.com/foodsharenow/foodshare-api/schema"
	"github.com/foodsharenow/foodshare-api/utils"
)

// submitDonation is the API for the donation form. The donation is
// acknowledged and announced, the listing catalog stays unchanged.
func (s *Server) submitDonation(c *gin.Context) {
	logger := log.WithField("api", "submitDonation")

	var body schema.Donation
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.WithError(err).Warn(errorInvalidDonation.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidDonation, err)
		return
	}

	name, err := consts.FoodTypeName(body.FoodType)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownFoodType, err)
		return
	}
	body.FoodType = name

	s.metrics.Counter("donations").Inc(1)
	s.background.Notifier.NotifyNearbyNGOs(body)

	c.JSON(http.StatusOK, gin.H{
		"result":   "OK",
		"donation": body,
		"message":  utils.LocalizeMessage(localizer(c), "donation.listed", nil),
	})
}

// startAnalysis is the API for the photo upload of the donation form. The
// result is polled with getAnalysis.
func (s *Server) startAnalysis(c *gin.Context) {
	analysis := s.background.Analyzer.Start(c.GetString("session"))

	c.JSON(http.StatusAccepted, gin.H{
		"analysis": analysis,
		"message":  utils.LocalizeMessage(localizer(c), "donation.analyzing", nil),
	})
}

func (s *Server) getAnalysis(c *gin.Context) {
	id, err := uuid.Parse(c.Param("analysisID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidAnalysisID, fmt.Errorf("invalid analysis ID"))
		return
	}

	analysis, err := s.background.Analyzer.Get(c.GetString("session"), id)
	if err != nil {
		switch err {
		case background.ErrAnalysisNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorAnalysisNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	messageID := "donation.analyzing"
	if analysis.Status == schema.ANALYSIS_COMPLETED {
		messageID = "donation.analyzed"
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis": analysis,
		"message": utils.LocalizeMessage(localizer(c), messageID, map[string]interface{}{
			"DetectedFood": analysis.DetectedFood,
			"Confidence":   analysis.Confidence,
		}),
	})
}
