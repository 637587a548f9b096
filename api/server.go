package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"

	"github.com/foodsharenow/foodshare-api/background"
	"github.com/foodsharenow/foodshare-api/logmodule"
	"github.com/foodsharenow/foodshare-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.FoodShareCore

	// Simulated analysis and notification
	background *background.Background

	metrics tally.Scope
}

// NewServer new instance of server
func NewServer(
	core store.FoodShareCore,
	bg *background.Background,
	scope tally.Scope) *Server {
	return &Server{
		store:      core,
		background: bg,
		metrics:    scope,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(s.corsConfig()))
	apiRoute.GET("/information", s.information)

	// api route other than `/information` will apply the following middleware
	apiRoute.Use(s.languageMiddleware())
	apiRoute.Use(s.sessionMiddleware())

	listingRoute := apiRoute.Group("/listings")
	{
		listingRoute.GET("", s.queryListings)
		listingRoute.GET("/:listingID", s.getListing)
		listingRoute.POST("/:listingID/request", s.requestPickup)
		listingRoute.POST("/:listingID/call", s.callDonor)
		listingRoute.POST("/:listingID/message", s.messageDonor)
	}

	apiRoute.GET("/requests", s.listRequests)
	apiRoute.GET("/recommendations", s.getRecommendations)

	donationRoute := apiRoute.Group("/donations")
	{
		donationRoute.POST("", s.submitDonation)
		donationRoute.POST("/analysis", s.startAnalysis)
		donationRoute.GET("/analysis/:analysisID", s.getAnalysis)
	}

	pickupRoute := apiRoute.Group("/pickups")
	{
		pickupRoute.GET("", s.listPickups)
		pickupRoute.GET("/route", s.pickupRoute)
	}

	apiRoute.GET("/dashboard", s.getDashboard)

	r.GET("/healthz", s.healthz)

	return r
}

func (s *Server) corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := viper.GetStringSlice("server.cors.origins")
	if len(origins) == 0 {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	} else {
		config.AllowOrigins = origins
	}

	return config
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"highlights":     s.store.Highlights(),
			"features":       s.store.Features(),
			"system_version": "FoodShare Now 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
