package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/foodsharenow/foodshare-api/consts"
	"github.com/foodsharenow/foodshare-api/utils"
)

// sessionMiddleware identifies the browser session which owns the request
// state. The id comes from the `X-Session-ID` header or the session cookie;
// a new one is issued when neither carries a valid id. There is no
// authentication behind a session.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(consts.SESSION_HEADER)
		if sessionID == "" {
			if cookie, err := c.Cookie(consts.SESSION_COOKIE); err == nil {
				sessionID = cookie
			}
		}

		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.New().String()
			log.WithField("session", sessionID).Debug("issue new session")
		}

		c.SetCookie(consts.SESSION_COOKIE, sessionID, int(consts.SESSION_MAX_AGE.Seconds()), "/", "", http.SameSiteLaxMode, false, true)
		c.Header(consts.SESSION_HEADER, sessionID)
		c.Set("session", sessionID)
		c.Next()
	}
}

// languageMiddleware picks the localizer by the Accept-Language header
func (s *Server) languageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("localizer", utils.NewLocalizer(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func localizer(c *gin.Context) *i18n.Localizer {
	if loc, ok := c.Get("localizer"); ok {
		if l, ok := loc.(*i18n.Localizer); ok {
			return l
		}
	}
	return utils.NewLocalizer("en")
}
