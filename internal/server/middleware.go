package server

import (
	"time"

	"bidding-platform/internal/auctionerrors"
	model "bidding-platform/internal/models"
	"bidding-platform/internal/repository"
	"bidding-platform/utils"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the authenticated caller's identity. Credential
// verification happens upstream; this layer only resolves the user record.
const UserIDHeader = "X-User-ID"

// userContextKey is where AdminOnly stores the resolved user
const userContextKey = "currentUser"

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AdminOnly gates a route group to administrator users. The caller's id
// comes from the X-User-ID header; the user is loaded and must carry the
// admin flag. No side effects happen past a failed check.
func AdminOnly(repo repository.AuctionDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			utils.AbortJSONError(c, 401, auctionerrors.ErrPermissionDenied, "authentication required")
			return
		}

		user, err := repo.GetUser(userID)
		if err != nil || !user.IsAdmin {
			utils.Warn("admin access denied", map[string]any{
				"user_id": userID,
				"path":    c.Request.URL.Path,
			})
			utils.AbortJSONError(c, 403, auctionerrors.ErrPermissionDenied, "administrator privileges required")
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by AdminOnly, if any
func CurrentUser(c *gin.Context) (model.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return model.User{}, false
	}
	user, ok := value.(model.User)
	return user, ok
}
