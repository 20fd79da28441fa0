package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"auction-marketplace/internal/auth"
	"auction-marketplace/internal/marketplaceerrors"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the correlation id of a request
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware keeps a valid incoming X-Request-ID or issues a new one
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if !utils.IsValidID(id) {
		id = utils.GenerateID()
	}
	c.Set("request_id", id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString("request_id"),
	}
	if p := auth.PrincipalFromContext(c.Request.Context()); p != nil {
		fields["user_id"] = p.UserID
	}
	utils.Info("HTTP Request", fields)
}

// Authenticate resolves a Bearer token into the request principal. Requests without
// an Authorization header continue anonymously; a malformed or invalid token is a 401.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, errors.New("authorization header must be 'Bearer <token>'"), "invalid authorization header")
			utils.Warn("Authenticate: malformed authorization header", map[string]any{"path": c.Request.URL.Path})
			return
		}

		principal, err := auth.ParseToken(strings.TrimSpace(parts[1]), secret)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, err, "invalid or expired token")
			utils.Warn("Authenticate: token rejected", map[string]any{"path": c.Request.URL.Path, "error": err.Error()})
			return
		}

		c.Request = c.Request.WithContext(auth.NewContextWithPrincipal(c.Request.Context(), principal))
		utils.Debug("Authenticate: principal resolved", map[string]any{"user_id": principal.UserID, "is_staff": principal.IsStaff})
		c.Next()
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// RequireAuthForWrites answers 401 to anonymous non-read requests before any body is read.
func RequireAuthForWrites(c *gin.Context) {
	if isSafeMethod(c.Request.Method) || auth.PrincipalFromContext(c.Request.Context()) != nil {
		c.Next()
		return
	}
	err := marketplaceerrors.ErrUnauthenticated
	utils.AbortWithError(c, http.StatusUnauthorized, err, err.Error())
}
