package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/auth"
	"github.com/talentflow/talentflow/pkg/model"
	"github.com/talentflow/talentflow/pkg/response"
	"golang.org/x/time/rate"
)

func (app *application) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyClaimsFromAuthHeader(c, app.Config.JWT.Secret)
		if err != nil {
			response.Unauthorized(c, err.Error())
			c.Abort()
			return
		}

		// Reject tokens for deleted accounts.
		if _, err := app.Repository.GetUserByID(c.Request.Context(), claims.UserID); err != nil {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// RequireRole gates a route to one role. It runs after AuthMiddleware.
func (app *application) RequireRole(role model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := app.Handler.GetClaimsFromContext(c)
		if claims == nil || claims.Role != role {
			response.Forbidden(c, fmt.Sprintf("%s role required", role))
			c.Abort()
			return
		}
		c.Next()
	}
}

func (app *application) CORSMiddleware() gin.HandlerFunc {
	allowed := make(map[string]bool)
	for _, origin := range app.Config.GetCORSOrigins() {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// RateLimitMiddleware keeps one token bucket per client IP.
func (app *application) RateLimitMiddleware() gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(app.Config.Limiter.RPS), app.Config.Limiter.Burst)
			limiters[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			response.TooManyRequests(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

func verifyClaimsFromAuthHeader(c *gin.Context, secret string) (*auth.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header is missing")
	}

	fields := strings.Fields(authHeader)
	if len(fields) != 2 || fields[0] != "Bearer" {
		return nil, fmt.Errorf("invalid authorization header")
	}

	claims, err := auth.ParseToken(secret, fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return claims, nil
}
