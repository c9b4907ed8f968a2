package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velesk/theatre-booking/internal/auth"
)

const ctxUserKey = "auth.claims"

// RequestLogger logs one line per request with method, path, status
// and latency.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		logger.Info("request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// Auth verifies the bearer token and stores the claims on the context.
func Auth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := auth.ParseAccessToken(secret, token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		ctx.Set(ctxUserKey, claims)
		ctx.Next()
	}
}

// StaffOnly rejects non-staff users. Must run after Auth.
func StaffOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := currentUser(ctx)
		if !ok || !claims.IsStaff {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff access required"})
			return
		}
		ctx.Next()
	}
}

func currentUser(ctx *gin.Context) (auth.Claims, bool) {
	v, exists := ctx.Get(ctxUserKey)
	if !exists {
		return auth.Claims{}, false
	}
	claims, ok := v.(auth.Claims)
	return claims, ok
}
