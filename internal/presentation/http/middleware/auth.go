package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	infraRepo "github.com/restrobill/restrobill-api/internal/infrastructure/repository"
	"github.com/restrobill/restrobill-api/internal/presentation/http/dto/response"
	"github.com/restrobill/restrobill-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. Claims are copied
// into the Gin context for handlers and into the request context so the
// repository franchise scope follows every query.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		if claims.FranchiseID != nil {
			c.Set("franchise_id", *claims.FranchiseID)
		}

		ctx := c.Request.Context()
		if claims.Role == "SUPER_ADMIN" {
			ctx = infraRepo.WithSkipFranchiseScope(ctx, true)
		} else if claims.FranchiseID != nil {
			ctx = infraRepo.WithFranchise(ctx, *claims.FranchiseID)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("user_role")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		for _, required := range roles {
			if userRole == required {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Insufficient role privileges")
		c.Abort()
	}
}

// RequireFranchise ensures the caller belongs to a franchise
func RequireFranchise() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("franchise_id"); !exists {
			response.Forbidden(c, "Franchise context required")
			c.Abort()
			return
		}
		c.Next()
	}
}
