package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/application/service"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetRole extracts the user role from the Gin context
func GetRole(c *gin.Context) enum.Role {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	roleStr, ok := role.(string)
	if !ok {
		return ""
	}
	return enum.Role(roleStr)
}

// GetFranchiseID extracts the user's franchise ID from the Gin context
func GetFranchiseID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get("franchise_id")
	if !exists {
		return nil
	}
	franchiseID, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &franchiseID
}

// IsSuperAdmin checks if the caller has the super admin role
func IsSuperAdmin(c *gin.Context) bool {
	return GetRole(c) == enum.RoleSuperAdmin
}

// GetActor builds the service-layer actor from the Gin context
func GetActor(c *gin.Context) *service.Actor {
	userID := GetUserID(c)
	if userID == nil {
		return nil
	}
	return &service.Actor{
		UserID:      *userID,
		Role:        GetRole(c),
		FranchiseID: GetFranchiseID(c),
	}
}
