package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// FranchiseIDKey is the context key for the caller's franchise ID
	FranchiseIDKey ctxKey = "franchise_id"
	// SkipFranchiseScopeKey is the context key for skipping franchise scope (super admin)
	SkipFranchiseScopeKey ctxKey = "skip_franchise_scope"
)

// FranchiseScope returns a GORM scope that filters by franchise
// This should be applied to all queries for franchise-scoped entities
// If SkipFranchiseScopeKey is true in context (super admin), returns all records
func FranchiseScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if skipScope, ok := ctx.Value(SkipFranchiseScopeKey).(bool); ok && skipScope {
			return db // Return unfiltered query for super admins
		}

		franchiseID, ok := ctx.Value(FranchiseIDKey).(uuid.UUID)
		if !ok {
			// Fail-safe: return no results if franchise context missing
			// This prevents accidental cross-franchise data access
			return db.Where("1 = 0")
		}
		return db.Where("franchise_id = ?", franchiseID)
	}
}

// WithSkipFranchiseScope adds skip franchise scope flag to context (for super admins)
func WithSkipFranchiseScope(ctx context.Context, skip bool) context.Context {
	return context.WithValue(ctx, SkipFranchiseScopeKey, skip)
}

// WithFranchise adds franchise ID to context
func WithFranchise(ctx context.Context, franchiseID uuid.UUID) context.Context {
	return context.WithValue(ctx, FranchiseIDKey, franchiseID)
}

// GetFranchiseID extracts franchise ID from context
func GetFranchiseID(ctx context.Context) (uuid.UUID, bool) {
	franchiseID, ok := ctx.Value(FranchiseIDKey).(uuid.UUID)
	return franchiseID, ok
}
