package auth

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/j7amo/e-commerce-api/internal/apperror"
	"github.com/j7amo/e-commerce-api/internal/models"
)

// CheckOwnership decides whether the acting identity may touch a resource
// owned by resourceUserID: admins always may, everyone else only their own.
// IDs are compared in canonical hex form. This is the single authorization
// primitive used by every owner-scoped mutation path.
func CheckOwnership(payload TokenPayload, resourceUserID primitive.ObjectID) error {
	if payload.Role == models.RoleAdmin {
		return nil
	}
	if payload.UserID == resourceUserID.Hex() {
		return nil
	}
	return apperror.Unauthorized("not authorized to access this resource")
}
