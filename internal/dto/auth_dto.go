package dto

import (
	"time"

	"agrirent/internal/entity"
	"github.com/google/uuid"
)

type LoginInput struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SwitchRoleInput struct {
	Role string `json:"role" binding:"required,oneof=farmer owner"`
}

type UserResponse struct {
	ID               uuid.UUID `json:"id"`
	Phone            string    `json:"phone"`
	Name             string    `json:"name"`
	PrimaryRole      string    `json:"primary_role"`
	ActiveRole       string    `json:"active_role"`
	HasFarmerProfile bool      `json:"has_farmer_profile"`
	HasOwnerProfile  bool      `json:"has_owner_profile"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ActiveProfileResponse wraps whichever profile matches the active role
// together with its derived completeness.
type ActiveProfileResponse struct {
	Type       string `json:"type"`
	Profile    any    `json:"profile"`
	IsComplete bool   `json:"is_complete"`
}

type AuthResponse struct {
	User          UserResponse           `json:"user"`
	ActiveProfile *ActiveProfileResponse `json:"active_profile"`
	Token         string                 `json:"token"`
}

type SwitchRoleResponse struct {
	ActiveRole    string                 `json:"active_role"`
	ActiveProfile *ActiveProfileResponse `json:"active_profile"`
}

type RoleStatus struct {
	// Available is a constant true for both roles: any user may attempt
	// to build a second profile. Kept verbatim from observed behavior.
	Available  bool `json:"available"`
	HasProfile bool `json:"has_profile"`
	IsComplete bool `json:"is_complete"`
}

type RoleAvailabilityResponse struct {
	CurrentRole    string                `json:"current_role"`
	PrimaryRole    string                `json:"primary_role"`
	AvailableRoles map[string]RoleStatus `json:"available_roles"`
}

type CheckAuthUser struct {
	ID         uuid.UUID `json:"id"`
	Phone      string    `json:"phone"`
	Name       string    `json:"name"`
	ActiveRole string    `json:"active_role"`
}

func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Phone:            u.Phone,
		Name:             u.Name,
		PrimaryRole:      u.PrimaryRole.String(),
		ActiveRole:       u.ActiveRole.String(),
		HasFarmerProfile: u.HasFarmerProfile(),
		HasOwnerProfile:  u.HasOwnerProfile(),
		IsActive:         u.IsActive,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

// NewActiveProfileResponse dispatches on the active role and hides the
// restricted owner fields by projecting through the profile DTOs.
func NewActiveProfileResponse(u *entity.User) *ActiveProfileResponse {
	profile, ok := u.ActiveProfile()
	if !ok {
		return nil
	}

	switch p := profile.(type) {
	case *entity.FarmerProfile:
		return &ActiveProfileResponse{
			Type:       entity.RoleFarmer.String(),
			Profile:    NewFarmerProfileResponse(p),
			IsComplete: p.IsComplete(),
		}
	case *entity.OwnerProfile:
		return &ActiveProfileResponse{
			Type:       entity.RoleOwner.String(),
			Profile:    NewOwnerProfileResponse(p),
			IsComplete: p.IsComplete(),
		}
	}
	return nil
}
