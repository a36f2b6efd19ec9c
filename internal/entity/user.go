package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is implemented by both role-specific profile records. Active
// profile lookup dispatches over this instead of duck-typing.
type Profile interface {
	ProfileRole() Role
	IsComplete() bool
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Phone        string    `gorm:"size:15;uniqueIndex;not null" json:"phone"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	PrimaryRole  Role      `gorm:"size:10;not null" json:"primary_role"`
	ActiveRole   Role      `gorm:"size:10;not null" json:"active_role"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	FarmerProfile *FarmerProfile `gorm:"constraint:OnDelete:CASCADE" json:"farmer_profile,omitempty"`
	OwnerProfile  *OwnerProfile  `gorm:"constraint:OnDelete:CASCADE" json:"owner_profile,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) HasFarmerProfile() bool {
	return u.FarmerProfile != nil
}

func (u *User) HasOwnerProfile() bool {
	return u.OwnerProfile != nil
}

// HasProfile reports whether a profile record exists for the role.
// Existence, not completeness, is the switching gate.
func (u *User) HasProfile(role Role) bool {
	switch role {
	case RoleFarmer:
		return u.HasFarmerProfile()
	case RoleOwner:
		return u.HasOwnerProfile()
	}
	return false
}

// CanSwitchTo is the advisory predicate surfaced in role-mismatch
// responses.
func (u *User) CanSwitchTo(role Role) bool {
	return role.Valid() && u.HasProfile(role)
}

// ActiveProfile returns the profile matching the active role, or false
// when no record exists. A properly registered user always has one for
// the primary role, but callers stay defensive.
func (u *User) ActiveProfile() (Profile, bool) {
	switch u.ActiveRole {
	case RoleFarmer:
		if u.FarmerProfile != nil {
			return u.FarmerProfile, true
		}
	case RoleOwner:
		if u.OwnerProfile != nil {
			return u.OwnerProfile, true
		}
	}
	return nil, false
}
