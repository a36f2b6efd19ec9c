package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BusinessTypeIndividual  = "individual"
	BusinessTypeCompany     = "company"
	BusinessTypePartnership = "partnership"
)

type OwnerProfile struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	BusinessName        *string   `gorm:"size:255" json:"business_name,omitempty"`
	BusinessType        string    `gorm:"size:20" json:"business_type"`
	GSTNumber           *string   `gorm:"size:15" json:"gst_number,omitempty"`
	YearsInBusiness     int       `json:"years_in_business"`
	TotalEquipmentCount int       `gorm:"default:0" json:"total_equipment_count"`
	EquipmentTypes      []string  `gorm:"serializer:json" json:"equipment_types,omitempty"`
	ServiceDistricts    []string  `gorm:"serializer:json" json:"service_districts"`
	MaxDeliveryDistance float64   `gorm:"type:decimal(6,2)" json:"max_delivery_distance"`
	AddressLine1        string    `gorm:"size:255" json:"address_line_1"`
	AddressLine2        *string   `gorm:"size:255" json:"address_line_2,omitempty"`
	City                string    `gorm:"size:100" json:"city"`
	District            string    `gorm:"size:100" json:"district"`
	State               string    `gorm:"size:100;default:'Tamil Nadu'" json:"state"`
	Pincode             string    `gorm:"size:6" json:"pincode"`

	// Bank fields never leave the serialization boundary.
	BankName          *string `gorm:"size:100" json:"-"`
	AccountHolderName *string `gorm:"size:100" json:"-"`
	AccountNumber     *string `gorm:"size:30" json:"-"`
	IFSCCode          *string `gorm:"size:11" json:"-"`

	IsVerified         bool       `gorm:"default:false" json:"is_verified"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	ProvidesOperator   bool       `gorm:"default:false" json:"provides_operator"`
	ProvidesDelivery   bool       `gorm:"default:true" json:"provides_delivery"`
	TermsAndConditions *string    `gorm:"type:text" json:"terms_and_conditions,omitempty"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *OwnerProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *OwnerProfile) ProfileRole() Role {
	return RoleOwner
}

// IsComplete is recomputed on every read; completeness is never stored.
// Numeric fields count as missing at zero.
func (p *OwnerProfile) IsComplete() bool {
	return p.BusinessType != "" &&
		p.YearsInBusiness > 0 &&
		len(p.ServiceDistricts) > 0 &&
		p.MaxDeliveryDistance > 0 &&
		p.AddressLine1 != "" &&
		p.City != "" &&
		p.District != "" &&
		p.Pincode != ""
}

// HasBankDetails requires all four bank fields to be present.
func (p *OwnerProfile) HasBankDetails() bool {
	return notEmpty(p.BankName) &&
		notEmpty(p.AccountHolderName) &&
		notEmpty(p.AccountNumber) &&
		notEmpty(p.IFSCCode)
}

// FullAddress joins the populated address parts.
func (p *OwnerProfile) FullAddress() string {
	parts := []string{p.AddressLine1}
	if p.AddressLine2 != nil {
		parts = append(parts, *p.AddressLine2)
	}
	parts = append(parts, p.City, p.District, p.State, p.Pincode)
	return joinAddress(parts...)
}

func notEmpty(s *string) bool {
	return s != nil && *s != ""
}

func joinAddress(parts ...string) string {
	filled := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			filled = append(filled, part)
		}
	}
	return strings.Join(filled, ", ")
}
