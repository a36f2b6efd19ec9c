package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FarmTypeCrop      = "crop"
	FarmTypeLivestock = "livestock"
	FarmTypeMixed     = "mixed"
	FarmTypeOrganic   = "organic"
	FarmTypeOther     = "other"
)

type FarmerProfile struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FarmName          *string    `gorm:"size:255" json:"farm_name,omitempty"`
	FarmLocation      string     `gorm:"size:255" json:"farm_location"`
	FarmSize          float64    `gorm:"type:decimal(8,2)" json:"farm_size"`
	FarmType          string     `gorm:"size:20" json:"farm_type"`
	YearsOfExperience int        `json:"years_of_experience"`
	CropTypes         []string   `gorm:"serializer:json" json:"crop_types,omitempty"`
	LivestockTypes    []string   `gorm:"serializer:json" json:"livestock_types,omitempty"`
	Village           string     `gorm:"size:100" json:"village"`
	Taluk             string     `gorm:"size:100" json:"taluk"`
	District          string     `gorm:"size:100" json:"district"`
	State             string     `gorm:"size:100;default:'Tamil Nadu'" json:"state"`
	Pincode           string     `gorm:"size:6" json:"pincode"`
	IsVerified        bool       `gorm:"default:false" json:"is_verified"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty"`
	AdditionalNotes   *string    `gorm:"type:text" json:"additional_notes,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *FarmerProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *FarmerProfile) ProfileRole() Role {
	return RoleFarmer
}

// IsComplete is recomputed on every read; completeness is never stored.
// Numeric fields count as missing at zero.
func (p *FarmerProfile) IsComplete() bool {
	return p.FarmLocation != "" &&
		p.FarmSize > 0 &&
		p.FarmType != "" &&
		p.YearsOfExperience > 0 &&
		p.Village != "" &&
		p.Taluk != "" &&
		p.District != "" &&
		p.Pincode != ""
}

// FullAddress joins the populated address parts.
func (p *FarmerProfile) FullAddress() string {
	return joinAddress(p.Village, p.Taluk, p.District, p.State, p.Pincode)
}
