package dto

import (
	"time"

	"agrirent/internal/entity"
	"github.com/google/uuid"
)

// FarmerProfileResponse mirrors the stored profile one to one; farmer
// profiles carry no restricted fields.
type FarmerProfileResponse struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	FarmName          *string    `json:"farm_name,omitempty"`
	FarmLocation      string     `json:"farm_location"`
	FarmSize          float64    `json:"farm_size"`
	FarmType          string     `json:"farm_type"`
	YearsOfExperience int        `json:"years_of_experience"`
	CropTypes         []string   `json:"crop_types,omitempty"`
	LivestockTypes    []string   `json:"livestock_types,omitempty"`
	Village           string     `json:"village"`
	Taluk             string     `json:"taluk"`
	District          string     `json:"district"`
	State             string     `json:"state"`
	Pincode           string     `json:"pincode"`
	IsVerified        bool       `json:"is_verified"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty"`
	AdditionalNotes   *string    `json:"additional_notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// OwnerProfileResponse deliberately has no account number or IFSC code
// fields, so they cannot leak however the struct is serialized.
type OwnerProfileResponse struct {
	ID                  uuid.UUID  `json:"id"`
	UserID              uuid.UUID  `json:"user_id"`
	BusinessName        *string    `json:"business_name,omitempty"`
	BusinessType        string     `json:"business_type"`
	GSTNumber           *string    `json:"gst_number,omitempty"`
	YearsInBusiness     int        `json:"years_in_business"`
	TotalEquipmentCount int        `json:"total_equipment_count"`
	EquipmentTypes      []string   `json:"equipment_types,omitempty"`
	ServiceDistricts    []string   `json:"service_districts"`
	MaxDeliveryDistance float64    `json:"max_delivery_distance"`
	AddressLine1        string     `json:"address_line_1"`
	AddressLine2        *string    `json:"address_line_2,omitempty"`
	City                string     `json:"city"`
	District            string     `json:"district"`
	State               string     `json:"state"`
	Pincode             string     `json:"pincode"`
	BankName            *string    `json:"bank_name,omitempty"`
	AccountHolderName   *string    `json:"account_holder_name,omitempty"`
	HasBankDetails      bool       `json:"has_bank_details"`
	IsVerified          bool       `json:"is_verified"`
	VerifiedAt          *time.Time `json:"verified_at,omitempty"`
	ProvidesOperator    bool       `json:"provides_operator"`
	ProvidesDelivery    bool       `json:"provides_delivery"`
	TermsAndConditions  *string    `json:"terms_and_conditions,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func NewFarmerProfileResponse(p *entity.FarmerProfile) FarmerProfileResponse {
	return FarmerProfileResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		FarmName:          p.FarmName,
		FarmLocation:      p.FarmLocation,
		FarmSize:          p.FarmSize,
		FarmType:          p.FarmType,
		YearsOfExperience: p.YearsOfExperience,
		CropTypes:         p.CropTypes,
		LivestockTypes:    p.LivestockTypes,
		Village:           p.Village,
		Taluk:             p.Taluk,
		District:          p.District,
		State:             p.State,
		Pincode:           p.Pincode,
		IsVerified:        p.IsVerified,
		VerifiedAt:        p.VerifiedAt,
		AdditionalNotes:   p.AdditionalNotes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func NewOwnerProfileResponse(p *entity.OwnerProfile) OwnerProfileResponse {
	return OwnerProfileResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		BusinessName:        p.BusinessName,
		BusinessType:        p.BusinessType,
		GSTNumber:           p.GSTNumber,
		YearsInBusiness:     p.YearsInBusiness,
		TotalEquipmentCount: p.TotalEquipmentCount,
		EquipmentTypes:      p.EquipmentTypes,
		ServiceDistricts:    p.ServiceDistricts,
		MaxDeliveryDistance: p.MaxDeliveryDistance,
		AddressLine1:        p.AddressLine1,
		AddressLine2:        p.AddressLine2,
		City:                p.City,
		District:            p.District,
		State:               p.State,
		Pincode:             p.Pincode,
		BankName:            p.BankName,
		AccountHolderName:   p.AccountHolderName,
		HasBankDetails:      p.HasBankDetails(),
		IsVerified:          p.IsVerified,
		VerifiedAt:          p.VerifiedAt,
		ProvidesOperator:    p.ProvidesOperator,
		ProvidesDelivery:    p.ProvidesDelivery,
		TermsAndConditions:  p.TermsAndConditions,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// CreateFarmerProfileRequest adds the second profile for an owner-first
// account, enabling the switch to farmer.
type CreateFarmerProfileRequest struct {
	FarmName          *string  `json:"farm_name" binding:"omitempty,max=255"`
	FarmLocation      string   `json:"farm_location" binding:"required,max=255"`
	FarmSize          float64  `json:"farm_size" binding:"required,gte=0.1,lte=10000"`
	FarmType          string   `json:"farm_type" binding:"required,oneof=crop livestock mixed organic other"`
	YearsOfExperience *int     `json:"years_of_experience" binding:"required,gte=0,lte=100"`
	CropTypes         []string `json:"crop_types" binding:"omitempty,dive,max=50"`
	LivestockTypes    []string `json:"livestock_types" binding:"omitempty,dive,max=50"`
	Village           string   `json:"village" binding:"required,max=100"`
	Taluk             string   `json:"taluk" binding:"required,max=100"`
	District          string   `json:"district" binding:"required,max=100"`
	State             string   `json:"state" binding:"omitempty,max=100"`
	Pincode           string   `json:"pincode" binding:"required"`
	AdditionalNotes   *string  `json:"additional_notes" binding:"omitempty,max=1000"`
}

type UpdateFarmerProfileRequest struct {
	FarmName          *string  `json:"farm_name" binding:"omitempty,max=255"`
	FarmLocation      *string  `json:"farm_location" binding:"omitempty,max=255"`
	FarmSize          *float64 `json:"farm_size" binding:"omitempty,gte=0.1,lte=10000"`
	FarmType          *string  `json:"farm_type" binding:"omitempty,oneof=crop livestock mixed organic other"`
	YearsOfExperience *int     `json:"years_of_experience" binding:"omitempty,gte=0,lte=100"`
	CropTypes         []string `json:"crop_types" binding:"omitempty,dive,max=50"`
	LivestockTypes    []string `json:"livestock_types" binding:"omitempty,dive,max=50"`
	Village           *string  `json:"village" binding:"omitempty,max=100"`
	Taluk             *string  `json:"taluk" binding:"omitempty,max=100"`
	District          *string  `json:"district" binding:"omitempty,max=100"`
	State             *string  `json:"state" binding:"omitempty,max=100"`
	Pincode           *string  `json:"pincode"`
	AdditionalNotes   *string  `json:"additional_notes" binding:"omitempty,max=1000"`
}

type CreateOwnerProfileRequest struct {
	BusinessName        *string  `json:"business_name" binding:"omitempty,max=255"`
	BusinessType        string   `json:"business_type" binding:"required,oneof=individual company partnership"`
	GSTNumber           *string  `json:"gst_number" binding:"omitempty,gstin"`
	YearsInBusiness     *int     `json:"years_in_business" binding:"required,gte=0,lte=100"`
	EquipmentTypes      []string `json:"equipment_types" binding:"omitempty,dive,max=50"`
	ServiceDistricts    []string `json:"service_districts" binding:"required,min=1,dive,max=100"`
	MaxDeliveryDistance float64  `json:"max_delivery_distance" binding:"required,gte=1,lte=1000"`
	AddressLine1        string   `json:"address_line_1" binding:"required,max=255"`
	AddressLine2        *string  `json:"address_line_2" binding:"omitempty,max=255"`
	City                string   `json:"city" binding:"required,max=100"`
	District            string   `json:"district" binding:"required,max=100"`
	State               string   `json:"state" binding:"omitempty,max=100"`
	Pincode             string   `json:"pincode" binding:"required"`
	ProvidesOperator    *bool    `json:"provides_operator"`
	ProvidesDelivery    *bool    `json:"provides_delivery"`
	TermsAndConditions  *string  `json:"terms_and_conditions" binding:"omitempty,max=2000"`
}

type UpdateOwnerProfileRequest struct {
	BusinessName        *string  `json:"business_name" binding:"omitempty,max=255"`
	BusinessType        *string  `json:"business_type" binding:"omitempty,oneof=individual company partnership"`
	GSTNumber           *string  `json:"gst_number" binding:"omitempty,gstin"`
	YearsInBusiness     *int     `json:"years_in_business" binding:"omitempty,gte=0,lte=100"`
	EquipmentTypes      []string `json:"equipment_types" binding:"omitempty,dive,max=50"`
	ServiceDistricts    []string `json:"service_districts" binding:"omitempty,min=1,dive,max=100"`
	MaxDeliveryDistance *float64 `json:"max_delivery_distance" binding:"omitempty,gte=1,lte=1000"`
	AddressLine1        *string  `json:"address_line_1" binding:"omitempty,max=255"`
	AddressLine2        *string  `json:"address_line_2" binding:"omitempty,max=255"`
	City                *string  `json:"city" binding:"omitempty,max=100"`
	District            *string  `json:"district" binding:"omitempty,max=100"`
	State               *string  `json:"state" binding:"omitempty,max=100"`
	Pincode             *string  `json:"pincode"`
	ProvidesOperator    *bool    `json:"provides_operator"`
	ProvidesDelivery    *bool    `json:"provides_delivery"`
	TermsAndConditions  *string  `json:"terms_and_conditions" binding:"omitempty,max=2000"`
}

type UpdateBankDetailsRequest struct {
	BankName          string `json:"bank_name" binding:"required,max=100"`
	AccountHolderName string `json:"account_holder_name" binding:"required,max=100"`
	AccountNumber     string `json:"account_number" binding:"required,min=9,max=18"`
	IFSCCode          string `json:"ifsc_code" binding:"required,len=11"`
}

type BankDetailsResponse struct {
	BankName          string `json:"bank_name"`
	AccountHolderName string `json:"account_holder_name"`
	HasBankDetails    bool   `json:"has_bank_details"`
}
