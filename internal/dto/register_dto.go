package dto

type RegisterRequest struct {
	Phone                string `json:"phone" binding:"required,indianphone"`
	Name                 string `json:"name" binding:"required,min=2,max=100"`
	Password             string `json:"password" binding:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
	PrimaryRole          string `json:"primary_role" binding:"required,oneof=farmer owner"`

	// Shared location fields.
	District string `json:"district" binding:"required,max=100"`
	State    string `json:"state" binding:"omitempty,max=100"`
	Pincode  string `json:"pincode" binding:"required"`

	// Farmer fields, required only when primary_role=farmer.
	FarmName          *string  `json:"farm_name" binding:"omitempty,max=255"`
	FarmLocation      string   `json:"farm_location" binding:"required_if=PrimaryRole farmer,omitempty,max=255"`
	FarmSize          float64  `json:"farm_size" binding:"required_if=PrimaryRole farmer,omitempty,gte=0.1,lte=10000"`
	FarmType          string   `json:"farm_type" binding:"required_if=PrimaryRole farmer,omitempty,oneof=crop livestock mixed organic other"`
	YearsOfExperience *int     `json:"years_of_experience" binding:"required_if=PrimaryRole farmer,omitempty,gte=0,lte=100"`
	Village           string   `json:"village" binding:"required_if=PrimaryRole farmer,omitempty,max=100"`
	Taluk             string   `json:"taluk" binding:"required_if=PrimaryRole farmer,omitempty,max=100"`
	CropTypes         []string `json:"crop_types" binding:"omitempty,dive,max=50"`
	LivestockTypes    []string `json:"livestock_types" binding:"omitempty,dive,max=50"`
	AdditionalNotes   *string  `json:"additional_notes" binding:"omitempty,max=1000"`

	// Owner fields, required only when primary_role=owner.
	BusinessName        *string  `json:"business_name" binding:"omitempty,max=255"`
	BusinessType        string   `json:"business_type" binding:"required_if=PrimaryRole owner,omitempty,oneof=individual company partnership"`
	GSTNumber           *string  `json:"gst_number" binding:"omitempty,gstin"`
	YearsInBusiness     *int     `json:"years_in_business" binding:"required_if=PrimaryRole owner,omitempty,gte=0,lte=100"`
	ServiceDistricts    []string `json:"service_districts" binding:"required_if=PrimaryRole owner,omitempty,min=1,dive,max=100"`
	MaxDeliveryDistance float64  `json:"max_delivery_distance" binding:"required_if=PrimaryRole owner,omitempty,gte=1,lte=1000"`
	AddressLine1        string   `json:"address_line_1" binding:"required_if=PrimaryRole owner,omitempty,max=255"`
	AddressLine2        *string  `json:"address_line_2" binding:"omitempty,max=255"`
	City                string   `json:"city" binding:"required_if=PrimaryRole owner,omitempty,max=100"`
	EquipmentTypes      []string `json:"equipment_types" binding:"omitempty,dive,max=50"`
	ProvidesOperator    *bool    `json:"provides_operator"`
	ProvidesDelivery    *bool    `json:"provides_delivery"`
	TermsAndConditions  *string  `json:"terms_and_conditions" binding:"omitempty,max=2000"`
}

type CheckPhoneResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type RegistrationConfigResponse struct {
	FarmTypes            map[string]string `json:"farm_types"`
	BusinessTypes        map[string]string `json:"business_types"`
	CommonCropTypes      []string          `json:"common_crop_types"`
	CommonLivestockTypes []string          `json:"common_livestock_types"`
	CommonEquipmentTypes []string          `json:"common_equipment_types"`
	TamilNaduDistricts   []string          `json:"tamil_nadu_districts"`
}
