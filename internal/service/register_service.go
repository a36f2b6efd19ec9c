package service

import (
	"context"

	"agrirent/internal/dto"
	"agrirent/internal/entity"
	"agrirent/internal/refdata"
	"agrirent/internal/repository"
	"agrirent/pkg/apperror"
	pkgvalidator "agrirent/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

const defaultState = "Tamil Nadu"

type RegisterService interface {
	Register(ctx context.Context, input dto.RegisterRequest) (*dto.AuthResponse, error)
	CheckPhone(ctx context.Context, phone string) (*dto.CheckPhoneResponse, error)
	RegistrationConfig() *dto.RegistrationConfigResponse
}

type registerService struct {
	users  repository.UserRepository
	tokens *TokenService
}

func NewRegisterService(users repository.UserRepository, tokens *TokenService) RegisterService {
	return &registerService{
		users:  users,
		tokens: tokens,
	}
}

// Register creates the user and exactly one profile matching the chosen
// primary role, atomically. The active role starts equal to the primary
// role.
func (s *registerService) Register(ctx context.Context, input dto.RegisterRequest) (*dto.AuthResponse, error) {
	phone := pkgvalidator.NormalizePhone(input.Phone)
	if !pkgvalidator.ValidPhone(phone) {
		return nil, apperror.NewValidation("phone", "Phone number must be between 10 and 15 digits.")
	}

	pincode := pkgvalidator.NormalizePincode(input.Pincode)
	if !pkgvalidator.ValidPincode(pincode) {
		return nil, apperror.NewValidation("pincode", "Pincode must be exactly 6 digits.")
	}

	role := entity.Role(input.PrimaryRole)
	if !role.Valid() {
		return nil, apperror.NewValidation("primary_role", "Please select either farmer or owner as your role.")
	}

	exists, err := s.users.PhoneExists(ctx, phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewValidation("phone", "This phone number is already registered.")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	state := input.State
	if state == "" {
		state = defaultState
	}

	user := &entity.User{
		Phone:        phone,
		Name:         input.Name,
		PasswordHash: string(passwordHash),
		PrimaryRole:  role,
		ActiveRole:   role,
		IsActive:     true,
	}

	var profile entity.Profile
	if role == entity.RoleFarmer {
		profile = buildFarmerProfile(input, state, pincode)
	} else {
		profile = buildOwnerProfile(input, state, pincode)
	}

	if err := s.users.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:          dto.NewUserResponse(user),
		ActiveProfile: dto.NewActiveProfileResponse(user),
		Token:         token,
	}, nil
}

func buildFarmerProfile(input dto.RegisterRequest, state, pincode string) *entity.FarmerProfile {
	years := 0
	if input.YearsOfExperience != nil {
		years = *input.YearsOfExperience
	}

	return &entity.FarmerProfile{
		FarmName:          input.FarmName,
		FarmLocation:      input.FarmLocation,
		FarmSize:          input.FarmSize,
		FarmType:          input.FarmType,
		YearsOfExperience: years,
		CropTypes:         input.CropTypes,
		LivestockTypes:    input.LivestockTypes,
		Village:           input.Village,
		Taluk:             input.Taluk,
		District:          input.District,
		State:             state,
		Pincode:           pincode,
		AdditionalNotes:   input.AdditionalNotes,
	}
}

func buildOwnerProfile(input dto.RegisterRequest, state, pincode string) *entity.OwnerProfile {
	years := 0
	if input.YearsInBusiness != nil {
		years = *input.YearsInBusiness
	}
	providesOperator := false
	if input.ProvidesOperator != nil {
		providesOperator = *input.ProvidesOperator
	}
	providesDelivery := true
	if input.ProvidesDelivery != nil {
		providesDelivery = *input.ProvidesDelivery
	}

	return &entity.OwnerProfile{
		BusinessName:        input.BusinessName,
		BusinessType:        input.BusinessType,
		GSTNumber:           input.GSTNumber,
		YearsInBusiness:     years,
		TotalEquipmentCount: 0,
		EquipmentTypes:      input.EquipmentTypes,
		ServiceDistricts:    input.ServiceDistricts,
		MaxDeliveryDistance: input.MaxDeliveryDistance,
		AddressLine1:        input.AddressLine1,
		AddressLine2:        input.AddressLine2,
		City:                input.City,
		District:            input.District,
		State:               state,
		Pincode:             pincode,
		ProvidesOperator:    providesOperator,
		ProvidesDelivery:    providesDelivery,
		TermsAndConditions:  input.TermsAndConditions,
	}
}

func (s *registerService) CheckPhone(ctx context.Context, phone string) (*dto.CheckPhoneResponse, error) {
	normalized := pkgvalidator.NormalizePhone(phone)
	if !pkgvalidator.ValidPhone(normalized) {
		return nil, apperror.NewValidation("phone", "Phone number must be between 10 and 15 digits.")
	}

	exists, err := s.users.PhoneExists(ctx, normalized)
	if err != nil {
		return nil, err
	}

	message := "Phone number is available"
	if exists {
		message = "Phone number already registered"
	}

	return &dto.CheckPhoneResponse{
		Available: !exists,
		Message:   message,
	}, nil
}

func (s *registerService) RegistrationConfig() *dto.RegistrationConfigResponse {
	return &dto.RegistrationConfigResponse{
		FarmTypes:            refdata.FarmTypes,
		BusinessTypes:        refdata.BusinessTypes,
		CommonCropTypes:      refdata.CommonCropTypes,
		CommonLivestockTypes: refdata.CommonLivestockTypes,
		CommonEquipmentTypes: refdata.CommonEquipmentTypes,
		TamilNaduDistricts:   refdata.TamilNaduDistricts,
	}
}
