package service

import (
	"context"
	"net/http"

	"agrirent/internal/dto"
	"agrirent/internal/entity"
	"agrirent/internal/repository"
	"agrirent/pkg/apperror"
	pkgvalidator "agrirent/pkg/validator"
)

type ProfileService interface {
	GetFarmer(ctx context.Context, user *entity.User) (*dto.FarmerProfileResponse, error)
	GetOwner(ctx context.Context, user *entity.User) (*dto.OwnerProfileResponse, error)
	// CreateFarmer / CreateOwner add the second profile for an account,
	// unlocking the switch to that role.
	CreateFarmer(ctx context.Context, user *entity.User, input dto.CreateFarmerProfileRequest) (*dto.FarmerProfileResponse, error)
	CreateOwner(ctx context.Context, user *entity.User, input dto.CreateOwnerProfileRequest) (*dto.OwnerProfileResponse, error)
	UpdateFarmer(ctx context.Context, user *entity.User, input dto.UpdateFarmerProfileRequest) (*dto.FarmerProfileResponse, error)
	UpdateOwner(ctx context.Context, user *entity.User, input dto.UpdateOwnerProfileRequest) (*dto.OwnerProfileResponse, error)
	UpdateBankDetails(ctx context.Context, user *entity.User, input dto.UpdateBankDetailsRequest) (*dto.BankDetailsResponse, error)
}

type profileService struct {
	profiles repository.ProfileRepository
}

func NewProfileService(profiles repository.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) GetFarmer(ctx context.Context, user *entity.User) (*dto.FarmerProfileResponse, error) {
	profile, err := s.profiles.FindFarmerByUserID(ctx, user.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.New(http.StatusNotFound, "Farmer profile not found", nil)
		}
		return nil, err
	}
	resp := dto.NewFarmerProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) GetOwner(ctx context.Context, user *entity.User) (*dto.OwnerProfileResponse, error) {
	profile, err := s.profiles.FindOwnerByUserID(ctx, user.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.New(http.StatusNotFound, "Owner profile not found", nil)
		}
		return nil, err
	}
	resp := dto.NewOwnerProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) CreateFarmer(ctx context.Context, user *entity.User, input dto.CreateFarmerProfileRequest) (*dto.FarmerProfileResponse, error) {
	if user.HasFarmerProfile() {
		return nil, apperror.ErrProfileExists
	}

	pincode := pkgvalidator.NormalizePincode(input.Pincode)
	if !pkgvalidator.ValidPincode(pincode) {
		return nil, apperror.NewValidation("pincode", "Pincode must be exactly 6 digits.")
	}

	state := input.State
	if state == "" {
		state = defaultState
	}
	years := 0
	if input.YearsOfExperience != nil {
		years = *input.YearsOfExperience
	}

	profile := &entity.FarmerProfile{
		UserID:            user.ID,
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

	if err := s.profiles.CreateFarmer(ctx, profile); err != nil {
		return nil, err
	}

	resp := dto.NewFarmerProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) CreateOwner(ctx context.Context, user *entity.User, input dto.CreateOwnerProfileRequest) (*dto.OwnerProfileResponse, error) {
	if user.HasOwnerProfile() {
		return nil, apperror.ErrProfileExists
	}

	pincode := pkgvalidator.NormalizePincode(input.Pincode)
	if !pkgvalidator.ValidPincode(pincode) {
		return nil, apperror.NewValidation("pincode", "Pincode must be exactly 6 digits.")
	}

	state := input.State
	if state == "" {
		state = defaultState
	}
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

	profile := &entity.OwnerProfile{
		UserID:              user.ID,
		BusinessName:        input.BusinessName,
		BusinessType:        input.BusinessType,
		GSTNumber:           input.GSTNumber,
		YearsInBusiness:     years,
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

	if err := s.profiles.CreateOwner(ctx, profile); err != nil {
		return nil, err
	}

	resp := dto.NewOwnerProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) UpdateFarmer(ctx context.Context, user *entity.User, input dto.UpdateFarmerProfileRequest) (*dto.FarmerProfileResponse, error) {
	profile, err := s.profiles.FindFarmerByUserID(ctx, user.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.New(http.StatusNotFound, "Farmer profile not found", nil)
		}
		return nil, err
	}

	if input.FarmName != nil {
		profile.FarmName = input.FarmName
	}
	if input.FarmLocation != nil {
		profile.FarmLocation = *input.FarmLocation
	}
	if input.FarmSize != nil {
		profile.FarmSize = *input.FarmSize
	}
	if input.FarmType != nil {
		profile.FarmType = *input.FarmType
	}
	if input.YearsOfExperience != nil {
		profile.YearsOfExperience = *input.YearsOfExperience
	}
	if input.CropTypes != nil {
		profile.CropTypes = input.CropTypes
	}
	if input.LivestockTypes != nil {
		profile.LivestockTypes = input.LivestockTypes
	}
	if input.Village != nil {
		profile.Village = *input.Village
	}
	if input.Taluk != nil {
		profile.Taluk = *input.Taluk
	}
	if input.District != nil {
		profile.District = *input.District
	}
	if input.State != nil {
		profile.State = *input.State
	}
	if input.Pincode != nil {
		pincode := pkgvalidator.NormalizePincode(*input.Pincode)
		if !pkgvalidator.ValidPincode(pincode) {
			return nil, apperror.NewValidation("pincode", "Pincode must be exactly 6 digits.")
		}
		profile.Pincode = pincode
	}
	if input.AdditionalNotes != nil {
		profile.AdditionalNotes = input.AdditionalNotes
	}

	if err := s.profiles.SaveFarmer(ctx, profile); err != nil {
		return nil, err
	}

	resp := dto.NewFarmerProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) UpdateOwner(ctx context.Context, user *entity.User, input dto.UpdateOwnerProfileRequest) (*dto.OwnerProfileResponse, error) {
	profile, err := s.profiles.FindOwnerByUserID(ctx, user.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.New(http.StatusNotFound, "Owner profile not found", nil)
		}
		return nil, err
	}

	if input.BusinessName != nil {
		profile.BusinessName = input.BusinessName
	}
	if input.BusinessType != nil {
		profile.BusinessType = *input.BusinessType
	}
	if input.GSTNumber != nil {
		profile.GSTNumber = input.GSTNumber
	}
	if input.YearsInBusiness != nil {
		profile.YearsInBusiness = *input.YearsInBusiness
	}
	if input.EquipmentTypes != nil {
		profile.EquipmentTypes = input.EquipmentTypes
	}
	if input.ServiceDistricts != nil {
		profile.ServiceDistricts = input.ServiceDistricts
	}
	if input.MaxDeliveryDistance != nil {
		profile.MaxDeliveryDistance = *input.MaxDeliveryDistance
	}
	if input.AddressLine1 != nil {
		profile.AddressLine1 = *input.AddressLine1
	}
	if input.AddressLine2 != nil {
		profile.AddressLine2 = input.AddressLine2
	}
	if input.City != nil {
		profile.City = *input.City
	}
	if input.District != nil {
		profile.District = *input.District
	}
	if input.State != nil {
		profile.State = *input.State
	}
	if input.Pincode != nil {
		pincode := pkgvalidator.NormalizePincode(*input.Pincode)
		if !pkgvalidator.ValidPincode(pincode) {
			return nil, apperror.NewValidation("pincode", "Pincode must be exactly 6 digits.")
		}
		profile.Pincode = pincode
	}
	if input.ProvidesOperator != nil {
		profile.ProvidesOperator = *input.ProvidesOperator
	}
	if input.ProvidesDelivery != nil {
		profile.ProvidesDelivery = *input.ProvidesDelivery
	}
	if input.TermsAndConditions != nil {
		profile.TermsAndConditions = input.TermsAndConditions
	}

	if err := s.profiles.SaveOwner(ctx, profile); err != nil {
		return nil, err
	}

	resp := dto.NewOwnerProfileResponse(profile)
	return &resp, nil
}

func (s *profileService) UpdateBankDetails(ctx context.Context, user *entity.User, input dto.UpdateBankDetailsRequest) (*dto.BankDetailsResponse, error) {
	profile, err := s.profiles.FindOwnerByUserID(ctx, user.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperror.New(http.StatusNotFound, "Owner profile not found", nil)
		}
		return nil, err
	}

	profile.BankName = &input.BankName
	profile.AccountHolderName = &input.AccountHolderName
	profile.AccountNumber = &input.AccountNumber
	profile.IFSCCode = &input.IFSCCode

	if err := s.profiles.SaveOwner(ctx, profile); err != nil {
		return nil, err
	}

	return &dto.BankDetailsResponse{
		BankName:          input.BankName,
		AccountHolderName: input.AccountHolderName,
		HasBankDetails:    profile.HasBankDetails(),
	}, nil
}
