package handler

import (
	"net/http"

	"agrirent/internal/dto"
	"agrirent/internal/middleware"
	"agrirent/internal/service"
	"agrirent/pkg/apperror"
	"agrirent/pkg/response"
	pkgvalidator "agrirent/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) GetFarmerProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	res, err := h.profileService.GetFarmer(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

func (h *ProfileHandler) GetOwnerProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	res, err := h.profileService.GetOwner(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// CreateFarmerProfile adds the second profile to an owner-first account.
func (h *ProfileHandler) CreateFarmerProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var input dto.CreateFarmerProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, &apperror.ValidationError{Fields: pkgvalidator.FormatValidationErrors(err)})
		return
	}

	res, err := h.profileService.CreateFarmer(c.Request.Context(), user, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Farmer profile created", res)
}

// CreateOwnerProfile adds the second profile to a farmer-first account.
func (h *ProfileHandler) CreateOwnerProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var input dto.CreateOwnerProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, &apperror.ValidationError{Fields: pkgvalidator.FormatValidationErrors(err)})
		return
	}

	res, err := h.profileService.CreateOwner(c.Request.Context(), user, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Owner profile created", res)
}

func (h *ProfileHandler) UpdateFarmerProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var input dto.UpdateFarmerProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, &apperror.ValidationError{Fields: pkgvalidator.FormatValidationErrors(err)})
		return
	}

	res, err := h.profileService.UpdateFarmer(c.Request.Context(), user, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Farmer profile updated", res)
}

func (h *ProfileHandler) UpdateOwnerProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var input dto.UpdateOwnerProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, &apperror.ValidationError{Fields: pkgvalidator.FormatValidationErrors(err)})
		return
	}

	res, err := h.profileService.UpdateOwner(c.Request.Context(), user, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Owner profile updated", res)
}

func (h *ProfileHandler) UpdateBankDetails(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var input dto.UpdateBankDetailsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, &apperror.ValidationError{Fields: pkgvalidator.FormatValidationErrors(err)})
		return
	}

	res, err := h.profileService.UpdateBankDetails(c.Request.Context(), user, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Bank details updated", res)
}
