package handler

import (
	"errors"
	"fmt"
	"net/http"

	"agrirent/internal/dto"
	"agrirent/internal/entity"
	"agrirent/internal/middleware"
	"agrirent/internal/service"
	"agrirent/pkg/apperror"
	"agrirent/pkg/response"
	pkgvalidator "agrirent/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, &apperror.ValidationError{Fields: pkgvalidator.FormatValidationErrors(err)})
		return
	}

	res, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", res)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// CheckAuth never fails for an unauthenticated caller; it reports the
// status instead.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	user, ok := h.authService.CheckToken(c.Request.Context(), middleware.BearerToken(c))
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"authenticated": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"authenticated": true,
		"user": dto.CheckAuthUser{
			ID:         user.ID,
			Phone:      user.Phone,
			Name:       user.Name,
			ActiveRole: user.ActiveRole.String(),
		},
	})
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	data := struct {
		dto.UserResponse
		ActiveProfile *dto.ActiveProfileResponse `json:"active_profile"`
	}{
		UserResponse:  dto.NewUserResponse(user),
		ActiveProfile: dto.NewActiveProfileResponse(user),
	}

	response.Success(c, http.StatusOK, "", data)
}

func (h *AuthHandler) SwitchRole(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	var input dto.SwitchRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, &apperror.ValidationError{Fields: pkgvalidator.FormatValidationErrors(err)})
		return
	}

	role := entity.Role(input.Role)
	res, err := h.authService.SwitchRole(c.Request.Context(), user, role)
	if err != nil {
		if errors.Is(err, apperror.ErrProfileMissing) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":                false,
				"message":                fmt.Sprintf("You need to complete your %s profile first.", role),
				"requires_profile_setup": true,
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, fmt.Sprintf("Successfully switched to %s role", role), res)
}

func (h *AuthHandler) RoleAvailability(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized)
		return
	}

	response.Success(c, http.StatusOK, "", h.authService.RoleAvailability(user))
}
