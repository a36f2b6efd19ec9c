package handler

import (
	"net/http"

	"agrirent/internal/dto"
	"agrirent/internal/service"
	"agrirent/pkg/apperror"
	"agrirent/pkg/response"
	pkgvalidator "agrirent/pkg/validator"
	"github.com/gin-gonic/gin"
)

type RegisterHandler struct {
	registerService service.RegisterService
}

func NewRegisterHandler(registerService service.RegisterService) *RegisterHandler {
	return &RegisterHandler{
		registerService: registerService,
	}
}

func (h *RegisterHandler) Register(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, &apperror.ValidationError{Fields: pkgvalidator.FormatValidationErrors(err)})
		return
	}

	res, err := h.registerService.Register(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", res)
}

func (h *RegisterHandler) CheckPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		response.Error(c, apperror.NewValidation("phone", "The phone field is required."))
		return
	}

	res, err := h.registerService.CheckPhone(c.Request.Context(), phone)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, res.Message, res)
}

func (h *RegisterHandler) RegistrationConfig(c *gin.Context) {
	response.Success(c, http.StatusOK, "", h.registerService.RegistrationConfig())
}
