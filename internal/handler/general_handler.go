package handler

import (
	"net/http"

	"agrirent/internal/refdata"
	"agrirent/pkg/response"
	"github.com/gin-gonic/gin"
)

// GeneralHandler serves the shared reference lists used across forms.
type GeneralHandler struct{}

func NewGeneralHandler() *GeneralHandler {
	return &GeneralHandler{}
}

func (h *GeneralHandler) GetDistricts(c *gin.Context) {
	response.Success(c, http.StatusOK, "", gin.H{"districts": refdata.TamilNaduDistricts})
}

func (h *GeneralHandler) GetEquipmentTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, "", gin.H{"equipment_types": refdata.CommonEquipmentTypes})
}

func (h *GeneralHandler) GetCropTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, "", gin.H{"crop_types": refdata.CommonCropTypes})
}

func (h *GeneralHandler) GetLivestockTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, "", gin.H{"livestock_types": refdata.CommonLivestockTypes})
}
