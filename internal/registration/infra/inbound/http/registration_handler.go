package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davicafu/bizreg/internal/registration/application"
	"github.com/davicafu/bizreg/internal/registration/domain"
	"github.com/davicafu/bizreg/pkg/utils"
)

// RegistrationHandler encapsula los endpoints HTTP del registro de negocios
type RegistrationHandler struct {
	service *application.RegistrationService
}

func NewRegistrationHandler(service *application.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// ---------------- Handlers ----------------

// RegisterBusiness endpoint POST /business-registered
func (h *RegistrationHandler) RegisterBusiness(c *gin.Context) {
	var req struct {
		BusinessName string `json:"businessName" binding:"required"`
		Email        string `json:"email" binding:"required"`
		Phone        string `json:"phone" binding:"required"`
		Address      string `json:"address" binding:"required"`
		BusinessType string `json:"businessType" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, "missing required fields: businessName, email, phone, address, businessType")
		return
	}

	reg, err := h.service.Register(c.Request.Context(), application.RegistrationInput{
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		BusinessType: req.BusinessType,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRegistration) {
			utils.SendBadRequest(c, err.Error())
			return
		}
		utils.SendInternalServerError(c, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Business registration successful",
		"businessId": reg.BusinessID,
	})
}
