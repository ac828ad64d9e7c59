package http

import "github.com/gin-gonic/gin"

func RegisterRegistrationRoutes(r *gin.Engine, handler *RegistrationHandler) {
	r.POST("/business-registered", handler.RegisterBusiness)
}
