package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"fbs-backend/internal/models"
)

// HealthHandler godoc
// @Summary     Health check
// @Description Returns the health status of the API
// @Tags        health
// @Accept      json
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func HealthHandler(c *gin.Context) {
	response := models.HealthResponse{
		Status: "ok",
	}
	c.JSON(http.StatusOK, response)
}

// RootHandler godoc
// @Summary     Service banner
// @Description Plain-text liveness banner
// @Tags        health
// @Produce     plain
// @Success     200 {string} string
// @Router      / [get]
func RootHandler(c *gin.Context) {
	c.String(http.StatusOK, "FBS Backend is running 🚀")
}
