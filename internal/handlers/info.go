package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"fbs-backend/internal/easybargain"
	"fbs-backend/internal/models"
)

type InfoHandler struct {
	provider *easybargain.Client
}

func NewInfoHandler(provider *easybargain.Client) *InfoHandler {
	return &InfoHandler{provider: provider}
}

// GetInfo godoc
// @Summary     Look up resource info
// @Description Proxies the conversion provider's info endpoint and returns its JSON verbatim
// @Tags        info
// @Produce     json
// @Param       url query string true "Resource URL"
// @Success     200 {object} map[string]interface{}
// @Failure     500 {object} models.FailureResponse
// @Router      /api/info [get]
func (h *InfoHandler) GetInfo(c *gin.Context) {
	data, err := h.provider.Info(c.Query("url"))
	if err != nil {
		log.Printf("get info: %v", err)
		c.JSON(http.StatusInternalServerError, models.FailureResponse{Status: false, Error: "info failed"})
		return
	}

	c.Data(http.StatusOK, "application/json", data)
}
