package client

import (
	"net/http"

	"codeberg.org/daybook/server/internal/browser"
	"github.com/gin-gonic/gin"
)

type EnvironmentResponse struct {
	OK   bool                `json:"ok"`
	Data browser.Environment `json:"data"`
}

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/client/environment", Environment)
}

// Environment godoc
// @Summary Detect the client environment
// @Description Reports whether the request comes from an in-app browser, which cannot install the app or complete OAuth popups
// @Tags client
// @Produce json
// @Success 200 {object} EnvironmentResponse
// @Router /api/v1/client/environment [get]
func Environment(c *gin.Context) {
	c.JSON(http.StatusOK, EnvironmentResponse{
		OK:   true,
		Data: browser.DetectRequest(c.Request),
	})
}
