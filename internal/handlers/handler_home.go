package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Plannivo revenue backend API v1"})
}

// registerHomeRoutes registers the '/hello' route
func registerHomeRoutes(group *gin.RouterGroup) {
	group.GET("/hello", getHome)
}
