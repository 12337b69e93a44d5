package app

import (
	"net/http"

	"github.com/ahmadluay9/hr-app/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// BuildApp assembles the in-memory stores, wires the modules and
// registers every route on the router. The stores live for the life of
// the process; nothing is persisted.
func BuildApp(router *gin.Engine) error {
	router.Use(middleware.RequestID())
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the HR API!"})
	})

	return registerModules(router)
}
