package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	// Request creation and per-employee listing live under the
	// employee resource; the collection and status transitions under
	// /leave.
	r.POST("/employees/:id/leave", handler.Create)
	r.GET("/employees/:id/leave", handler.GetByEmployee)

	leaves := r.Group("/leave")
	{
		leaves.GET("", handler.GetAll)
		leaves.PATCH("/:id", handler.UpdateStatus)
	}
}
