package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kanban-board-api/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestRouter returns a router that authenticates every request as userID.
// A nil userID leaves the request anonymous.
func setupTestRouter(userID uuid.UUID) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set(middleware.ContextUserID, userID)
			c.Set(middleware.ContextEmail, "user@example.com")
		}
		c.Next()
	})
	return router
}
