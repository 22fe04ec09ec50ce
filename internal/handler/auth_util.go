package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// callerFromContext builds the service caller from what the auth middleware
// stored. Missing values yield an unauthenticated caller.
func callerFromContext(c *gin.Context) service.Caller {
	var caller service.Caller
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uuid.UUID); ok {
			caller.UserID = id
		}
	}
	caller.Email = c.GetString(middleware.ContextEmail)
	return caller
}

// parseIDParam parses a UUID path parameter, writing a 400 on failure
func parseIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+label)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds the request body, writing a 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.SendErrorWithDetails(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body", err.Error())
		return false
	}
	return true
}
