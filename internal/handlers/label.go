package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/todolist-backend/internal/services"
	"github.com/yungbote/todolist-backend/internal/types"
)

type LabelHandler struct {
	labelService services.LabelService
}

func NewLabelHandler(labelService services.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

func (h *LabelHandler) Create(c *gin.Context) {
	var payload types.CreateLabel
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	created, err := h.labelService.Create(c.Request.Context(), payload.Name)
	if err != nil {
		RespondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *LabelHandler) All(c *gin.Context) {
	labels, err := h.labelService.All(c.Request.Context())
	if err != nil {
		RespondRepoError(c, err)
		return
	}
	RespondOK(c, labels)
}

func (h *LabelHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.labelService.Delete(c.Request.Context(), id); err != nil {
		RespondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
