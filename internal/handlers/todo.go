package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/todolist-backend/internal/services"
	"github.com/yungbote/todolist-backend/internal/types"
)

type TodoHandler struct {
	todoService services.TodoService
}

func NewTodoHandler(todoService services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) Create(c *gin.Context) {
	var payload types.CreateTodo
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	created, err := h.todoService.Create(c.Request.Context(), payload)
	if err != nil {
		RespondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TodoHandler) Find(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	found, err := h.todoService.Find(c.Request.Context(), id)
	if err != nil {
		RespondRepoError(c, err)
		return
	}
	RespondOK(c, found)
}

func (h *TodoHandler) All(c *gin.Context) {
	todos, err := h.todoService.All(c.Request.Context())
	if err != nil {
		RespondRepoError(c, err)
		return
	}
	RespondOK(c, todos)
}

func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload types.UpdateTodo
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	updated, err := h.todoService.Update(c.Request.Context(), id, payload)
	if err != nil {
		RespondRepoError(c, err)
		return
	}
	RespondOK(c, updated)
}

func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.todoService.Delete(c.Request.Context(), id); err != nil {
		RespondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses the :id segment; on failure it writes the 400 itself.
func pathID(c *gin.Context) (int32, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return 0, false
	}
	return int32(id), true
}
