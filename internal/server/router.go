package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/todolist-backend/internal/handlers"
	"github.com/yungbote/todolist-backend/internal/middleware"
)

type RouterConfig struct {
	TodoHandler  *handlers.TodoHandler
	LabelHandler *handlers.LabelHandler
	RequestID    *middleware.RequestIDMiddleware
	AllowOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3001"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	if cfg.RequestID != nil {
		router.Use(cfg.RequestID.Inject())
	}

	router.GET("/healthcheck", handlers.HealthCheck)

	router.POST("/todos", cfg.TodoHandler.Create)
	router.GET("/todos", cfg.TodoHandler.All)
	router.GET("/todos/:id", cfg.TodoHandler.Find)
	router.PATCH("/todos/:id", cfg.TodoHandler.Update)
	router.DELETE("/todos/:id", cfg.TodoHandler.Delete)

	router.POST("/labels", cfg.LabelHandler.Create)
	router.GET("/labels", cfg.LabelHandler.All)
	router.DELETE("/labels/:id", cfg.LabelHandler.Delete)

	return router
}
