package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smart-todo-backend/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	v1 := srv.gin.Group("/api/v1")

	tasks := v1.Group("/tasks")
	tasks.POST("", srv.taskHandler.CreateTask)
	tasks.GET("", srv.taskHandler.ListTasks)
	tasks.GET("/:id", srv.taskHandler.GetTask)
	tasks.PUT("/:id", srv.taskHandler.UpdateTask)
	tasks.DELETE("/:id", srv.taskHandler.DeleteTask)

	// The parse route is rate limited: every call may hit the paid LLM.
	tasks.POST("/parse", srv.middleware.RateLimit(srv.parseRatePerMin), srv.taskHandler.ParseTask)

	srv.l.Infof(ctx, "Task routes registered under /api/v1/tasks")
}
