package handler

import (
	"sport-planner/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every resource under /api. Handlers receive their
// dependencies explicitly so tests can assemble the same tree around a
// throwaway store.
func NewRouter(store *service.Store, advisor service.Advisor) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	events := NewEventHandler(store)
	training := NewTrainingHandler(store)
	meals := NewMealHandler(store)
	injuries := NewInjuryHandler(store)
	competitions := NewCompetitionHandler(store)
	settings := NewSettingsHandler(store)
	coach := NewCoachHandler(advisor, store)

	api := r.Group("/api")

	api.GET("/events", events.List)
	api.POST("/events", events.Create)
	api.PUT("/events/:id", events.Update)
	api.DELETE("/events/:id", events.Delete)

	api.GET("/training", training.List)
	api.POST("/training", training.Create)
	api.PUT("/training/:id", training.Update)
	api.DELETE("/training/:id", training.Delete)

	api.GET("/meals", meals.List)
	api.POST("/meals", meals.Create)
	api.PUT("/meals/:id", meals.Update)
	api.DELETE("/meals/:id", meals.Delete)

	api.GET("/injuries", injuries.List)
	api.POST("/injuries", injuries.Create)
	api.PUT("/injuries/:id", injuries.Update)
	api.DELETE("/injuries/:id", injuries.Delete)

	api.GET("/competitions", competitions.List)
	api.POST("/competitions", competitions.Create)
	api.PUT("/competitions/:id", competitions.Update)
	api.DELETE("/competitions/:id", competitions.Delete)

	api.GET("/settings", settings.Get)
	api.PUT("/settings", settings.Update)

	api.POST("/coach/:type", coach.Advice)
	api.GET("/coach/:type/messages", coach.Messages)

	return r
}
