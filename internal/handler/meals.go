package handler

import (
	"net/http"

	"sport-planner/internal/model"
	"sport-planner/internal/service"

	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	store *service.Store
}

func NewMealHandler(store *service.Store) *MealHandler {
	return &MealHandler{store: store}
}

func (h *MealHandler) List(c *gin.Context) {
	meals, err := h.store.ListMeals(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to get meals")
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealHandler) Create(c *gin.Context) {
	var req model.Meal
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid meal: "+err.Error())
		return
	}
	if req.ID == "" {
		badRequest(c, "id is required")
		return
	}
	if err := h.store.CreateMeal(c.Request.Context(), req); err != nil {
		fail(c, err, "Failed to create meal")
		return
	}
	c.JSON(http.StatusCreated, model.CreateResult{ID: req.ID, Message: "Meal created successfully"})
}

func (h *MealHandler) Update(c *gin.Context) {
	var req model.Meal
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid meal: "+err.Error())
		return
	}
	if err := h.store.UpdateMeal(c.Request.Context(), c.Param("id"), req); err != nil {
		fail(c, err, "Failed to update meal")
		return
	}
	c.JSON(http.StatusOK, model.StatusResult{Message: "Meal updated successfully"})
}

func (h *MealHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteMeal(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Failed to delete meal")
		return
	}
	c.JSON(http.StatusOK, model.StatusResult{Message: "Meal deleted successfully"})
}
