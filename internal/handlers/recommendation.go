package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/orbitware/orbit-backend/internal/engine"
	"github.com/orbitware/orbit-backend/internal/services"
)

type RecommendationHandler struct {
	recommendationService services.RecommendationService
}

func NewRecommendationHandler(recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

func (rh *RecommendationHandler) Recommend(c *gin.Context) {
	var req struct {
		Age           *int     `json:"age"`
		Salary        *float64 `json:"salary"`
		Budget        *float64 `json:"budget"`
		InsuranceType string   `json:"insurance_type"`
		TopN          int      `json:"top_n"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := rh.recommendationService.Recommend(c.Request.Context(), services.RecommendationRequest{
		Age:           req.Age,
		Salary:        req.Salary,
		Budget:        req.Budget,
		InsuranceType: req.InsuranceType,
		TopN:          req.TopN,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (rh *RecommendationHandler) EstimatePremium(c *gin.Context) {
	var req struct {
		PlanID string   `json:"plan_id"`
		Age    *int     `json:"age"`
		Salary *float64 `json:"salary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.PlanID == "" || req.Age == nil || req.Salary == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_id, age and salary are required"})
		return
	}
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}
	estimate, err := rh.recommendationService.EstimatePremium(c.Request.Context(), planID, *req.Age, *req.Salary)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, estimate)
}

func (rh *RecommendationHandler) Compare(c *gin.Context) {
	var req struct {
		PlanIDs []string `json:"plan_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.PlanIDs) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least 2 plans required for comparison"})
		return
	}
	planIDs := make([]uuid.UUID, 0, len(req.PlanIDs))
	for _, raw := range req.PlanIDs {
		planID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
			return
		}
		planIDs = append(planIDs, planID)
	}
	comparisons, err := rh.recommendationService.Compare(c.Request.Context(), planIDs)
	if err != nil {
		if errors.Is(err, engine.ErrDegeneratePricing) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comparison": comparisons})
}
