package locinventory

import (
	"net/http"
	"strconv"

	"stockroom/internal/repository"
	"stockroom/pkg/models"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	Repository *InventoryRepository
}

func NewInventoryHandler(r *InventoryRepository) *InventoryHandler {
	return &InventoryHandler{Repository: r}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/location-inventory/summary/", h.GetSummary)
	router.POST("/location-inventory/refresh/", h.RefreshLocation)
}

func (h *InventoryHandler) GetSummary(c *gin.Context) {
	conditions := repository.NewQueryBuilder()

	if location := c.Query("location"); location != "" {
		locationID, err := strconv.Atoi(location)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid location parameter, must be an integer"})
			return
		}
		conditions.AddCondition("location", locationID)
	}

	if item := c.Query("item"); item != "" {
		itemID, err := strconv.Atoi(item)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid item parameter, must be an integer"})
			return
		}
		conditions.AddCondition("item", itemID)
	}

	summary, err := h.Repository.GetSummary(conditions)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch location inventory", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *InventoryHandler) RefreshLocation(c *gin.Context) {
	var req models.RefreshInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := h.Repository.RefreshLocation(req.LocationID); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not refresh location inventory", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location inventory refreshed successfully"})
}
