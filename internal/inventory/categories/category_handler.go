package categories

import (
	"net/http"
	"strconv"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	Repository *CategoryRepository
}

func NewCategoryHandler(r *CategoryRepository) *CategoryHandler {
	return &CategoryHandler{Repository: r}
}

func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/categories/", h.GetCategories)
	router.POST("/categories/", h.CreateCategory)
	router.PUT("/categories/:id/", h.UpdateCategory)
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.Repository.GetCategories()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list categories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	category, err := h.Repository.PersistCategory(req)
	if err != nil {
		if _, ok := err.(*custom_error.UniqueViolationError); ok {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Category with same code already registered"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not insert category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID parameter, must be an integer"})
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	category, err := h.Repository.UpdateCategory(categoryID, req)
	if err != nil {
		if _, ok := err.(*custom_error.NotFoundError); ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not update category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}
