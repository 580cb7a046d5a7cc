package items

import (
	"net/http"
	"strconv"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	Repository *ItemRepository
}

func NewItemHandler(r *ItemRepository) *ItemHandler {
	return &ItemHandler{Repository: r}
}

func (h *ItemHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/items/", h.GetItems)
	router.POST("/items/", h.CreateItem)
	router.PUT("/items/:id/", h.UpdateItem)
}

func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.Repository.GetItems()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not list items", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	item, err := h.Repository.PersistItem(req)
	if err != nil {
		switch err.(type) {
		case *custom_error.UniqueViolationError:
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Item with same code already registered"})
		case *custom_error.ForeignKeyViolationError:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unknown category or default store", "details": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not insert item", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID parameter, must be an integer"})
		return
	}

	var req models.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	item, err := h.Repository.UpdateItem(itemID, req)
	if err != nil {
		if _, ok := err.(*custom_error.NotFoundError); ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not update item", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}
