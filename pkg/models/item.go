package models

type Item struct {
	ID               int    `json:"id" db:"id"`
	Name             string `json:"name" db:"name"`
	Code             string `json:"code" db:"code"`
	Category         int    `json:"category" db:"category_id"`
	CategoryName     string `json:"category_name" db:"category_name"`
	DefaultStore     int    `json:"default_store" db:"default_store_id"`
	DefaultStoreName string `json:"default_store_name" db:"default_store_name"`
	Unit             string `json:"unit" db:"unit"`
	ReorderLevel     int    `json:"reorder_level" db:"reorder_level"`
	ReorderQuantity  int    `json:"reorder_quantity" db:"reorder_quantity"`

	// TotalQuantity is denormalized and recomputed by the backend; it is
	// never accepted from a request.
	TotalQuantity int `json:"total_quantity" db:"total_quantity"`
}

type ItemRequest struct {
	Name            string `json:"name" binding:"required"`
	Code            string `json:"code" binding:"required"`
	Category        int    `json:"category" binding:"required"`
	DefaultStore    int    `json:"default_store" binding:"required"`
	Unit            string `json:"unit" binding:"required"`
	ReorderLevel    int    `json:"reorder_level"`
	ReorderQuantity int    `json:"reorder_quantity"`
}
