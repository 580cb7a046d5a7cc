package models

type Category struct {
	ID       int    `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Code     string `json:"code" db:"code"`
	Parent   *int   `json:"parent" db:"parent_id"`
	IsActive bool   `json:"is_active" db:"is_active"`
}

type CategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code" binding:"required,alphanum"`
	Parent   *int   `json:"parent"`
	IsActive *bool  `json:"is_active"`
}
