package models

type Location struct {
	ID            int     `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	Code          string  `json:"code" db:"code"`
	LocationType  string  `json:"location_type" db:"location_type"`
	IsStore       bool    `json:"is_store" db:"is_store"`
	Parent        *int    `json:"parent" db:"parent_id"`
	ContactPerson *string `json:"contact_person" db:"contact_person"`
	ContactPhone  *string `json:"contact_phone" db:"contact_phone"`
	IsActive      bool    `json:"is_active" db:"is_active"`
}

type LocationRequest struct {
	Name          string  `json:"name" binding:"required"`
	Code          string  `json:"code" binding:"required"`
	LocationType  string  `json:"location_type" binding:"required"`
	IsStore       bool    `json:"is_store"`
	Parent        *int    `json:"parent"`
	ContactPerson *string `json:"contact_person"`
	ContactPhone  *string `json:"contact_phone"`
	IsActive      *bool   `json:"is_active"`
}
