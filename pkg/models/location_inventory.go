package models

type LocationInventory struct {
	Location                int    `json:"location" db:"location_id"`
	LocationName            string `json:"location_name" db:"location_name"`
	Item                    int    `json:"item" db:"item_id"`
	ItemName                string `json:"item_name" db:"item_name"`
	ItemCode                string `json:"item_code" db:"item_code"`
	TotalQuantity           int    `json:"total_quantity" db:"total_quantity"`
	AvailableQuantity       int    `json:"available_quantity" db:"available_quantity"`
	InTransitQuantity       int    `json:"in_transit_quantity" db:"in_transit_quantity"`
	InUseQuantity           int    `json:"in_use_quantity" db:"in_use_quantity"`
	TemporaryIssuedQuantity int    `json:"temporary_issued_quantity" db:"temporary_issued_quantity"`
}

type RefreshInventoryRequest struct {
	LocationID int `json:"location_id" binding:"required"`
}
