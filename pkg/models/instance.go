package models

import "time"

type ItemInstance struct {
	ID                  int    `json:"id" db:"id"`
	InstanceCode        string `json:"instance_code" db:"instance_code"`
	Item                int    `json:"item" db:"item_id"`
	ItemName            string `json:"item_name" db:"item_name"`
	SourceLocation      int    `json:"source_location" db:"source_location_id"`
	CurrentLocation     int    `json:"current_location" db:"current_location_id"`
	CurrentLocationName string `json:"current_location_name" db:"current_location_name"`
	CurrentStatus       string `json:"current_status" db:"current_status"`
	Condition           string `json:"condition" db:"condition"`
}

// InstanceDetail is the trimmed projection nested in a stock entry detail
// response, enough for the acknowledgment screen.
type InstanceDetail struct {
	ID                  int    `json:"id" db:"id"`
	InstanceCode        string `json:"instance_code" db:"instance_code"`
	Condition           string `json:"condition" db:"condition"`
	CurrentStatus       string `json:"current_status" db:"current_status"`
	CurrentLocationName string `json:"current_location_name" db:"current_location_name"`
}

// InstanceMovement is one row of an instance's append-only movement history.
type InstanceMovement struct {
	ID               int       `json:"id" db:"id"`
	Instance         int       `json:"instance" db:"instance_id"`
	FromLocation     *int      `json:"from_location" db:"from_location_id"`
	FromLocationName *string   `json:"from_location_name" db:"from_location_name"`
	ToLocation       *int      `json:"to_location" db:"to_location_id"`
	ToLocationName   *string   `json:"to_location_name" db:"to_location_name"`
	Status           string    `json:"status" db:"status"`
	Timestamp        time.Time `json:"timestamp" db:"created_at"`
	Remarks          string    `json:"remarks" db:"remarks"`
}

type ScanRequest struct {
	InstanceCode string `json:"instance_code" binding:"required"`
}

type ScanResponse struct {
	Instance        ItemInstance       `json:"instance"`
	MovementHistory []InstanceMovement `json:"movement_history"`
}
