package models

import "time"

type StockEntry struct {
	ID                   int              `json:"id" db:"id"`
	EntryNumber          string           `json:"entry_number" db:"entry_number"`
	EntryType            string           `json:"entry_type" db:"entry_type"`
	FromLocation         *int             `json:"from_location" db:"from_location_id"`
	FromLocationName     *string          `json:"from_location_name" db:"from_location_name"`
	ToLocation           *int             `json:"to_location" db:"to_location_id"`
	ToLocationName       *string          `json:"to_location_name" db:"to_location_name"`
	Item                 int              `json:"item" db:"item_id"`
	ItemName             string           `json:"item_name" db:"item_name"`
	Quantity             int              `json:"quantity" db:"quantity"`
	IsTemporary          bool             `json:"is_temporary" db:"is_temporary"`
	ExpectedReturnDate   *string          `json:"expected_return_date" db:"expected_return_date"`
	ActualReturnDate     *string          `json:"actual_return_date" db:"actual_return_date"`
	Status               string           `json:"status" db:"status"`
	ReferenceEntry       *int             `json:"reference_entry" db:"reference_entry_id"`
	ReferenceEntryNumber *string          `json:"reference_entry_number,omitempty" db:"reference_entry_number"`
	Purpose              string           `json:"purpose" db:"purpose"`
	Remarks              string           `json:"remarks" db:"remarks"`
	EntryDate            time.Time        `json:"entry_date" db:"entry_date"`
	InstancesDetails     []InstanceDetail `json:"instances_details,omitempty" db:"-"`
}

type StockEntryRequest struct {
	EntryType           string  `json:"entry_type" binding:"required"`
	FromLocation        *int    `json:"from_location"`
	ToLocation          *int    `json:"to_location" binding:"required"`
	Item                int     `json:"item" binding:"required"`
	Quantity            int     `json:"quantity" binding:"required,gte=1"`
	IsTemporary         bool    `json:"is_temporary"`
	ExpectedReturnDate  *string `json:"expected_return_date"`
	ReferenceEntry      *int    `json:"reference_entry"`
	Instances           []int   `json:"instances"`
	AutoCreateInstances bool    `json:"auto_create_instances"`
	Purpose             string  `json:"purpose"`
	Remarks             string  `json:"remarks"`
}

type RejectedItem struct {
	ID     int    `json:"id" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type AcknowledgeRequest struct {
	AcceptedIDs   []int          `json:"accepted_ids"`
	RejectedItems []RejectedItem `json:"rejected_items"`
}

type AcknowledgeResponse struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

type ReturnTemporaryResponse struct {
	Returned           int    `json:"returned"`
	ReceiptEntryNumber string `json:"receipt_entry_number"`
}

type EntryTypeCount struct {
	EntryType string `json:"entry_type" db:"entry_type"`
	Count     int    `json:"count" db:"count"`
}

type DashboardStats struct {
	TotalEntries           int              `json:"total_entries"`
	PendingAcknowledgment  int              `json:"pending_acknowledgment"`
	CompletedToday         int              `json:"completed_today"`
	OverdueTemporaryIssues int              `json:"overdue_temporary_issues"`
	ByType                 []EntryTypeCount `json:"by_type"`
}
