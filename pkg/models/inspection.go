package models

type InspectionLine struct {
	ID               int     `json:"id" db:"id"`
	Item             int     `json:"item" db:"item_id"`
	ItemName         string  `json:"item_name" db:"item_name"`
	TenderedQuantity int     `json:"tendered_quantity" db:"tendered_quantity"`
	AcceptedQuantity int     `json:"accepted_quantity" db:"accepted_quantity"`
	RejectedQuantity int     `json:"rejected_quantity" db:"rejected_quantity"`
	UnitPrice        float64 `json:"unit_price" db:"unit_price"`
	Remarks          string  `json:"remarks" db:"remarks"`
}

type InspectionCertificate struct {
	ID                 int              `json:"id" db:"id"`
	CertificateNo      string           `json:"certificate_no" db:"certificate_no"`
	Status             string           `json:"status" db:"status"`
	Date               string           `json:"date" db:"inspection_date"`
	InspectedBy        string           `json:"inspected_by" db:"inspected_by"`
	ContractNo         string           `json:"contract_no" db:"contract_no"`
	ContractorName     string           `json:"contractor_name" db:"contractor_name"`
	Indenter           string           `json:"indenter" db:"indenter"`
	IndentNo           string           `json:"indent_no" db:"indent_no"`
	Consignee          string           `json:"consignee" db:"consignee"`
	Department         string           `json:"department" db:"department"`
	ReceivingStore     int              `json:"receiving_store" db:"receiving_store_id"`
	ReceivingStoreName string           `json:"receiving_store_name" db:"receiving_store_name"`
	Remarks            string           `json:"remarks" db:"remarks"`
	Items              []InspectionLine `json:"items,omitempty"`
}

type InspectionLineRequest struct {
	Item             int     `json:"item" binding:"required"`
	TenderedQuantity int     `json:"tendered_quantity" binding:"required,gte=1"`
	AcceptedQuantity int     `json:"accepted_quantity" binding:"gte=0"`
	RejectedQuantity int     `json:"rejected_quantity" binding:"gte=0"`
	UnitPrice        float64 `json:"unit_price"`
	Remarks          string  `json:"remarks"`
}

type InspectionRequest struct {
	CertificateNo  string                  `json:"certificate_no" binding:"required"`
	Date           string                  `json:"date" binding:"required"`
	InspectedBy    string                  `json:"inspected_by"`
	ContractNo     string                  `json:"contract_no"`
	ContractorName string                  `json:"contractor_name"`
	Indenter       string                  `json:"indenter"`
	IndentNo       string                  `json:"indent_no"`
	Consignee      string                  `json:"consignee"`
	Department     string                  `json:"department"`
	ReceivingStore int                     `json:"receiving_store" binding:"required"`
	Remarks        string                  `json:"remarks"`
	Items          []InspectionLineRequest `json:"items" binding:"required,min=1"`
}

type ConfirmInspectionResponse struct {
	InstancesCreated      int    `json:"instances_created"`
	ReceiptEntriesCreated int    `json:"receipt_entries_created"`
	Message               string `json:"message"`
}
