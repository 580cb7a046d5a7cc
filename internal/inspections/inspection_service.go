package inspections

import (
	"fmt"
	"time"

	"stockroom/internal/inventory/entries"
	"stockroom/internal/inventory/instances"
	"stockroom/internal/inventory/items"
	"stockroom/internal/repository"
	"stockroom/pkg/metadata"
	"stockroom/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type InspectionService struct {
	r            *repository.Repository
	ir           *InspectionRepository
	entryRepo    entries.EntryRepository
	instanceRepo *instances.InstanceRepository
	itemRepo     *items.ItemRepository
}

// Confirm materializes a draft certificate: every accepted line becomes a
// batch of new instances in the receiving store, backed by a receipt entry.
func (s *InspectionService) Confirm(certificate *models.InspectionCertificate) (*models.ConfirmInspectionResponse, error) {
	response := models.ConfirmInspectionResponse{}

	err := repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		now := time.Now()

		for _, line := range certificate.Items {
			if line.AcceptedQuantity == 0 {
				continue
			}

			item, err := s.itemRepo.GetItem(line.Item)
			if err != nil {
				return err
			}

			sequence, err := s.entryRepo.NextEntrySequence(tx, metadata.EntryTypeReceipt, now)
			if err != nil {
				return err
			}
			entryNumber := metadata.NewEntryNumber(metadata.EntryTypeReceipt, now, sequence).Generate()

			store := certificate.ReceivingStore
			entryReq := models.StockEntryRequest{
				EntryType:  metadata.EntryTypeReceipt.String(),
				ToLocation: &store,
				Item:       line.Item,
				Quantity:   line.AcceptedQuantity,
				Purpose:    "Inspection certificate " + certificate.CertificateNo,
				Remarks:    line.Remarks,
			}

			entryID, err := s.entryRepo.InsertEntryRecord(tx, entryReq, entryNumber, metadata.EntryStatusCompleted)
			if err != nil {
				return err
			}

			created, err := s.instanceRepo.CreateInstances(tx, line.Item, item.Code, store, line.AcceptedQuantity, metadata.ConditionNew, "Received via "+entryNumber)
			if err != nil {
				return err
			}

			if err := s.entryRepo.AttachInstances(tx, entryID, created); err != nil {
				return err
			}

			if err := s.itemRepo.RecomputeTotalQuantity(tx, line.Item); err != nil {
				return err
			}

			response.InstancesCreated += len(created)
			response.ReceiptEntriesCreated++
		}

		return s.ir.UpdateStatus(tx, certificate.ID, metadata.CertificateConfirmed)
	})
	if err != nil {
		return nil, err
	}

	response.Message = fmt.Sprintf("Certificate %s confirmed", certificate.CertificateNo)

	return &response, nil
}
