package entries

import (
	"fmt"
	"time"

	"stockroom/internal/inventory/instances"
	"stockroom/internal/inventory/items"
	"stockroom/internal/locations"
	"stockroom/internal/repository"
	"stockroom/pkg/metadata"
	"stockroom/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type EntryService struct {
	r            *repository.Repository
	er           EntryRepository
	instanceRepo *instances.InstanceRepository
	itemRepo     *items.ItemRepository
	locationRepo *locations.LocationRepository
}

type ValidationError struct {
	Message  string `json:"message"`
	Property string `json:"property"`
}

func (s *EntryService) GetEntry(entryID int) (*models.StockEntry, error) {
	entry, err := s.er.GetEntryRow(entryID)
	if err != nil {
		return nil, err
	}

	details, err := s.er.GetEntryInstances(entryID)
	if err != nil {
		return nil, err
	}
	entry.InstancesDetails = details

	return entry, nil
}

func (s *EntryService) GetEntries(conditions repository.QueryBuilder, locationID *int) (*[]models.StockEntry, error) {
	return s.er.GetEntryRows(conditions, locationID)
}

func (s *EntryService) GetDashboardStats() (*models.DashboardStats, error) {
	return s.er.GetDashboardStats()
}

// ValidateEntry checks an entry request against the movement rules before
// anything is written. A non-empty slice means the request is rejectable as-is.
func (s *EntryService) ValidateEntry(req models.StockEntryRequest) ([]ValidationError, error) {
	var validationState []ValidationError

	entryType, err := metadata.NewEntryType(req.EntryType)
	if err != nil {
		return append(validationState, ValidationError{
			Message:  err.Error(),
			Property: "entry_type",
		}), nil
	}

	if req.FromLocation != nil && req.ToLocation != nil && *req.FromLocation == *req.ToLocation {
		validationState = append(validationState, ValidationError{
			Message:  "Source and destination location cannot be the same",
			Property: "to_location",
		})
	}

	if req.IsTemporary && req.ExpectedReturnDate == nil {
		validationState = append(validationState, ValidationError{
			Message:  "Temporary issue requires an expected return date",
			Property: "expected_return_date",
		})
	}

	switch entryType {
	case metadata.EntryTypeIssue:
		if req.FromLocation == nil {
			validationState = append(validationState, ValidationError{
				Message:  "Issue requires a source location",
				Property: "from_location",
			})
			break
		}

		fromLocation, err := s.locationRepo.GetLocation(*req.FromLocation)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve source location: %w", err)
		}
		if !fromLocation.IsStore {
			validationState = append(validationState, ValidationError{
				Message:  "Issues can only be made from a store",
				Property: "from_location",
			})
		}

		if len(req.Instances) != req.Quantity {
			validationState = append(validationState, ValidationError{
				Message:  "Selected instances must match the requested quantity",
				Property: "instances",
			})
			break
		}

		count, err := s.instanceRepo.CountInstancesAt(req.Instances, *req.FromLocation, metadata.StatusInStore)
		if err != nil {
			return nil, fmt.Errorf("failed to validate instance availability: %w", err)
		}
		if count != len(req.Instances) {
			validationState = append(validationState, ValidationError{
				Message:  "Some selected instances are not available in the source store",
				Property: "instances",
			})
		}

	case metadata.EntryTypeReceipt:
		if req.ToLocation != nil {
			toLocation, err := s.locationRepo.GetLocation(*req.ToLocation)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve destination location: %w", err)
			}
			if !toLocation.IsStore {
				validationState = append(validationState, ValidationError{
					Message:  "Receipts can only be made into a store",
					Property: "to_location",
				})
			}
		}

		if req.AutoCreateInstances {
			break
		}
		if len(req.Instances) != req.Quantity {
			validationState = append(validationState, ValidationError{
				Message:  "Selected instances must match the requested quantity",
				Property: "instances",
			})
			break
		}
		if req.FromLocation != nil {
			count, err := s.instanceRepo.CountInstancesAt(req.Instances, *req.FromLocation, metadata.StatusTemporaryIssued)
			if err != nil {
				return nil, fmt.Errorf("failed to validate instance availability: %w", err)
			}
			if count != len(req.Instances) {
				validationState = append(validationState, ValidationError{
					Message:  "Some selected instances are not issued to the source location",
					Property: "instances",
				})
			}
		}

	case metadata.EntryTypeCorrection:
		if req.ReferenceEntry == nil {
			validationState = append(validationState, ValidationError{
				Message:  "Correction requires a reference entry",
				Property: "reference_entry",
			})
		}
		if req.Purpose == "" {
			validationState = append(validationState, ValidationError{
				Message:  "Correction requires a purpose",
				Property: "purpose",
			})
		}
		if len(req.Instances) == 0 {
			validationState = append(validationState, ValidationError{
				Message:  "Correction requires explicit instances",
				Property: "instances",
			})
		}
	}

	return validationState, nil
}

// CreateEntry writes the entry record, attaches its instances and moves them,
// all in one transaction. The returned id belongs to the new entry.
func (s *EntryService) CreateEntry(req models.StockEntryRequest) (int, error) {
	entryType, err := metadata.NewEntryType(req.EntryType)
	if err != nil {
		return 0, err
	}

	toLocation, err := s.locationRepo.GetLocation(*req.ToLocation)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve destination location: %w", err)
	}

	// An issue leaving the store network is always a loan.
	if entryType == metadata.EntryTypeIssue && !toLocation.IsStore {
		req.IsTemporary = true
	}

	entryStatus := metadata.EntryStatusCompleted
	issueStatus := metadata.StatusInUse
	if entryType == metadata.EntryTypeIssue {
		if toLocation.IsStore {
			entryStatus = metadata.EntryStatusPendingAck
			issueStatus = metadata.StatusInTransit
		} else if req.IsTemporary {
			issueStatus = metadata.StatusTemporaryIssued
		}
	}

	var entryID int
	err = repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		now := time.Now()
		sequence, err := s.er.NextEntrySequence(tx, entryType, now)
		if err != nil {
			return err
		}
		entryNumber := metadata.NewEntryNumber(entryType, now, sequence).Generate()

		if entryID, err = s.er.InsertEntryRecord(tx, req, entryNumber, entryStatus); err != nil {
			return err
		}

		instanceIDs := req.Instances
		switch entryType {
		case metadata.EntryTypeIssue:
			if err := s.instanceRepo.MoveInstances(tx, instanceIDs, req.FromLocation, *req.ToLocation, issueStatus, "Issued via "+entryNumber); err != nil {
				return err
			}

		case metadata.EntryTypeReceipt:
			if req.AutoCreateInstances {
				item, err := s.itemRepo.GetItem(req.Item)
				if err != nil {
					return err
				}
				if instanceIDs, err = s.instanceRepo.CreateInstances(tx, req.Item, item.Code, *req.ToLocation, req.Quantity, metadata.ConditionNew, "Received via "+entryNumber); err != nil {
					return err
				}
			} else {
				openIssues, err := s.er.FindOpenTemporaryIssues(tx, instanceIDs)
				if err != nil {
					return err
				}
				if err := s.er.StampActualReturnDate(tx, openIssues, now.Format("2006-01-02")); err != nil {
					return err
				}
				if err := s.instanceRepo.MoveInstances(tx, instanceIDs, req.FromLocation, *req.ToLocation, metadata.StatusInStore, "Received via "+entryNumber); err != nil {
					return err
				}
			}

		case metadata.EntryTypeCorrection:
			correctionStatus := metadata.StatusInUse
			if toLocation.IsStore {
				correctionStatus = metadata.StatusInStore
			}
			remarks := fmt.Sprintf("Correction %s: %s", entryNumber, req.Purpose)
			if err := s.instanceRepo.MoveInstances(tx, instanceIDs, req.FromLocation, *req.ToLocation, correctionStatus, remarks); err != nil {
				return err
			}
		}

		if err := s.er.AttachInstances(tx, entryID, instanceIDs); err != nil {
			return err
		}

		return s.itemRepo.RecomputeTotalQuantity(tx, req.Item)
	})
	if err != nil {
		return 0, err
	}

	return entryID, nil
}

// ValidateAcknowledgment checks that accepted and rejected ids together cover
// the entry's attached instances exactly once.
func (s *EntryService) ValidateAcknowledgment(entryID int, req models.AcknowledgeRequest) ([]ValidationError, error) {
	entryInstanceIDs, err := s.er.GetEntryInstanceIDs(entryID)
	if err != nil {
		return nil, err
	}

	attached := make(map[int]bool, len(entryInstanceIDs))
	for _, id := range entryInstanceIDs {
		attached[id] = true
	}

	seen := make(map[int]bool)
	var validationState []ValidationError

	checkID := func(id int, property string) {
		if !attached[id] {
			validationState = append(validationState, ValidationError{
				Message:  fmt.Sprintf("Instance %d is not part of this entry", id),
				Property: property,
			})
			return
		}
		if seen[id] {
			validationState = append(validationState, ValidationError{
				Message:  fmt.Sprintf("Instance %d listed more than once", id),
				Property: property,
			})
			return
		}
		seen[id] = true
	}

	for _, id := range req.AcceptedIDs {
		checkID(id, "accepted_ids")
	}
	for _, rejected := range req.RejectedItems {
		checkID(rejected.ID, "rejected_items")
	}

	if len(validationState) == 0 && len(seen) != len(entryInstanceIDs) {
		validationState = append(validationState, ValidationError{
			Message:  "Every instance of the entry must be accepted or rejected",
			Property: "accepted_ids",
		})
	}

	return validationState, nil
}

// Acknowledge settles a pending store-to-store issue. Accepted instances land
// in the destination store, rejected ones go back to the sender with the
// reason preserved in the movement log.
func (s *EntryService) Acknowledge(entry *models.StockEntry, req models.AcknowledgeRequest) (*models.AcknowledgeResponse, error) {
	err := repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if len(req.AcceptedIDs) > 0 {
			remarks := "Acknowledged via " + entry.EntryNumber
			if err := s.instanceRepo.MoveInstances(tx, req.AcceptedIDs, entry.FromLocation, *entry.ToLocation, metadata.StatusInStore, remarks); err != nil {
				return err
			}
		}

		for _, rejected := range req.RejectedItems {
			remarks := "Rejected: " + rejected.Reason
			if err := s.instanceRepo.MoveInstances(tx, []int{rejected.ID}, entry.ToLocation, *entry.FromLocation, metadata.StatusInStore, remarks); err != nil {
				return err
			}
		}

		return s.er.UpdateEntryStatus(tx, entry.ID, metadata.EntryStatusCompleted)
	})
	if err != nil {
		return nil, err
	}

	return &models.AcknowledgeResponse{
		Accepted: len(req.AcceptedIDs),
		Rejected: len(req.RejectedItems),
	}, nil
}

// ReturnTemporaryItems creates the mirror receipt for a temporary issue,
// brings its instances back to the issuing store and closes the loan.
func (s *EntryService) ReturnTemporaryItems(entry *models.StockEntry) (*models.ReturnTemporaryResponse, error) {
	instanceIDs, err := s.er.GetEntryInstanceIDs(entry.ID)
	if err != nil {
		return nil, err
	}

	var receiptNumber string
	err = repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		now := time.Now()
		sequence, err := s.er.NextEntrySequence(tx, metadata.EntryTypeReceipt, now)
		if err != nil {
			return err
		}
		receiptNumber = metadata.NewEntryNumber(metadata.EntryTypeReceipt, now, sequence).Generate()

		receiptReq := models.StockEntryRequest{
			EntryType:      metadata.EntryTypeReceipt.String(),
			FromLocation:   entry.ToLocation,
			ToLocation:     entry.FromLocation,
			Item:           entry.Item,
			Quantity:       entry.Quantity,
			ReferenceEntry: &entry.ID,
			Purpose:        "Return from temporary issue " + entry.EntryNumber,
		}

		receiptID, err := s.er.InsertEntryRecord(tx, receiptReq, receiptNumber, metadata.EntryStatusCompleted)
		if err != nil {
			return err
		}

		if err := s.er.AttachInstances(tx, receiptID, instanceIDs); err != nil {
			return err
		}

		if err := s.instanceRepo.MoveInstances(tx, instanceIDs, entry.ToLocation, *entry.FromLocation, metadata.StatusInStore, "Returned via "+receiptNumber); err != nil {
			return err
		}

		return s.er.StampActualReturnDate(tx, []int{entry.ID}, now.Format("2006-01-02"))
	})
	if err != nil {
		return nil, err
	}

	return &models.ReturnTemporaryResponse{
		Returned:           len(instanceIDs),
		ReceiptEntryNumber: receiptNumber,
	}, nil
}
