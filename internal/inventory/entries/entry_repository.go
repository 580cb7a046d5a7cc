package entries

import (
	"fmt"
	"time"

	"stockroom/internal/repository"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/metadata"
	"stockroom/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type EntryRepository interface {
	GetEntryRow(entryID int) (*models.StockEntry, error)
	GetEntryRows(conditions repository.QueryBuilder, locationID *int) (*[]models.StockEntry, error)
	NextEntrySequence(tx *goqu.TxDatabase, entryType metadata.EntryType, date time.Time) (int, error)
	InsertEntryRecord(tx *goqu.TxDatabase, req models.StockEntryRequest, entryNumber string, status metadata.EntryStatus) (int, error)
	AttachInstances(tx *goqu.TxDatabase, entryID int, instanceIDs []int) error
	GetEntryInstanceIDs(entryID int) ([]int, error)
	GetEntryInstances(entryID int) ([]models.InstanceDetail, error)
	UpdateEntryStatus(tx *goqu.TxDatabase, entryID int, status metadata.EntryStatus) error
	StampActualReturnDate(tx *goqu.TxDatabase, entryIDs []int, date string) error
	FindOpenTemporaryIssues(tx *goqu.TxDatabase, instanceIDs []int) ([]int, error)
	GetDashboardStats() (*models.DashboardStats, error)
}

type entryRepository struct {
	Repo *repository.Repository
}

func NewRepository(r *repository.Repository) *entryRepository {
	return &entryRepository{Repo: r}
}

func (r *entryRepository) entryQuery() *goqu.SelectDataset {
	return r.Repo.GoquDBWrapper.
		Select(
			goqu.I("e.id").As("id"),
			goqu.I("e.entry_number").As("entry_number"),
			goqu.I("e.entry_type").As("entry_type"),
			goqu.I("e.from_location_id").As("from_location_id"),
			goqu.I("l1.name").As("from_location_name"),
			goqu.I("e.to_location_id").As("to_location_id"),
			goqu.I("l2.name").As("to_location_name"),
			goqu.I("e.item_id").As("item_id"),
			goqu.I("i.name").As("item_name"),
			goqu.I("e.quantity").As("quantity"),
			goqu.I("e.is_temporary").As("is_temporary"),
			goqu.L("to_char(e.expected_return_date, 'YYYY-MM-DD')").As("expected_return_date"),
			goqu.L("to_char(e.actual_return_date, 'YYYY-MM-DD')").As("actual_return_date"),
			goqu.I("e.status").As("status"),
			goqu.I("e.reference_entry_id").As("reference_entry_id"),
			goqu.I("ref.entry_number").As("reference_entry_number"),
			goqu.I("e.purpose").As("purpose"),
			goqu.I("e.remarks").As("remarks"),
			goqu.I("e.entry_date").As("entry_date"),
		).
		From(goqu.T("stock_entries").As("e")).
		LeftJoin(
			goqu.T("locations").As("l1"),
			goqu.On(goqu.Ex{"e.from_location_id": goqu.I("l1.id")}),
		).
		LeftJoin(
			goqu.T("locations").As("l2"),
			goqu.On(goqu.Ex{"e.to_location_id": goqu.I("l2.id")}),
		).
		LeftJoin(
			goqu.T("items").As("i"),
			goqu.On(goqu.Ex{"e.item_id": goqu.I("i.id")}),
		).
		LeftJoin(
			goqu.T("stock_entries").As("ref"),
			goqu.On(goqu.Ex{"e.reference_entry_id": goqu.I("ref.id")}),
		)
}

func (r *entryRepository) GetEntryRow(entryID int) (*models.StockEntry, error) {
	var entry models.StockEntry
	found, err := r.entryQuery().
		Where(goqu.Ex{"e.id": entryID}).
		Executor().
		ScanStruct(&entry)
	if err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("stock entry", fmt.Sprint(entryID))
	}

	return &entry, nil
}

func (r *entryRepository) GetEntryRows(conditions repository.QueryBuilder, locationID *int) (*[]models.StockEntry, error) {
	var entryRows = []models.StockEntry{}

	query := r.entryQuery()
	if conditions.HasConditions() {
		aliases := map[string]string{
			"status":       "e.status",
			"entry_type":   "e.entry_type",
			"is_temporary": "e.is_temporary",
			"item":         "e.item_id",
		}
		query = query.Where(conditions.BuildConditions(aliases))
	}

	// A single location filter matches either end of the movement.
	if locationID != nil {
		query = query.Where(goqu.Or(
			goqu.I("e.from_location_id").Eq(*locationID),
			goqu.I("e.to_location_id").Eq(*locationID),
		))
	}

	if err := query.Order(goqu.I("e.entry_date").Desc()).Executor().ScanStructs(&entryRows); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return &entryRows, nil
}

// NextEntrySequence reserves the next per-type daily sequence number. The
// count runs inside the caller's transaction so concurrent creates of the
// same type serialize on the insert below.
func (r *entryRepository) NextEntrySequence(tx *goqu.TxDatabase, entryType metadata.EntryType, date time.Time) (int, error) {
	var count int
	_, err := tx.From("stock_entries").
		Select(goqu.COUNT("id")).
		Where(
			goqu.C("entry_type").Eq(entryType.String()),
			goqu.L("entry_date::date = ?::date", date.Format("2006-01-02")),
		).
		Executor().
		ScanVal(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries for sequence: %w", err)
	}

	return count + 1, nil
}

func (r *entryRepository) InsertEntryRecord(tx *goqu.TxDatabase, req models.StockEntryRequest, entryNumber string, status metadata.EntryStatus) (int, error) {
	query := tx.Insert("stock_entries").
		Rows(goqu.Record{
			"entry_number":         entryNumber,
			"entry_type":           req.EntryType,
			"from_location_id":     req.FromLocation,
			"to_location_id":       req.ToLocation,
			"item_id":              req.Item,
			"quantity":             req.Quantity,
			"is_temporary":         req.IsTemporary,
			"expected_return_date": req.ExpectedReturnDate,
			"status":               status.String(),
			"reference_entry_id":   req.ReferenceEntry,
			"purpose":              req.Purpose,
			"remarks":              req.Remarks,
		}).
		Returning("id")

	var entryID int
	if _, err := query.Executor().ScanVal(&entryID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, custom_error.WrapDBError("Duplicate entry number", string(pqErr.Code))
		}
		return 0, fmt.Errorf("failed to insert stock entry record: %w", err)
	}

	return entryID, nil
}

func (r *entryRepository) AttachInstances(tx *goqu.TxDatabase, entryID int, instanceIDs []int) error {
	if len(instanceIDs) == 0 {
		return nil
	}

	var records []goqu.Record
	for _, instanceID := range instanceIDs {
		records = append(records, goqu.Record{
			"entry_id":    entryID,
			"instance_id": instanceID,
		})
	}

	if _, err := tx.Insert("stock_entry_instances").Rows(records).Executor().Exec(); err != nil {
		return fmt.Errorf("failed to attach instances to entry: %w", err)
	}

	return nil
}

func (r *entryRepository) GetEntryInstanceIDs(entryID int) ([]int, error) {
	var ids []int
	err := r.Repo.GoquDBWrapper.
		From("stock_entry_instances").
		Select("instance_id").
		Where(goqu.Ex{"entry_id": entryID}).
		Order(goqu.I("instance_id").Asc()).
		Executor().
		ScanVals(&ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entry instance ids: %w", err)
	}

	return ids, nil
}

func (r *entryRepository) GetEntryInstances(entryID int) ([]models.InstanceDetail, error) {
	var details = []models.InstanceDetail{}

	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("ii.id").As("id"),
			goqu.I("ii.instance_code").As("instance_code"),
			goqu.I("ii.condition").As("condition"),
			goqu.I("ii.current_status").As("current_status"),
			goqu.I("l.name").As("current_location_name"),
		).
		From(goqu.T("stock_entry_instances").As("sei")).
		Join(
			goqu.T("item_instances").As("ii"),
			goqu.On(goqu.Ex{"sei.instance_id": goqu.I("ii.id")}),
		).
		LeftJoin(
			goqu.T("locations").As("l"),
			goqu.On(goqu.Ex{"ii.current_location_id": goqu.I("l.id")}),
		).
		Where(goqu.Ex{"sei.entry_id": entryID}).
		Order(goqu.I("ii.instance_code").Asc())

	if err := query.Executor().ScanStructs(&details); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return details, nil
}

func (r *entryRepository) UpdateEntryStatus(tx *goqu.TxDatabase, entryID int, status metadata.EntryStatus) error {
	_, err := tx.Update("stock_entries").
		Set(goqu.Record{"status": status.String()}).
		Where(goqu.Ex{"id": entryID}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to update entry %d status: %w", entryID, err)
	}

	return nil
}

func (r *entryRepository) StampActualReturnDate(tx *goqu.TxDatabase, entryIDs []int, date string) error {
	if len(entryIDs) == 0 {
		return nil
	}

	_, err := tx.Update("stock_entries").
		Set(goqu.Record{"actual_return_date": date}).
		Where(
			goqu.C("id").In(entryIDs),
			goqu.C("actual_return_date").IsNull(),
		).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to stamp actual return date: %w", err)
	}

	return nil
}

// FindOpenTemporaryIssues resolves which not-yet-returned temporary issues
// cover the given instances, so a collecting receipt can close them out.
func (r *entryRepository) FindOpenTemporaryIssues(tx *goqu.TxDatabase, instanceIDs []int) ([]int, error) {
	if len(instanceIDs) == 0 {
		return nil, nil
	}

	var entryIDs []int
	err := tx.From(goqu.T("stock_entries").As("e")).
		Join(
			goqu.T("stock_entry_instances").As("sei"),
			goqu.On(goqu.Ex{"e.id": goqu.I("sei.entry_id")}),
		).
		Select(goqu.DISTINCT("e.id")).
		Where(
			goqu.I("e.entry_type").Eq(metadata.EntryTypeIssue.String()),
			goqu.I("e.is_temporary").IsTrue(),
			goqu.I("e.actual_return_date").IsNull(),
			goqu.I("sei.instance_id").In(instanceIDs),
		).
		Executor().
		ScanVals(&entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find covering temporary issues: %w", err)
	}

	return entryIDs, nil
}

func (r *entryRepository) GetDashboardStats() (*models.DashboardStats, error) {
	stats := models.DashboardStats{ByType: []models.EntryTypeCount{}}

	countWhere := func(expressions ...goqu.Expression) (int, error) {
		var count int
		query := r.Repo.GoquDBWrapper.From("stock_entries").Select(goqu.COUNT("id"))
		if len(expressions) > 0 {
			query = query.Where(expressions...)
		}
		if _, err := query.Executor().ScanVal(&count); err != nil {
			return 0, fmt.Errorf("failed to count stock entries: %w", err)
		}
		return count, nil
	}

	var err error
	if stats.TotalEntries, err = countWhere(); err != nil {
		return nil, err
	}

	if stats.PendingAcknowledgment, err = countWhere(
		goqu.C("status").Eq(metadata.EntryStatusPendingAck.String()),
	); err != nil {
		return nil, err
	}

	if stats.CompletedToday, err = countWhere(
		goqu.C("status").Eq(metadata.EntryStatusCompleted.String()),
		goqu.L("entry_date::date = CURRENT_DATE"),
	); err != nil {
		return nil, err
	}

	if stats.OverdueTemporaryIssues, err = countWhere(
		goqu.C("entry_type").Eq(metadata.EntryTypeIssue.String()),
		goqu.C("is_temporary").IsTrue(),
		goqu.C("actual_return_date").IsNull(),
		goqu.L("expected_return_date < CURRENT_DATE"),
	); err != nil {
		return nil, err
	}

	byTypeQuery := r.Repo.GoquDBWrapper.
		From("stock_entries").
		Select(
			goqu.C("entry_type"),
			goqu.COUNT("id").As("count"),
		).
		GroupBy("entry_type").
		Order(goqu.C("entry_type").Asc())

	if err := byTypeQuery.Executor().ScanStructs(&stats.ByType); err != nil {
		return nil, fmt.Errorf("failed to group entries by type: %w", err)
	}

	return &stats, nil
}
