package instances

import (
	"fmt"
	"stockroom/internal/repository"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/metadata"
	"stockroom/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type InstanceRepository struct {
	Repo *repository.Repository
}

func NewRepository(r *repository.Repository) *InstanceRepository {
	return &InstanceRepository{Repo: r}
}

func (r *InstanceRepository) instanceQuery() *goqu.SelectDataset {
	return r.Repo.GoquDBWrapper.
		Select(
			goqu.I("ii.id").As("id"),
			goqu.I("ii.instance_code").As("instance_code"),
			goqu.I("ii.item_id").As("item_id"),
			goqu.I("it.name").As("item_name"),
			goqu.I("ii.source_location_id").As("source_location_id"),
			goqu.I("ii.current_location_id").As("current_location_id"),
			goqu.I("l.name").As("current_location_name"),
			goqu.I("ii.current_status").As("current_status"),
			goqu.I("ii.condition").As("condition"),
		).
		From(goqu.T("item_instances").As("ii")).
		LeftJoin(
			goqu.T("items").As("it"),
			goqu.On(goqu.Ex{"ii.item_id": goqu.I("it.id")}),
		).
		LeftJoin(
			goqu.T("locations").As("l"),
			goqu.On(goqu.Ex{"ii.current_location_id": goqu.I("l.id")}),
		)
}

func (r *InstanceRepository) GetInstancesBy(conditions repository.QueryBuilder) (*[]models.ItemInstance, error) {
	var result = []models.ItemInstance{}

	query := r.instanceQuery()
	if conditions.HasConditions() {
		aliases := map[string]string{
			"location": "ii.current_location_id",
			"item":     "ii.item_id",
			"status":   "ii.current_status",
		}
		query = query.Where(conditions.BuildConditions(aliases))
	}

	if err := query.Order(goqu.I("ii.instance_code").Asc()).Executor().ScanStructs(&result); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return &result, nil
}

func (r *InstanceRepository) GetInstance(instanceID int) (*models.ItemInstance, error) {
	var instance models.ItemInstance
	found, err := r.instanceQuery().
		Where(goqu.Ex{"ii.id": instanceID}).
		Executor().
		ScanStruct(&instance)
	if err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("instance", fmt.Sprint(instanceID))
	}

	return &instance, nil
}

func (r *InstanceRepository) FindInstanceByCode(instanceCode string) (*models.ItemInstance, error) {
	var instance models.ItemInstance
	found, err := r.instanceQuery().
		Where(goqu.Ex{"ii.instance_code": instanceCode}).
		Executor().
		ScanStruct(&instance)
	if err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("instance", instanceCode)
	}

	return &instance, nil
}

// CountInstancesAt verifies how many of the given instances currently sit in
// the location with the expected status. Used to validate entry requests
// before anything moves.
func (r *InstanceRepository) CountInstancesAt(instanceIDs []int, locationID int, status metadata.InstanceStatus) (int, error) {
	var count int
	_, err := r.Repo.GoquDBWrapper.
		From("item_instances").
		Select(goqu.COUNT("id")).
		Where(goqu.Ex{
			"id":                  instanceIDs,
			"current_location_id": locationID,
			"current_status":      status.String(),
		}).
		Executor().
		ScanVal(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count instances in location: %w", err)
	}

	return count, nil
}

// MoveInstances updates location and status for a batch of instances and
// appends one movement row per instance in the same transaction.
func (r *InstanceRepository) MoveInstances(tx *goqu.TxDatabase, instanceIDs []int, fromLocationID *int, toLocationID int, status metadata.InstanceStatus, remarks string) error {
	if len(instanceIDs) == 0 {
		return nil
	}

	query := tx.From("item_instances").Update().
		Set(goqu.Record{
			"current_location_id": toLocationID,
			"current_status":      status.String(),
		}).
		Where(goqu.C("id").In(instanceIDs))

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to move instances: %w", err)
	}

	return r.AppendMovements(tx, instanceIDs, fromLocationID, &toLocationID, status, remarks)
}

func (r *InstanceRepository) AppendMovements(tx *goqu.TxDatabase, instanceIDs []int, fromLocationID *int, toLocationID *int, status metadata.InstanceStatus, remarks string) error {
	var records []goqu.Record
	for _, instanceID := range instanceIDs {
		records = append(records, goqu.Record{
			"instance_id":      instanceID,
			"from_location_id": fromLocationID,
			"to_location_id":   toLocationID,
			"status":           status.String(),
			"remarks":          remarks,
		})
	}

	if _, err := tx.Insert("instance_movements").Rows(records).Executor().Exec(); err != nil {
		return fmt.Errorf("failed to append movement records: %w", err)
	}

	return nil
}

func (r *InstanceRepository) GetMovementHistory(instanceID int) ([]models.InstanceMovement, error) {
	var movements = []models.InstanceMovement{}

	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("m.id").As("id"),
			goqu.I("m.instance_id").As("instance_id"),
			goqu.I("m.from_location_id").As("from_location_id"),
			goqu.I("l1.name").As("from_location_name"),
			goqu.I("m.to_location_id").As("to_location_id"),
			goqu.I("l2.name").As("to_location_name"),
			goqu.I("m.status").As("status"),
			goqu.I("m.created_at").As("created_at"),
			goqu.I("m.remarks").As("remarks"),
		).
		From(goqu.T("instance_movements").As("m")).
		LeftJoin(
			goqu.T("locations").As("l1"),
			goqu.On(goqu.Ex{"m.from_location_id": goqu.I("l1.id")}),
		).
		LeftJoin(
			goqu.T("locations").As("l2"),
			goqu.On(goqu.Ex{"m.to_location_id": goqu.I("l2.id")}),
		).
		Where(goqu.Ex{"m.instance_id": instanceID}).
		Order(goqu.I("m.created_at").Desc())

	if err := query.Executor().ScanStructs(&movements); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return movements, nil
}

// CreateInstances materializes count new instances of an item at a location,
// stamping each with a generated instance code and a creation movement row.
func (r *InstanceRepository) CreateInstances(tx *goqu.TxDatabase, itemID int, itemCode string, locationID int, count int, condition metadata.Condition, remarks string) ([]int, error) {
	created := make([]int, 0, count)

	for i := 0; i < count; i++ {
		var instanceID int
		insert := tx.Insert("item_instances").
			Rows(goqu.Record{
				"instance_code":       "", // updated below, the code embeds the generated id
				"item_id":             itemID,
				"source_location_id":  locationID,
				"current_location_id": locationID,
				"current_status":      metadata.StatusInStore.String(),
				"condition":           condition.String(),
			}).
			Returning("id")

		if _, err := insert.Executor().ScanVal(&instanceID); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return nil, custom_error.WrapDBError("Duplicate instance code", string(pqErr.Code))
			}
			return nil, fmt.Errorf("failed to insert instance record: %w", err)
		}

		code := metadata.NewInstanceCode(itemCode, instanceID)
		if _, err := tx.Update("item_instances").
			Set(goqu.Record{"instance_code": code.Generate()}).
			Where(goqu.Ex{"id": instanceID}).
			Executor().
			Exec(); err != nil {
			return nil, fmt.Errorf("failed to update instance code: %w", err)
		}

		created = append(created, instanceID)
	}

	if err := r.AppendMovements(tx, created, nil, &locationID, metadata.StatusInStore, remarks); err != nil {
		return nil, err
	}

	return created, nil
}
