package locinventory

import (
	"fmt"

	"stockroom/internal/repository"
	"stockroom/pkg/metadata"
	"stockroom/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type InventoryRepository struct {
	Repo *repository.Repository
}

func NewRepository(r *repository.Repository) *InventoryRepository {
	return &InventoryRepository{Repo: r}
}

func (r *InventoryRepository) GetSummary(conditions repository.QueryBuilder) (*[]models.LocationInventory, error) {
	var summary = []models.LocationInventory{}

	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("li.location_id").As("location_id"),
			goqu.I("l.name").As("location_name"),
			goqu.I("li.item_id").As("item_id"),
			goqu.I("i.name").As("item_name"),
			goqu.I("i.code").As("item_code"),
			goqu.I("li.total_quantity").As("total_quantity"),
			goqu.I("li.available_quantity").As("available_quantity"),
			goqu.I("li.in_transit_quantity").As("in_transit_quantity"),
			goqu.I("li.in_use_quantity").As("in_use_quantity"),
			goqu.I("li.temporary_issued_quantity").As("temporary_issued_quantity"),
		).
		From(goqu.T("location_inventory").As("li")).
		Join(
			goqu.T("locations").As("l"),
			goqu.On(goqu.Ex{"li.location_id": goqu.I("l.id")}),
		).
		Join(
			goqu.T("items").As("i"),
			goqu.On(goqu.Ex{"li.item_id": goqu.I("i.id")}),
		)

	if conditions.HasConditions() {
		aliases := map[string]string{
			"location": "li.location_id",
			"item":     "li.item_id",
		}
		query = query.Where(conditions.BuildConditions(aliases))
	}

	query = query.Order(goqu.I("l.name").Asc(), goqu.I("i.name").Asc())

	if err := query.Executor().ScanStructs(&summary); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return &summary, nil
}

// RefreshLocation rebuilds the per-item counters of one location from live
// instance rows. Stale counter rows for items no longer present are removed.
func (r *InventoryRepository) RefreshLocation(locationID int) error {
	return repository.WithTransaction(r.Repo.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if _, err := tx.Delete("location_inventory").
			Where(goqu.Ex{"location_id": locationID}).
			Executor().
			Exec(); err != nil {
			return fmt.Errorf("failed to clear location inventory: %w", err)
		}

		countStatus := func(status metadata.InstanceStatus) string {
			return fmt.Sprintf("COUNT(*) FILTER (WHERE current_status = '%s')", status)
		}

		insert := fmt.Sprintf(`
			INSERT INTO location_inventory
				(location_id, item_id, total_quantity, available_quantity,
				 in_transit_quantity, in_use_quantity, temporary_issued_quantity)
			SELECT current_location_id, item_id,
				COUNT(*) FILTER (WHERE current_status NOT IN ('DISPOSED', 'LOST', 'CONDEMNED')),
				%s, %s, %s, %s
			FROM item_instances
			WHERE current_location_id = $1
			GROUP BY current_location_id, item_id`,
			countStatus(metadata.StatusInStore),
			countStatus(metadata.StatusInTransit),
			countStatus(metadata.StatusInUse),
			countStatus(metadata.StatusTemporaryIssued),
		)

		if _, err := tx.Exec(insert, locationID); err != nil {
			return fmt.Errorf("failed to rebuild location inventory: %w", err)
		}

		return nil
	})
}
