package items

import (
	"fmt"
	"stockroom/internal/repository"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type ItemRepository struct {
	Repository *repository.Repository
}

func NewItemRepository(r *repository.Repository) *ItemRepository {
	return &ItemRepository{Repository: r}
}

func (r *ItemRepository) itemQuery() *goqu.SelectDataset {
	return r.Repository.GoquDBWrapper.
		Select(
			goqu.I("i.id").As("id"),
			goqu.I("i.name").As("name"),
			goqu.I("i.code").As("code"),
			goqu.I("i.category_id").As("category_id"),
			goqu.I("c.name").As("category_name"),
			goqu.I("i.default_store_id").As("default_store_id"),
			goqu.I("l.name").As("default_store_name"),
			goqu.I("i.unit").As("unit"),
			goqu.I("i.reorder_level").As("reorder_level"),
			goqu.I("i.reorder_quantity").As("reorder_quantity"),
			goqu.I("i.total_quantity").As("total_quantity"),
		).
		From(goqu.T("items").As("i")).
		LeftJoin(
			goqu.T("categories").As("c"),
			goqu.On(goqu.Ex{"i.category_id": goqu.I("c.id")}),
		).
		LeftJoin(
			goqu.T("locations").As("l"),
			goqu.On(goqu.Ex{"i.default_store_id": goqu.I("l.id")}),
		)
}

func (r *ItemRepository) GetItems() (*[]models.Item, error) {
	var items = []models.Item{}
	query := r.itemQuery().Order(goqu.I("i.name").Asc())
	if err := query.Executor().ScanStructs(&items); err != nil {
		return nil, fmt.Errorf("unable to execute SQL: %w", err)
	}

	return &items, nil
}

func (r *ItemRepository) GetItem(itemID int) (*models.Item, error) {
	var item models.Item
	found, err := r.itemQuery().
		Where(goqu.Ex{"i.id": itemID}).
		Executor().
		ScanStruct(&item)
	if err != nil {
		return nil, fmt.Errorf("unable to execute SQL: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("item", fmt.Sprint(itemID))
	}

	return &item, nil
}

func (r *ItemRepository) PersistItem(req models.ItemRequest) (*models.Item, error) {
	query := r.Repository.GoquDBWrapper.Insert("items").
		Rows(goqu.Record{
			"name":             req.Name,
			"code":             req.Code,
			"category_id":      req.Category,
			"default_store_id": req.DefaultStore,
			"unit":             req.Unit,
			"reorder_level":    req.ReorderLevel,
			"reorder_quantity": req.ReorderQuantity,
		}).
		Returning("id")

	var itemID int
	if _, err := query.Executor().ScanVal(&itemID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, custom_error.WrapDBError("Duplicate code for item", string(pqErr.Code))
		}
		return nil, fmt.Errorf("failed to insert item record: %w", err)
	}

	return r.GetItem(itemID)
}

func (r *ItemRepository) UpdateItem(itemID int, req models.ItemRequest) (*models.Item, error) {
	result, err := r.Repository.GoquDBWrapper.
		Update("items").
		Set(goqu.Record{
			"name":             req.Name,
			"code":             req.Code,
			"category_id":      req.Category,
			"default_store_id": req.DefaultStore,
			"unit":             req.Unit,
			"reorder_level":    req.ReorderLevel,
			"reorder_quantity": req.ReorderQuantity,
		}).
		Where(goqu.Ex{"id": itemID}).
		Executor().
		Exec()
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, custom_error.NewNotFoundError("item", fmt.Sprint(itemID))
	}

	return r.GetItem(itemID)
}

// RecomputeTotalQuantity refreshes the denormalized items.total_quantity
// counter from live instance rows. Disposed, lost and condemned instances no
// longer count toward the total.
func (r *ItemRepository) RecomputeTotalQuantity(tx *goqu.TxDatabase, itemID int) error {
	_, err := tx.Update("items").
		Set(goqu.Record{
			"total_quantity": goqu.L(
				"(SELECT COUNT(*) FROM item_instances WHERE item_id = ? AND current_status NOT IN ('DISPOSED', 'LOST', 'CONDEMNED'))",
				itemID,
			),
		}).
		Where(goqu.Ex{"id": itemID}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to recompute item total quantity: %w", err)
	}

	return nil
}
