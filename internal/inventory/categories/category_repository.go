package categories

import (
	"fmt"
	"stockroom/internal/repository"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type CategoryRepository struct {
	Repository *repository.Repository
}

func NewCategoryRepository(r *repository.Repository) *CategoryRepository {
	return &CategoryRepository{Repository: r}
}

func (r *CategoryRepository) GetCategories() (*[]models.Category, error) {
	var categories = []models.Category{}
	query := r.Repository.GoquDBWrapper.
		Select("id", "name", "code", "parent_id", "is_active").
		From("categories").
		Order(goqu.I("name").Asc())
	if err := query.Executor().ScanStructs(&categories); err != nil {
		return nil, fmt.Errorf("unable to execute SQL: %w", err)
	}

	return &categories, nil
}

func (r *CategoryRepository) GetCategory(categoryID int) (*models.Category, error) {
	var category models.Category
	found, err := r.Repository.GoquDBWrapper.
		Select("id", "name", "code", "parent_id", "is_active").
		From("categories").
		Where(goqu.Ex{"id": categoryID}).
		Executor().
		ScanStruct(&category)
	if err != nil {
		return nil, fmt.Errorf("unable to execute SQL: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("category", fmt.Sprint(categoryID))
	}

	return &category, nil
}

func (r *CategoryRepository) PersistCategory(req models.CategoryRequest) (*models.Category, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	query := r.Repository.GoquDBWrapper.Insert("categories").
		Rows(goqu.Record{
			"name":      req.Name,
			"code":      req.Code,
			"parent_id": req.Parent,
			"is_active": active,
		}).
		Returning("id")

	var categoryID int
	if _, err := query.Executor().ScanVal(&categoryID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, custom_error.WrapDBError("Duplicate code for category", string(pqErr.Code))
		}
		return nil, fmt.Errorf("failed to insert category record: %w", err)
	}

	return r.GetCategory(categoryID)
}

func (r *CategoryRepository) UpdateCategory(categoryID int, req models.CategoryRequest) (*models.Category, error) {
	updates := goqu.Record{
		"name":      req.Name,
		"code":      req.Code,
		"parent_id": req.Parent,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	result, err := r.Repository.GoquDBWrapper.
		Update("categories").
		Set(updates).
		Where(goqu.Ex{"id": categoryID}).
		Executor().
		Exec()
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, custom_error.NewNotFoundError("category", fmt.Sprint(categoryID))
	}

	return r.GetCategory(categoryID)
}
