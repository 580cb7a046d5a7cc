package locations

import (
	"fmt"
	"stockroom/internal/repository"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

var locationColumns = []interface{}{
	"id", "name", "code", "location_type", "is_store",
	"parent_id", "contact_person", "contact_phone", "is_active",
}

type LocationRepository struct {
	Repository *repository.Repository
}

func NewLocationRepository(r *repository.Repository) *LocationRepository {
	return &LocationRepository{Repository: r}
}

func (r *LocationRepository) GetLocations() (*[]models.Location, error) {
	var locations = []models.Location{}
	query := r.Repository.GoquDBWrapper.
		Select(locationColumns...).
		From("locations").
		Order(goqu.I("name").Asc())
	if err := query.Executor().ScanStructs(&locations); err != nil {
		return nil, fmt.Errorf("unable to execute SQL: %w", err)
	}

	return &locations, nil
}

func (r *LocationRepository) GetLocation(locationID int) (*models.Location, error) {
	var location models.Location
	found, err := r.Repository.GoquDBWrapper.
		Select(locationColumns...).
		From("locations").
		Where(goqu.Ex{"id": locationID}).
		Executor().
		ScanStruct(&location)
	if err != nil {
		return nil, fmt.Errorf("unable to execute SQL: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("location", fmt.Sprint(locationID))
	}

	return &location, nil
}

func (r *LocationRepository) PersistLocation(req models.LocationRequest) (*models.Location, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	query := r.Repository.GoquDBWrapper.Insert("locations").
		Rows(goqu.Record{
			"name":           req.Name,
			"code":           req.Code,
			"location_type":  req.LocationType,
			"is_store":       req.IsStore,
			"parent_id":      req.Parent,
			"contact_person": req.ContactPerson,
			"contact_phone":  req.ContactPhone,
			"is_active":      active,
		}).
		Returning("id")

	var locationID int
	if _, err := query.Executor().ScanVal(&locationID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, custom_error.WrapDBError("Duplicate code for location", string(pqErr.Code))
		}
		return nil, fmt.Errorf("failed to insert location record: %w", err)
	}

	return r.GetLocation(locationID)
}

func (r *LocationRepository) UpdateLocation(locationID int, req models.LocationRequest) (*models.Location, error) {
	updates := goqu.Record{
		"name":           req.Name,
		"code":           req.Code,
		"location_type":  req.LocationType,
		"is_store":       req.IsStore,
		"parent_id":      req.Parent,
		"contact_person": req.ContactPerson,
		"contact_phone":  req.ContactPhone,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	result, err := r.Repository.GoquDBWrapper.
		Update("locations").
		Set(updates).
		Where(goqu.Ex{"id": locationID}).
		Executor().
		Exec()
	if err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, custom_error.NewNotFoundError("location", fmt.Sprint(locationID))
	}

	return r.GetLocation(locationID)
}
