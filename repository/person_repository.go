package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"persondir/models"
)

// PersonRepository handles database operations for Person entities
type PersonRepository struct {
	DB *gorm.DB
}

// NewPersonRepository creates a new instance of PersonRepository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{DB: db}
}

// Create inserts a new person record. The database assigns the id; a
// duplicate name violates the unique index and is reported as
// models.ErrDuplicateName.
func (r *PersonRepository) Create(ctx context.Context, person *models.Person) error {
	now := time.Now()
	if person.CreatedOn.IsZero() {
		person.CreatedOn = now
	}
	if person.UpdatedOn.IsZero() {
		person.UpdatedOn = now
	}

	err := r.DB.WithContext(ctx).Create(person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("person %s: %w", person.Name, models.ErrDuplicateName)
		}
		return fmt.Errorf("failed to create person %s: %w", person.Name, err)
	}
	return nil
}

// GetByName retrieves the first person (lowest id) whose name matches
// case-insensitively, preloading their posts.
func (r *PersonRepository) GetByName(ctx context.Context, name string) (*models.Person, error) {
	var person models.Person
	err := r.DB.WithContext(ctx).
		Preload("Posts").
		Where("name = ? COLLATE NOCASE", name).
		Order("id ASC").
		First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person by name %q: %w", name, err)
	}
	return &person, nil
}

// List retrieves persons matching the filter. The query keeps the same
// contract as the in-memory directory: filter, truncate to limit in
// insertion (id) order, then stable-sort the truncated subset in process.
func (r *PersonRepository) List(ctx context.Context, filter string, limit int, orderBy models.OrderBy) ([]models.Person, error) {
	query := r.DB.WithContext(ctx).Model(&models.Person{})
	if filter != "" {
		// sqlite LIKE is case-insensitive for ASCII
		query = query.Where("name LIKE ?", "%"+filter+"%")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	people := []models.Person{}
	if err := query.Order("id ASC").Find(&people).Error; err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	models.SortPersons(people, orderBy)
	return people, nil
}
