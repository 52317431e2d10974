package repository

import (
	"context"

	"persondir/models"
)

// PersonStore defines the methods for person data operations. Implemented
// by the in-memory directory and the sqlite-backed PersonRepository.
type PersonStore interface {
	List(ctx context.Context, filter string, limit int, orderBy models.OrderBy) ([]models.Person, error)
	GetByName(ctx context.Context, name string) (*models.Person, error)
	Create(ctx context.Context, person *models.Person) error
}

// PostStore defines the methods for post data operations.
type PostStore interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int) (*models.Post, error)
	CreatePost(ctx context.Context, authorName, text string) (*models.Post, error)
}
