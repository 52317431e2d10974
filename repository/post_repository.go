package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"persondir/models"
)

// PostRepository handles database operations for Post entities
type PostRepository struct {
	DB *gorm.DB
}

// NewPostRepository creates a new instance of PostRepository
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

// ListPosts retrieves all posts in insertion (id) order with their authors.
func (r *PostRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	err := r.DB.WithContext(ctx).Preload("Author").Order("id ASC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetPost retrieves a post by its id with its author, or
// models.ErrPostNotFound.
func (r *PostRepository) GetPost(ctx context.Context, id int) (*models.Post, error) {
	var post models.Post
	err := r.DB.WithContext(ctx).Preload("Author").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by id %d: %w", id, err)
	}
	return &post, nil
}

// CreatePost inserts a post for the named author. The author lookup is an
// exact, case-sensitive match, unlike PersonRepository.GetByName; a missing
// author yields models.ErrAuthorNotFound and nothing is written.
func (r *PostRepository) CreatePost(ctx context.Context, authorName, text string) (*models.Post, error) {
	var author models.Person
	err := r.DB.WithContext(ctx).Where("name = ?", authorName).First(&author).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("author %s: %w", authorName, models.ErrAuthorNotFound)
		}
		return nil, fmt.Errorf("failed to look up author %q: %w", authorName, err)
	}

	now := time.Now()
	post := models.Post{
		Text:      text,
		AuthorID:  author.ID,
		CreatedOn: now,
		UpdatedOn: now,
	}
	if err := r.DB.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post for author %q: %w", authorName, err)
	}

	post.Author = &author
	return &post, nil
}
