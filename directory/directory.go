package directory

import (
	"context"
	"strings"
	"sync"
	"time"

	"persondir/models"
)

// Directory is the in-memory store: an insertion-ordered person collection
// plus the posts written by its members. All operations are guarded by a
// single RWMutex since the HTTP host serves requests concurrently.
type Directory struct {
	mu      sync.RWMutex
	persons []models.Person
	posts   []models.Post
}

// New returns an empty Directory.
func New() *Directory {
	return &Directory{}
}

// List returns the persons whose name contains filter (case-insensitive,
// empty filter matches all), truncated to the first limit matches in
// insertion order, then stably sorted by the chosen key. Truncation happens
// before sorting, so a small limit can exclude records that would sort
// earlier but were appended later. A non-positive limit disables truncation.
func (d *Directory) List(_ context.Context, filter string, limit int, orderBy models.OrderBy) ([]models.Person, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	needle := strings.ToLower(filter)
	matched := []models.Person{}
	for _, p := range d.persons {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		matched = append(matched, p)
		if limit > 0 && len(matched) == limit {
			break
		}
	}

	models.SortPersons(matched, orderBy)
	return matched, nil
}

// GetByName returns the first person, in insertion order, whose name equals
// name case-insensitively, or ErrPersonNotFound.
func (d *Directory) GetByName(_ context.Context, name string) (*models.Person, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, p := range d.persons {
		if strings.EqualFold(p.Name, name) {
			found := p
			return &found, nil
		}
	}
	return nil, models.ErrPersonNotFound
}

// Create appends person to the end of the directory. Names are not required
// to be unique in memory mode; duplicates are resolved by GetByName's
// first-match rule.
func (d *Directory) Create(_ context.Context, person *models.Person) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.persons = append(d.persons, *person)
	return nil
}

// ListPosts returns all posts in insertion order.
func (d *Directory) ListPosts(_ context.Context) ([]models.Post, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	posts := make([]models.Post, len(d.posts))
	copy(posts, d.posts)
	return posts, nil
}

// GetPost returns the post with the given id or ErrPostNotFound.
func (d *Directory) GetPost(_ context.Context, id int) (*models.Post, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, p := range d.posts {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, models.ErrPostNotFound
}

// CreatePost appends a new post for the named author. The author lookup is
// an exact, case-sensitive match, unlike GetByName; a missing author yields
// ErrAuthorNotFound and leaves the post collection untouched. Ids are
// assigned sequentially starting at zero.
func (d *Directory) CreatePost(_ context.Context, authorName, text string) (*models.Post, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	author := d.findAuthorLocked(authorName)
	if author == nil {
		return nil, models.ErrAuthorNotFound
	}

	post := models.Post{
		ID:        len(d.posts),
		Text:      text,
		Author:    author,
		CreatedOn: time.Now(),
	}
	d.posts = append(d.posts, post)
	return &post, nil
}

// findAuthorLocked returns a snapshot of the first person whose name equals
// authorName exactly. Callers must hold d.mu.
func (d *Directory) findAuthorLocked(authorName string) *models.Person {
	for _, p := range d.persons {
		if p.Name == authorName {
			author := p
			return &author
		}
	}
	return nil
}
