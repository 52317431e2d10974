package directory

import (
	"time"

	"persondir/models"
)

// Seed fills the directory with the demo dataset: seven persons and three
// posts between the first two of them. Intended for local development and
// tests; gated by SEED_DEMO_DATA in the server.
func (d *Directory) Seed() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.persons = []models.Person{
		{Name: "Judy", Age: intPtr(10)},
		{Name: "Jeremy", Age: intPtr(20)},
		{Name: "Max", Age: intPtr(30)},
		{Name: "Jonas", Age: intPtr(50)},
		{Name: "Sam", Age: intPtr(60)},
		{Name: "Ashley", Age: intPtr(70)},
		{Name: "Jack", Age: intPtr(80)},
	}

	now := time.Now()
	judy := d.persons[0]
	jeremy := d.persons[1]
	d.posts = []models.Post{
		{ID: 0, Text: "Hello how are you?", Author: &judy, CreatedOn: now.AddDate(0, 0, -10)},
		{ID: 1, Text: "Im fine", Author: &jeremy, CreatedOn: now.AddDate(0, 0, -9)},
		{ID: 2, Text: "Nice to meet you", Author: &judy, CreatedOn: now.AddDate(0, 0, -8)},
	}
}

func intPtr(v int) *int {
	return &v
}
