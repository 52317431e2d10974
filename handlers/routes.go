package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Index reports service metadata and doubles as a liveness probe.
func Index(storageMode string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"service": "person-directory",
			"status":  "ok",
			"storage": storageMode,
		})
	}
}

// RegisterRoutes mounts the API route table on r. The table is evaluated
// first-match in the order listed here.
func RegisterRoutes(r chi.Router, persons *PersonHandler, posts *PostHandler, storageMode string) {
	r.Get("/", Index(storageMode))

	r.Route("/persons", func(r chi.Router) {
		r.Get("/", persons.ListPersons)
		r.Post("/", persons.CreatePerson)
		r.Get("/{name}", persons.GetPerson)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", posts.ListPosts)
		r.Post("/", posts.CreatePost)
		r.Get("/{id}", posts.GetPost)
	})
}
