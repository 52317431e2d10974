package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"persondir/models"
	"persondir/repository"
)

type PostHandler struct {
	Store repository.PostStore
}

// ListPosts handles GET /posts.
func (ph *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := ph.Store.ListPosts(r.Context())
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, CodeInternalError, "failed to retrieve posts")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// GetPost handles GET /posts/{id}.
func (ph *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 0 {
		WriteAPIError(w, http.StatusBadRequest, CodeValidationFailed, "post id must be a non-negative integer")
		return
	}

	post, err := ph.Store.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			WriteAPIError(w, http.StatusNotFound, CodeNotFound, "post not found")
		} else {
			log.Printf("Error getting post %d: %v", id, err)
			WriteAPIError(w, http.StatusInternalServerError, CodeInternalError, "failed to retrieve post")
		}
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// CreatePost handles POST /posts. The author must already exist; the lookup
// is case-sensitive.
func (ph *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeValidationFailed, "invalid request body: "+err.Error())
		return
	}
	if vErr := ValidatePostInput(req); vErr != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeValidationFailed, vErr.Error())
		return
	}

	post, err := ph.Store.CreatePost(r.Context(), req.AuthorName, req.Text)
	if err != nil {
		if errors.Is(err, models.ErrAuthorNotFound) {
			WriteAPIError(w, http.StatusNotFound, CodeNotFound, "author not found")
		} else {
			log.Printf("Error creating post for author %q: %v", req.AuthorName, err)
			WriteAPIError(w, http.StatusInternalServerError, CodeInternalError, "failed to create post")
		}
		return
	}

	writeJSON(w, http.StatusCreated, post)
}
