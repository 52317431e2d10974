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

// DefaultListLimit caps person listings when no limit query parameter is
// given.
const DefaultListLimit = 10

type PersonHandler struct {
	Store        repository.PersonStore
	DefaultLimit int
}

// ListPersons handles GET /persons?filter=&limit=&orderby=.
func (ph *PersonHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := q.Get("filter")

	limit := ph.DefaultLimit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			WriteAPIError(w, http.StatusBadRequest, CodeValidationFailed, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	orderBy, err := models.ParseOrderBy(q.Get("orderby"))
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	people, err := ph.Store.List(r.Context(), filter, limit, orderBy)
	if err != nil {
		log.Printf("Error listing persons: %v", err)
		WriteAPIError(w, http.StatusInternalServerError, CodeInternalError, "failed to retrieve persons")
		return
	}
	if people == nil {
		people = []models.Person{}
	}
	writeJSON(w, http.StatusOK, people)
}

// GetPerson handles GET /persons/{name}.
func (ph *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if vErr := ValidateName(name); vErr != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeValidationFailed, vErr.Error())
		return
	}

	person, err := ph.Store.GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, models.ErrPersonNotFound) {
			WriteAPIError(w, http.StatusNotFound, CodeNotFound, "person not found")
		} else {
			log.Printf("Error getting person %q: %v", name, err)
			WriteAPIError(w, http.StatusInternalServerError, CodeInternalError, "failed to retrieve person")
		}
		return
	}

	writeJSON(w, http.StatusOK, person)
}

// CreatePerson handles POST /persons.
func (ph *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req PersonInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeValidationFailed, "invalid request body: "+err.Error())
		return
	}
	if vErr := ValidatePersonInput(req); vErr != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeValidationFailed, vErr.Error())
		return
	}

	person := models.Person{Name: req.Name, Age: req.Age}
	if err := ph.Store.Create(r.Context(), &person); err != nil {
		if errors.Is(err, models.ErrDuplicateName) {
			WriteAPIError(w, http.StatusConflict, CodeDuplicateName, "a person with this name already exists")
		} else {
			log.Printf("Error creating person %q: %v", req.Name, err)
			WriteAPIError(w, http.StatusInternalServerError, CodeInternalError, "failed to create person")
		}
		return
	}

	writeJSON(w, http.StatusCreated, person)
}
