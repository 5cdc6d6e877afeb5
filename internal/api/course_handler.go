package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/classtrack/classtrack-api/internal/api/shared"
	"github.com/classtrack/classtrack-api/internal/domain"
	"github.com/classtrack/classtrack-api/internal/store"
)

// CourseHandler handles course-related API requests.
type CourseHandler struct {
	courseStore store.CourseStore
	validator   *validator.Validate
}

// NewCourseHandler creates a new CourseHandler with the given dependencies.
func NewCourseHandler(courseStore store.CourseStore) *CourseHandler {
	return &CourseHandler{
		courseStore: courseStore,
		validator:   newValidator(),
	}
}

// List handles GET /api/courses.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseStore.List(r.Context())
	if err != nil {
		slog.Error("failed to list courses", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list courses")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, courses)
}

// Get handles GET /api/courses/{id}.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.courseStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				fmt.Sprintf("Course with id %s is not found!", chi.URLParam(r, "id")))
			return
		}
		slog.Error("failed to get course", "error", err, "course_id", id.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to get course")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, course)
}

// Create handles POST /api/courses.
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCourseRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, firstValidationMessage(err))
		return
	}

	course, err := domain.NewCourse(req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.courseStore.Create(r.Context(), course); err != nil {
		slog.Error("failed to create course", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create course")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, course)
}

// Update handles PUT /api/courses/{id}.
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateCourseRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, firstValidationMessage(err))
		return
	}

	course, err := h.courseStore.Update(r.Context(), id, store.CourseUpdate{Name: &req.Name})
	if err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				fmt.Sprintf("Course with id %s is not found!", chi.URLParam(r, "id")))
			return
		}
		slog.Error("failed to update course", "error", err, "course_id", id.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update course")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, course)
}

// Delete handles DELETE /api/courses/{id}.
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	course, err := h.courseStore.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound,
				fmt.Sprintf("Course with id %s is not found!", chi.URLParam(r, "id")))
			return
		}
		slog.Error("failed to delete course", "error", err, "course_id", id.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete course")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, course)
}
