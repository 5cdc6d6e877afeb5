package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/classtrack/classtrack-api/internal/domain"
	"github.com/classtrack/classtrack-api/internal/mocks"
	"github.com/classtrack/classtrack-api/internal/store"
)

// newCourseRouter mounts the handler the way the server does so URL
// parameters resolve through chi.
func newCourseRouter(h *CourseHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/courses", h.List)
	r.Post("/api/courses", h.Create)
	r.Get("/api/courses/{id}", h.Get)
	r.Put("/api/courses/{id}", h.Update)
	r.Delete("/api/courses/{id}", h.Delete)
	return r
}

func testCourse(name string) *domain.Course {
	return &domain.Course{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestCourseHandler_List(t *testing.T) {
	t.Parallel()

	courses := []domain.Course{*testCourse("Algebra"), *testCourse("Biology")}
	courseStore := &mocks.MockCourseStore{Courses: courses}
	router := newCourseRouter(NewCourseHandler(courseStore))

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var got []domain.Course
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "Algebra", got[0].Name)
}

func TestCourseHandler_Get(t *testing.T) {
	t.Parallel()

	course := testCourse("Chemistry")
	absentID := primitive.NewObjectID().Hex()

	tests := []struct {
		name           string
		path           string
		storeCourse    *domain.Course
		storeErr       error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "existing course",
			path:           "/api/courses/" + course.ID.Hex(),
			storeCourse:    course,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "well-formed id with no record",
			path:           "/api/courses/" + absentID,
			storeErr:       store.ErrCourseNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Course with id " + absentID + " is not found!",
		},
		{
			name:           "malformed id",
			path:           "/api/courses/not-a-valid-id",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "id must be a valid identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			courseStore := &mocks.MockCourseStore{Course: tt.storeCourse, Err: tt.storeErr}
			router := newCourseRouter(NewCourseHandler(courseStore))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.expectedError != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
			}
			if tt.expectedStatus == http.StatusBadRequest {
				// A format failure never reaches the store
				assert.Equal(t, 0, courseStore.CallCount())
			}
		})
	}
}

func TestCourseHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
		expectCreate   bool
	}{
		{
			name:           "valid course",
			body:           `{"name":"Physics"}`,
			expectedStatus: http.StatusCreated,
			expectCreate:   true,
		},
		{
			name:           "missing name",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "name is required",
		},
		{
			name:           "unknown extra fields are ignored",
			body:           `{"name":"Physics","instructor":"unknown"}`,
			expectedStatus: http.StatusCreated,
			expectCreate:   true,
		},
		{
			name:           "malformed json",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			courseStore := &mocks.MockCourseStore{}
			router := newCourseRouter(NewCourseHandler(courseStore))

			req := httptest.NewRequest(
				http.MethodPost,
				"/api/courses",
				bytes.NewBufferString(tt.body),
			)
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.expectedError != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
			}
			if tt.expectCreate {
				assert.Equal(t, 1, courseStore.CreateCalls)
			} else {
				assert.Equal(t, 0, courseStore.CallCount())
			}
		})
	}
}

func TestCourseHandler_Update(t *testing.T) {
	t.Parallel()

	course := testCourse("Geometry")

	t.Run("updates and returns the stored record", func(t *testing.T) {
		t.Parallel()

		updated := *course
		updated.Name = "Advanced Geometry"
		courseStore := &mocks.MockCourseStore{
			UpdateFn: func(
				ctx context.Context,
				id primitive.ObjectID,
				update store.CourseUpdate,
			) (*domain.Course, error) {
				require.NotNil(t, update.Name)
				assert.Equal(t, "Advanced Geometry", *update.Name)
				assert.Equal(t, course.ID, id)
				return &updated, nil
			},
		}
		router := newCourseRouter(NewCourseHandler(courseStore))

		req := httptest.NewRequest(
			http.MethodPut,
			"/api/courses/"+course.ID.Hex(),
			bytes.NewBufferString(`{"name":"Advanced Geometry"}`),
		)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var got domain.Course
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
		assert.Equal(t, "Advanced Geometry", got.Name)
	})

	t.Run("missing record reports not found", func(t *testing.T) {
		t.Parallel()

		absentID := primitive.NewObjectID().Hex()
		courseStore := &mocks.MockCourseStore{Err: store.ErrCourseNotFound}
		router := newCourseRouter(NewCourseHandler(courseStore))

		req := httptest.NewRequest(
			http.MethodPut,
			"/api/courses/"+absentID,
			bytes.NewBufferString(`{"name":"Anything"}`),
		)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Course with id "+absentID+" is not found!", resp["error"])
	})

	t.Run("missing name fails validation before the store", func(t *testing.T) {
		t.Parallel()

		courseStore := &mocks.MockCourseStore{}
		router := newCourseRouter(NewCourseHandler(courseStore))

		req := httptest.NewRequest(
			http.MethodPut,
			"/api/courses/"+course.ID.Hex(),
			bytes.NewBufferString(`{}`),
		)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, 0, courseStore.CallCount())
	})
}

func TestCourseHandler_Delete(t *testing.T) {
	t.Parallel()

	course := testCourse("History")

	t.Run("returns the deleted record", func(t *testing.T) {
		t.Parallel()

		courseStore := &mocks.MockCourseStore{Course: course}
		router := newCourseRouter(NewCourseHandler(courseStore))

		req := httptest.NewRequest(http.MethodDelete, "/api/courses/"+course.ID.Hex(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var got domain.Course
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
		assert.Equal(t, course.ID, got.ID)
		assert.Equal(t, 1, courseStore.DeleteCalls)
	})

	t.Run("missing record reports not found", func(t *testing.T) {
		t.Parallel()

		absentID := primitive.NewObjectID().Hex()
		courseStore := &mocks.MockCourseStore{Err: store.ErrCourseNotFound}
		router := newCourseRouter(NewCourseHandler(courseStore))

		req := httptest.NewRequest(http.MethodDelete, "/api/courses/"+absentID, nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Course with id "+absentID+" is not found!", resp["error"])
	})
}
