package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DecodeJSON decodes the request body into the given value. Unknown extra
// fields on the payload are ignored, not rejected.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// getPathObjectID extracts an object identifier from the URL path. Format
// validation happens here, before any store call; whether the record exists
// is the store's answer, reported separately as not found.
func getPathObjectID(r *http.Request, paramName string) (primitive.ObjectID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return primitive.NilObjectID, fmt.Errorf("%s is required", paramName)
	}

	id, err := primitive.ObjectIDFromHex(pathParam)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s must be a valid identifier", paramName)
	}

	return id, nil
}
