package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"clubform/internal/common"
)

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return common.NewValidationError("request body is required", nil)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return common.NewValidationError("request body is too large", nil)
		}
		return common.NewValidationError("invalid request body", nil)
	}
	return nil
}

// idFromPath returns the UUID at the given segment of the URL path, which
// must be the last one.
func idFromPath(r *http.Request, index int) (common.UUID, error) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if index >= len(parts) {
		return "", common.NewValidationError("invalid id", map[string]string{"id": "id is required"})
	}
	if len(parts) > index+1 {
		return "", common.NewError(common.CodeNotFound, "not found", nil)
	}
	id, err := common.ParseUUID(parts[index])
	if err != nil {
		return "", common.NewValidationError("invalid id", map[string]string{"id": "invalid uuid"})
	}
	return id, nil
}
