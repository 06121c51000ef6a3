package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clubform/internal/common"
)

func TestIDFromPath(t *testing.T) {
	const id = "7b0c3f1e-8c52-4d8c-9c61-2f4a9f0f5e11"
	cases := []struct {
		path string
		code common.Code
	}{
		{"/api/applications/" + id, ""},
		{"/api/applications/" + id + "/", ""},
		{"/api/applications/" + id + "/extra", common.CodeNotFound},
		{"/api/applications/nope", common.CodeValidation},
		{"/api/applications", common.CodeValidation},
	}
	for _, tc := range cases {
		got, err := idFromPath(httptest.NewRequest(http.MethodGet, tc.path, nil), 2)
		if tc.code == "" {
			if err != nil || got.String() != id {
				t.Fatalf("%s: expected %s, got %q (%v)", tc.path, id, got, err)
			}
			continue
		}
		if !common.Is(err, tc.code) {
			t.Fatalf("%s: expected %s error, got %v", tc.path, tc.code, err)
		}
	}
}
