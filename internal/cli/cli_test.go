package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"clubform/internal/domain/application"
	"clubform/internal/form"
)

func fakeServer(t *testing.T, calls *int32, received *application.Submission) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/catalog":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"clubs":            application.Clubs(),
				"domains":          application.Domains(),
				"skills_by_domain": application.SkillsByDomain(),
			})
		case r.Method == http.MethodPost && r.URL.Path == "/api/applications":
			atomic.AddInt32(calls, 1)
			if err := json.NewDecoder(r.Body).Decode(received); err != nil {
				t.Errorf("decode body: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"message":"Application received"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func run(args ...string) (string, string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestApplySubmitsForm(t *testing.T) {
	var calls int32
	var received application.Submission
	server := fakeServer(t, &calls, &received)

	out, _, err := run("apply", "--server", server.URL,
		"--name", "Asha Patil", "--phone", "9876543210", "--prn", "2201012345",
		"--email", "asha@viit.ac.in", "--club", "Debate Club", "--domain", "Commerce",
		"--skill", "Finance", "--skill", "Python")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected one submit call, got %d", calls)
	}
	if received.PRN != "22010123" || received.Club != application.ClubDebate {
		t.Fatalf("unexpected payload %+v", received)
	}
	if len(received.Skills) != 2 {
		t.Fatalf("expected both skills, got %v", received.Skills)
	}
	if !strings.Contains(out, "Application received") || !strings.Contains(out, `"Python" is not offered`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestApplyRejectsForeignEmail(t *testing.T) {
	var calls int32
	var received application.Submission
	server := fakeServer(t, &calls, &received)

	_, errOut, err := run("apply", "--server", server.URL, "--name", "Asha", "--email", "asha@gmail.com")
	if !errors.Is(err, form.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("expected no submit call, got %d", calls)
	}
	if !strings.Contains(errOut, "viit.ac.in") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestApplyRejectsUnknownClub(t *testing.T) {
	_, _, err := run("apply", "--server", "http://127.0.0.1:1", "--club", "Chess Club")
	if err == nil || !strings.Contains(err.Error(), "Chess Club") {
		t.Fatalf("expected unknown club error, got %v", err)
	}
}

func TestCatalogPrintsSkills(t *testing.T) {
	var calls int32
	var received application.Submission
	server := fakeServer(t, &calls, &received)

	out, _, err := run("catalog", "--server", server.URL)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if !strings.Contains(out, "- Coding Club") || !strings.Contains(out, "- Engineering: CAD, Circuit Design") {
		t.Fatalf("unexpected output %q", out)
	}
}
