package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"clubform/internal/common"
	"clubform/internal/domain/application"
	"clubform/internal/repository/memory"
)

func newTestService() (*ApplicationService, *memory.ApplicationRepository) {
	repo := memory.NewApplicationRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewApplicationService(repo, "@viit.ac.in", logger), repo
}

func validSubmission() application.Submission {
	return application.Submission{
		Name:   "Asha Patil",
		Phone:  "9876543210",
		Skills: []string{"Python", "Machine Learning"},
		PRN:    "22010123",
		Email:  "asha@viit.ac.in",
		Club:   application.ClubCoding,
		Domain: application.DomainComputerScience,
	}
}

func TestSubmitStoresApplication(t *testing.T) {
	service, repo := newTestService()
	created, err := service.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.ID == "" || created.Email != "asha@viit.ac.in" || created.Club != application.ClubCoding {
		t.Fatalf("unexpected application %+v", created)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected one stored application, got %d", repo.Len())
	}
	loaded, err := service.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Name != "Asha Patil" {
		t.Fatalf("unexpected loaded application %+v", loaded)
	}
}

func TestSubmitAcceptsDuplicates(t *testing.T) {
	service, repo := newTestService()
	for i := 0; i < 2; i++ {
		if _, err := service.Submit(context.Background(), validSubmission()); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if repo.Len() != 2 {
		t.Fatalf("expected two records, got %d", repo.Len())
	}
}

func TestSubmitNormalizesInput(t *testing.T) {
	service, _ := newTestService()
	submission := validSubmission()
	submission.Name = "  Asha Patil "
	submission.Skills = []string{"Python", " Python", "Java"}

	created, err := service.Submit(context.Background(), submission)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.Name != "Asha Patil" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if len(created.Skills) != 2 || created.Skills[0] != "Python" || created.Skills[1] != "Java" {
		t.Fatalf("expected deduplicated skills, got %v", created.Skills)
	}
}

func TestSubmitKeepsSkillsFromOtherDomains(t *testing.T) {
	service, _ := newTestService()
	submission := validSubmission()
	submission.Domain = application.DomainArts
	submission.Skills = []string{"Python", "Painting"}

	if _, err := service.Submit(context.Background(), submission); err != nil {
		t.Fatalf("expected carried-over skill to be accepted, got %v", err)
	}
}

func TestSubmitValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*application.Submission)
		field   string
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(s *application.Submission) { s.Name = "   " },
			field:   "name",
			message: "name is required",
		},
		{
			name:    "long prn",
			mutate:  func(s *application.Submission) { s.PRN = "123456789" },
			field:   "prn",
			message: "prn must be at most 8 characters",
		},
		{
			name:    "foreign email",
			mutate:  func(s *application.Submission) { s.Email = "asha@gmail.com" },
			field:   "email",
			message: "Email must be from the domain viit.ac.in",
		},
		{
			name:    "unknown club",
			mutate:  func(s *application.Submission) { s.Club = "Chess Club" },
			field:   "club",
			message: `club "Chess Club" is not offered`,
		},
		{
			name:    "unknown domain",
			mutate:  func(s *application.Submission) { s.Domain = "Medicine" },
			field:   "domain",
			message: `domain "Medicine" is not offered`,
		},
		{
			name:    "unknown skill",
			mutate:  func(s *application.Submission) { s.Skills = []string{"Juggling"} },
			field:   "skills[0]",
			message: `skill "Juggling" is not offered`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, repo := newTestService()
			submission := validSubmission()
			tc.mutate(&submission)

			_, err := service.Submit(context.Background(), submission)
			var appErr *common.Error
			if !errors.As(err, &appErr) || appErr.Code != common.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if appErr.Message != tc.message {
				t.Fatalf("unexpected message %q", appErr.Message)
			}
			if appErr.Fields[tc.field] != tc.message {
				t.Fatalf("unexpected fields %v", appErr.Fields)
			}
			if repo.Len() != 0 {
				t.Fatalf("invalid application was stored")
			}
		})
	}
}

type failingRepo struct{}

func (failingRepo) Create(context.Context, application.Application) (*application.Application, error) {
	return nil, common.NewError(common.CodeInternal, "failed to create application", errors.New("disk full"))
}

func (failingRepo) GetByID(context.Context, common.UUID) (*application.Application, error) {
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (failingRepo) Ping(context.Context) error {
	return errors.New("connection refused")
}

func TestSubmitPropagatesStoreErrors(t *testing.T) {
	service := NewApplicationService(failingRepo{}, "@viit.ac.in", nil)
	if _, err := service.Submit(context.Background(), validSubmission()); !common.Is(err, common.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if err := service.Ping(context.Background()); !common.Is(err, common.CodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestCatalog(t *testing.T) {
	service, _ := newTestService()
	catalog := service.Catalog()
	if len(catalog.Clubs) != 5 || len(catalog.Domains) != 4 {
		t.Fatalf("unexpected catalog sizes %d %d", len(catalog.Clubs), len(catalog.Domains))
	}
	if catalog.SkillsByDomain[application.DomainComputerScience][0] != "Python" {
		t.Fatalf("unexpected skills %v", catalog.SkillsByDomain)
	}
}
