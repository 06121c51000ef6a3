package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"clubform/internal/common"
	"clubform/internal/database"
	"clubform/internal/domain/application"
)

func newTestRepo(t *testing.T) *ApplicationRepository {
	t.Helper()
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "clubs.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewApplicationRepository(db)
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, application.Application{
		Name:   "Asha",
		Phone:  "9876543210",
		Skills: []string{"Python", "Painting"},
		PRN:    "22010123",
		Email:  "asha@viit.ac.in",
		Club:   application.ClubArt,
		Domain: application.DomainArts,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(loaded.Skills, []string{"Python", "Painting"}) {
		t.Fatalf("unexpected skills %v", loaded.Skills)
	}
	if loaded.Club != application.ClubArt || loaded.PRN != "22010123" {
		t.Fatalf("unexpected application %+v", loaded)
	}
	if !loaded.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("timestamp mismatch %v vs %v", loaded.CreatedAt, created.CreatedAt)
	}
}

func TestCreateWithoutSkills(t *testing.T) {
	repo := newTestRepo(t)
	created, err := repo.Create(context.Background(), application.Application{Name: "Ravi", PRN: "1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	loaded, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Skills == nil || len(loaded.Skills) != 0 {
		t.Fatalf("expected empty skills, got %#v", loaded.Skills)
	}
}

func TestGetMissing(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.GetByID(context.Background(), common.NewUUID()); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
