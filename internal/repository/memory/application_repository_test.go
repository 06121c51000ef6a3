package memory

import (
	"context"
	"testing"

	"clubform/internal/common"
	"clubform/internal/domain/application"
)

func TestCreateAndGet(t *testing.T) {
	repo := NewApplicationRepository()
	created, err := repo.Create(context.Background(), application.Application{Name: "Asha", Skills: []string{"Python"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp, got %+v", created)
	}

	created.Skills[0] = "mutated"
	loaded, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Name != "Asha" || loaded.Skills[0] != "Python" {
		t.Fatalf("unexpected stored application %+v", loaded)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected one record, got %d", repo.Len())
	}
}

func TestGetMissing(t *testing.T) {
	repo := NewApplicationRepository()
	if _, err := repo.GetByID(context.Background(), common.NewUUID()); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
