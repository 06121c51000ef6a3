package postgres

import (
	"reflect"
	"testing"
	"time"

	"clubform/internal/common"
	"clubform/internal/domain/application"
)

func TestRowConversionRoundTrip(t *testing.T) {
	app := application.Application{
		ID:        common.NewUUID(),
		Name:      "Asha",
		Phone:     "9876543210",
		Skills:    []string{"Python", "Java"},
		PRN:       "22010123",
		Email:     "asha@viit.ac.in",
		Club:      application.ClubCoding,
		Domain:    application.DomainComputerScience,
		CreatedAt: time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	if got := fromRow(toRow(app)); !reflect.DeepEqual(got, app) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, app)
	}
}

func TestFromRowNilSkills(t *testing.T) {
	app := fromRow(applicationRow{ID: common.NewUUID().String()})
	if app.Skills == nil || len(app.Skills) != 0 {
		t.Fatalf("expected empty non-nil skills, got %#v", app.Skills)
	}
}
