package mongodb

import (
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"clubform/internal/common"
	"clubform/internal/domain/application"
)

func TestDocumentRoundTripThroughBSON(t *testing.T) {
	app := application.Application{
		ID:        common.NewUUID(),
		Name:      "Asha",
		Phone:     "9876543210",
		Skills:    []string{"Python"},
		PRN:       "22010123",
		Email:     "asha@viit.ac.in",
		Club:      application.ClubDebate,
		Domain:    application.DomainCommerce,
		CreatedAt: time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	raw, err := bson.Marshal(toDocument(app))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded applicationDocument
	if err := bson.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := fromDocument(decoded); !reflect.DeepEqual(got, app) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, app)
	}

	var generic bson.M
	if err := bson.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("unmarshal generic: %v", err)
	}
	if generic["_id"] != app.ID.String() {
		t.Fatalf("expected _id to hold the application id, got %v", generic["_id"])
	}
}
