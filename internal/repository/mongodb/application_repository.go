package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"clubform/internal/common"
	"clubform/internal/domain/application"
)

const collectionName = "applications"

// ApplicationRepository keeps one document per application.
type ApplicationRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{db: db, collection: db.Collection(collectionName)}
}

type applicationDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Phone     string    `bson:"phone"`
	Skills    []string  `bson:"skills"`
	PRN       string    `bson:"prn"`
	Email     string    `bson:"email"`
	Club      string    `bson:"club"`
	Domain    string    `bson:"domain"`
	CreatedAt time.Time `bson:"created_at"`
}

// EnsureIndexes creates the lookup indexes used by operators.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}, options.CreateIndexes())
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to create application indexes", err)
	}
	return nil
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	app.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if app.Skills == nil {
		app.Skills = []string{}
	}
	if _, err := r.collection.InsertOne(ctx, toDocument(app)); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	var doc applicationDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	app := fromDocument(doc)
	return &app, nil
}

func (r *ApplicationRepository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

func toDocument(app application.Application) applicationDocument {
	return applicationDocument{
		ID:        app.ID.String(),
		Name:      app.Name,
		Phone:     app.Phone,
		Skills:    app.Skills,
		PRN:       app.PRN,
		Email:     app.Email,
		Club:      string(app.Club),
		Domain:    string(app.Domain),
		CreatedAt: app.CreatedAt,
	}
}

func fromDocument(doc applicationDocument) application.Application {
	skills := doc.Skills
	if skills == nil {
		skills = []string{}
	}
	return application.Application{
		ID:        common.UUID(doc.ID),
		Name:      doc.Name,
		Phone:     doc.Phone,
		Skills:    skills,
		PRN:       doc.PRN,
		Email:     doc.Email,
		Club:      application.Club(doc.Club),
		Domain:    application.Domain(doc.Domain),
		CreatedAt: doc.CreatedAt.UTC(),
	}
}
