package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"clubform/internal/common"
	"clubform/internal/domain/application"
)

type ApplicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

type applicationRow struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Phone     string         `db:"phone"`
	Skills    pq.StringArray `db:"skills"`
	PRN       string         `db:"prn"`
	Email     string         `db:"email"`
	Club      string         `db:"club"`
	Domain    string         `db:"domain"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	app.CreatedAt = time.Now().UTC()
	if app.Skills == nil {
		app.Skills = []string{}
	}
	row := toRow(app)
	_, err := r.db.NamedExecContext(ctx, `INSERT INTO applications (id, name, phone, skills, prn, email, club, domain, created_at)
		VALUES (:id, :name, :phone, :skills, :prn, :email, :club, :domain, :created_at)`, row)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	var row applicationRow
	err := r.db.GetContext(ctx, &row, `SELECT id, name, phone, skills, prn, email, club, domain, created_at FROM applications WHERE id = $1`, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	app := fromRow(row)
	return &app, nil
}

func (r *ApplicationRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func toRow(app application.Application) applicationRow {
	return applicationRow{
		ID:        app.ID.String(),
		Name:      app.Name,
		Phone:     app.Phone,
		Skills:    pq.StringArray(app.Skills),
		PRN:       app.PRN,
		Email:     app.Email,
		Club:      string(app.Club),
		Domain:    string(app.Domain),
		CreatedAt: app.CreatedAt,
	}
}

func fromRow(row applicationRow) application.Application {
	skills := []string(row.Skills)
	if skills == nil {
		skills = []string{}
	}
	return application.Application{
		ID:        common.UUID(row.ID),
		Name:      row.Name,
		Phone:     row.Phone,
		Skills:    skills,
		PRN:       row.PRN,
		Email:     row.Email,
		Club:      application.Club(row.Club),
		Domain:    application.Domain(row.Domain),
		CreatedAt: row.CreatedAt.UTC(),
	}
}
