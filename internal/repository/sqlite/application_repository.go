package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"clubform/internal/common"
	"clubform/internal/domain/application"
)

var _ application.Repository = (*ApplicationRepository)(nil)

// ApplicationRepository stores applications in a local SQLite file.
type ApplicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// skillList is stored as a JSON array in a TEXT column.
type skillList []string

func (s *skillList) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*s = skillList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported skills type %T", v)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decoding skills : %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*s = out
	return nil
}

func (s skillList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

type applicationRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	Skills    skillList `db:"skills"`
	PRN       string    `db:"prn"`
	Email     string    `db:"email"`
	Club      string    `db:"club"`
	Domain    string    `db:"domain"`
	CreatedAt string    `db:"created_at"`
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	app.CreatedAt = time.Now().UTC()
	if app.Skills == nil {
		app.Skills = []string{}
	}
	row := applicationRow{
		ID:        app.ID.String(),
		Name:      app.Name,
		Phone:     app.Phone,
		Skills:    skillList(app.Skills),
		PRN:       app.PRN,
		Email:     app.Email,
		Club:      string(app.Club),
		Domain:    string(app.Domain),
		CreatedAt: app.CreatedAt.Format(time.RFC3339Nano),
	}
	query := `INSERT INTO applications(id, name, phone, skills, prn, email, club, domain, created_at)
			  VALUES(:id, :name, :phone, :skills, :prn, :email, :club, :domain, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	var row applicationRow
	query := `SELECT id, name, phone, skills, prn, email, club, domain, created_at
			  FROM applications
			  WHERE id = ?`
	if err := r.db.GetContext(ctx, &row, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, row.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to parse application timestamp", err)
	}
	return &application.Application{
		ID:        common.UUID(row.ID),
		Name:      row.Name,
		Phone:     row.Phone,
		Skills:    []string(row.Skills),
		PRN:       row.PRN,
		Email:     row.Email,
		Club:      application.Club(row.Club),
		Domain:    application.Domain(row.Domain),
		CreatedAt: createdAt,
	}, nil
}

func (r *ApplicationRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
