package application

import (
	"context"
	"time"

	"clubform/internal/common"
)

const MaxPRNLength = 8

// Submission is the wire payload sent by the form client.
type Submission struct {
	Name   string   `json:"name" validate:"required"`
	Phone  string   `json:"phone" validate:"required"`
	Skills []string `json:"skills" validate:"dive,skill"`
	PRN    string   `json:"prn" validate:"required,max=8"`
	Email  string   `json:"email" validate:"required,email,institutional"`
	Club   Club     `json:"club" validate:"required,club"`
	Domain Domain   `json:"domain" validate:"required,domain"`
}

// Application is the stored record. It is written once and never updated.
type Application struct {
	ID        common.UUID `json:"id"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Skills    []string    `json:"skills"`
	PRN       string      `json:"prn"`
	Email     string      `json:"email"`
	Club      Club        `json:"club"`
	Domain    Domain      `json:"domain"`
	CreatedAt time.Time   `json:"created_at"`
}

func FromSubmission(s Submission) Application {
	return Application{
		Name:   s.Name,
		Phone:  s.Phone,
		Skills: append([]string{}, s.Skills...),
		PRN:    s.PRN,
		Email:  s.Email,
		Club:   s.Club,
		Domain: s.Domain,
	}
}

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	Ping(ctx context.Context) error
}
