package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"clubform/internal/common"
	"clubform/internal/domain/application"
)

type ApplicationService struct {
	repo        application.Repository
	validate    *validator.Validate
	emailSuffix string
	logger      *slog.Logger
}

func NewApplicationService(repo application.Repository, emailSuffix string, logger *slog.Logger) *ApplicationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationService{
		repo:        repo,
		validate:    newValidator(emailSuffix),
		emailSuffix: emailSuffix,
		logger:      logger,
	}
}

func newValidator(emailSuffix string) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("club", func(fl validator.FieldLevel) bool {
		return application.IsKnownClub(application.Club(fl.Field().String()))
	})
	_ = v.RegisterValidation("domain", func(fl validator.FieldLevel) bool {
		return application.IsKnownDomain(application.Domain(fl.Field().String()))
	})
	_ = v.RegisterValidation("skill", func(fl validator.FieldLevel) bool {
		return application.IsKnownSkill(fl.Field().String())
	})
	_ = v.RegisterValidation("institutional", func(fl validator.FieldLevel) bool {
		return strings.HasSuffix(fl.Field().String(), emailSuffix)
	})
	return v
}

// Submit checks the payload shape and stores one record per call. Duplicate
// submissions are stored as separate records.
func (s *ApplicationService) Submit(ctx context.Context, submission application.Submission) (*application.Application, error) {
	submission = normalizeSubmission(submission)
	if err := s.validate.Struct(submission); err != nil {
		return nil, s.validationError(err)
	}
	created, err := s.repo.Create(ctx, application.FromSubmission(submission))
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "application stored",
		slog.String("application_id", created.ID.String()),
		slog.String("club", string(created.Club)),
		slog.String("domain", string(created.Domain)),
	)
	return created, nil
}

func (s *ApplicationService) Get(ctx context.Context, id common.UUID) (*application.Application, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ApplicationService) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return common.NewError(common.CodeUnavailable, "store unavailable", err)
	}
	return nil
}

func (s *ApplicationService) validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return common.NewError(common.CodeInternal, "failed to validate application", err)
	}
	fields := make(map[string]string, len(fieldErrs))
	message := ""
	for _, fe := range fieldErrs {
		text := s.fieldMessage(fe)
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = text
		}
		if message == "" {
			message = text
		}
	}
	return common.NewValidationError(message, fields)
}

func (s *ApplicationService) fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return "email is not a valid address"
	case "institutional":
		return "Email must be from the domain " + strings.TrimPrefix(s.emailSuffix, "@")
	case "club":
		return fmt.Sprintf("club %q is not offered", fe.Value())
	case "domain":
		return fmt.Sprintf("domain %q is not offered", fe.Value())
	case "skill":
		return fmt.Sprintf("skill %q is not offered", fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// normalizeSubmission trims text fields and collapses the skill list to a set
// while keeping first-seen order.
func normalizeSubmission(s application.Submission) application.Submission {
	s.Name = strings.TrimSpace(s.Name)
	s.Phone = strings.TrimSpace(s.Phone)
	s.PRN = strings.TrimSpace(s.PRN)
	s.Email = strings.TrimSpace(s.Email)
	s.Club = application.Club(strings.TrimSpace(string(s.Club)))
	s.Domain = application.Domain(strings.TrimSpace(string(s.Domain)))
	skills := make([]string, 0, len(s.Skills))
	seen := make(map[string]struct{}, len(s.Skills))
	for _, skill := range s.Skills {
		skill = strings.TrimSpace(skill)
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		skills = append(skills, skill)
	}
	s.Skills = skills
	return s
}

// Catalog is the fixed set of choices offered by the form.
type Catalog struct {
	Clubs          []application.Club              `json:"clubs"`
	Domains        []application.Domain            `json:"domains"`
	SkillsByDomain map[application.Domain][]string `json:"skills_by_domain"`
}

func (s *ApplicationService) Catalog() Catalog {
	return Catalog{
		Clubs:          application.Clubs(),
		Domains:        application.Domains(),
		SkillsByDomain: application.SkillsByDomain(),
	}
}
