// Package form holds the applicant's in-progress input and turns it into a
// submission. State is a value: every update returns a new State and leaves
// the receiver untouched.
package form

import (
	"errors"
	"fmt"
	"strings"

	"clubform/internal/domain/application"
)

type Field string

const (
	FieldName   Field = "name"
	FieldPhone  Field = "phone"
	FieldPRN    Field = "prn"
	FieldEmail  Field = "email"
	FieldClub   Field = "club"
	FieldDomain Field = "domain"
	FieldSkills Field = "skills"
)

const DefaultEmailSuffix = "@viit.ac.in"

var (
	ErrValidation   = errors.New("validation failed")
	ErrUnknownField = errors.New("unknown field")
)

// ValidationError is a client-side check failure. It matches ErrValidation.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type values struct {
	name   string
	phone  string
	prn    string
	email  string
	club   application.Club
	domain application.Domain
	skills []string
}

type State struct {
	values      values
	emailSuffix string
	errMessage  string
	success     string
}

// New returns an empty form. An empty suffix selects DefaultEmailSuffix.
func New(emailSuffix string) State {
	if strings.TrimSpace(emailSuffix) == "" {
		emailSuffix = DefaultEmailSuffix
	}
	return State{emailSuffix: emailSuffix, values: values{skills: []string{}}}
}

// Set replaces one scalar field. Skills are changed through ToggleSkill.
func (s State) Set(field Field, value string) (State, error) {
	next := s.clone()
	switch field {
	case FieldName:
		next.values.name = value
	case FieldPhone:
		next.values.phone = value
	case FieldPRN:
		next.values.prn = truncate(value, application.MaxPRNLength)
	case FieldEmail:
		next.values.email = value
	case FieldClub:
		club := application.Club(value)
		if value != "" && !application.IsKnownClub(club) {
			return s, fmt.Errorf("club %q is not offered", value)
		}
		next.values.club = club
	case FieldDomain:
		domain := application.Domain(value)
		if value != "" && !application.IsKnownDomain(domain) {
			return s, fmt.Errorf("domain %q is not offered", value)
		}
		// Skills chosen under the previous domain are kept.
		next.values.domain = domain
	case FieldSkills:
		return s, fmt.Errorf("%w: skills are toggled one at a time", ErrUnknownField)
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return next, nil
}

// ToggleSkill adds skill when absent and removes it when present.
func (s State) ToggleSkill(skill string) State {
	next := s.clone()
	for i, selected := range next.values.skills {
		if selected == skill {
			next.values.skills = append(next.values.skills[:i], next.values.skills[i+1:]...)
			return next
		}
	}
	next.values.skills = append(next.values.skills, skill)
	return next
}

func (s State) Value(field Field) string {
	switch field {
	case FieldName:
		return s.values.name
	case FieldPhone:
		return s.values.phone
	case FieldPRN:
		return s.values.prn
	case FieldEmail:
		return s.values.email
	case FieldClub:
		return string(s.values.club)
	case FieldDomain:
		return string(s.values.domain)
	case FieldSkills:
		return strings.Join(s.values.skills, ", ")
	default:
		return ""
	}
}

func (s State) Skills() []string {
	return append([]string{}, s.values.skills...)
}

func (s State) HasSkill(skill string) bool {
	for _, selected := range s.values.skills {
		if selected == skill {
			return true
		}
	}
	return false
}

// AvailableSkills lists the skills offered for the selected domain.
func (s State) AvailableSkills() []string {
	return application.SkillsFor(s.values.domain)
}

// Error is the inline error message, empty when there is none.
func (s State) Error() string {
	return s.errMessage
}

// Success is the confirmation text from the last accepted submission.
func (s State) Success() string {
	return s.success
}

func (s State) EmailSuffix() string {
	return s.emailSuffix
}

// IsEmpty reports whether every field holds its initial value.
func (s State) IsEmpty() bool {
	v := s.values
	return v.name == "" && v.phone == "" && v.prn == "" && v.email == "" &&
		v.club == "" && v.domain == "" && len(v.skills) == 0
}

// Validate runs the checks that must pass before anything is sent.
func (s State) Validate() error {
	if !strings.HasSuffix(s.values.email, s.emailSuffix) {
		return &ValidationError{Field: FieldEmail, Message: "Email must be from the domain " + strings.TrimPrefix(s.emailSuffix, "@")}
	}
	return nil
}

func (s State) Payload() application.Submission {
	return application.Submission{
		Name:   s.values.name,
		Phone:  s.values.phone,
		Skills: s.Skills(),
		PRN:    s.values.prn,
		Email:  s.values.email,
		Club:   s.values.club,
		Domain: s.values.domain,
	}
}

// withError sets the inline error and leaves everything else as it was.
func (s State) withError(message string) State {
	next := s.clone()
	next.errMessage = message
	return next
}

// withSubmitFailure also drops an earlier confirmation, which no longer
// describes the latest attempt.
func (s State) withSubmitFailure(message string) State {
	next := s.withError(message)
	next.success = ""
	return next
}

func (s State) clone() State {
	next := s
	next.values.skills = append([]string{}, s.values.skills...)
	return next
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
