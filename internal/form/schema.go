package form

import (
	"errors"
	"fmt"
	"mime/multipart"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Gwhiite/form/internal/model"
)

const (
	// MaxAvatarBytes caps the avatar file size at 5 MiB.
	MaxAvatarBytes = 5 << 20

	// MinTechs is the minimum number of technology rows.
	MinTechs = 2

	// KnowledgeMin and KnowledgeMax bound a row's knowledge value.
	KnowledgeMin = 1
	KnowledgeMax = 100

	// KnowledgeThreshold must be exceeded by at least one row.
	KnowledgeThreshold = 50

	// DefaultEmailDomain is the required email suffix when none is configured.
	DefaultEmailDomain = "@gmail.com"
)

// Draft is the raw, not-yet-validated form input. The avatar arrives as a
// multipart part and is attached by the handler; everything else binds from
// form values, with the techs field decoded by TechList.UnmarshalParam.
type Draft struct {
	Avatar   *multipart.FileHeader `form:"-" validate:"required"`
	Name     string                `form:"name" validate:"required"`
	Email    string                `form:"email" validate:"required,email"`
	Password string                `form:"password" validate:"required,min=6"`
	// The length rule lives in Validate, not a min tag: the validator stops
	// at a field's first failing tag, and a failing min would suppress dive
	// and with it every per-entry error.
	Techs TechList `form:"techs" validate:"dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return v
}

// Schema holds the cross-request validation settings.
type Schema struct {
	emailDomain string
}

// New builds a Schema requiring emails to end with domain. An empty domain
// falls back to DefaultEmailDomain.
func New(domain string) *Schema {
	if domain == "" {
		domain = DefaultEmailDomain
	}
	return &Schema{emailDomain: strings.ToLower(domain)}
}

// EmailDomain returns the required email suffix.
func (s *Schema) EmailDomain() string { return s.emailDomain }

// Validate runs the full pipeline over a draft: structural checks first,
// then refinements for every field whose structure held, then — only when
// no error was recorded — the canonicalizing transforms. It returns either
// a Registration or a non-empty ErrorSet, never both.
func (s *Schema) Validate(d *Draft) (*model.Registration, ErrorSet) {
	errs := ErrorSet{}

	if err := validate.Struct(d); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			errs.Add("form", "invalid form input")
			return nil, errs
		}
		for _, fe := range ves {
			errs.Add(fieldPath(fe), fieldMessage(fe))
		}
	}

	if d.Avatar != nil && !errs.Has("avatar") && d.Avatar.Size > MaxAvatarBytes {
		errs.Add("avatar", "avatar must be 5MB or smaller")
	}
	if !errs.Has("name") && strings.TrimSpace(d.Name) == "" {
		errs.Add("name", "name must not be empty")
	}
	if !errs.Has("email") && !strings.HasSuffix(strings.ToLower(d.Email), s.emailDomain) {
		errs.Add("email", fmt.Sprintf("email must end with %s", s.emailDomain))
	}
	if len(d.Techs) < MinTechs {
		errs.Add("techs", fmt.Sprintf("add at least %d technologies", MinTechs))
	}

	knowledge := make([]int, len(d.Techs))
	coerced := true
	for i, t := range d.Techs {
		path := TechPath(i, "knowledge")
		if errs.Has(path) {
			coerced = false
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(t.Knowledge))
		if err != nil {
			errs.Add(path, "knowledge must be a number")
			coerced = false
			continue
		}
		if n < KnowledgeMin || n > KnowledgeMax {
			errs.Add(path, fmt.Sprintf("knowledge must be between %d and %d", KnowledgeMin, KnowledgeMax))
			coerced = false
			continue
		}
		knowledge[i] = n
	}

	// The threshold rule is list-level and only meaningful once every row's
	// knowledge coerced and the list itself passed its length check.
	if coerced && len(d.Techs) >= MinTechs {
		above := false
		for _, n := range knowledge {
			if n > KnowledgeThreshold {
				above = true
				break
			}
		}
		if !above {
			errs.Add("techs", fmt.Sprintf("at least one technology must have knowledge above %d", KnowledgeThreshold))
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	techs := make([]model.TechEntry, len(d.Techs))
	for i, t := range d.Techs {
		techs[i] = model.TechEntry{ID: t.ID, Title: t.Title, Knowledge: knowledge[i]}
	}
	return &model.Registration{
		Avatar:   d.Avatar,
		Name:     TitleCaseName(d.Name),
		Email:    strings.ToLower(d.Email),
		Password: d.Password,
		Techs:    techs,
	}, nil
}

// fieldPath converts a validator namespace like "Draft.techs[1].title" into
// the form's field path "techs[1].title".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		switch fe.Field() {
		case "avatar":
			return "an avatar file is required"
		default:
			return fmt.Sprintf("%s must not be empty", fe.Field())
		}
	case "email":
		return "email must be a valid address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
