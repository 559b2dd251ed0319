package validators

import (
	"context"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/MKhiriev/go-bug-triage/models"
)

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields.
const (
	// FieldTitle targets the bug title.
	FieldTitle = "title"

	// FieldDescription targets the bug description.
	FieldDescription = "description"

	// FieldDashboardID targets the dashboard a request refers to.
	FieldDashboardID = "dashboard_id"

	// FieldUserID targets the authenticated user of a request.
	FieldUserID = "user_id"

	// FieldEmail targets the login email.
	FieldEmail = "email"

	// FieldPassword targets the password of a registration.
	FieldPassword = "password"

	// FieldName targets a display name (user or dashboard).
	FieldName = "name"

	// FieldAvatarURL targets the optional avatar link of a profile update.
	FieldAvatarURL = "avatar_url"

	// FieldProfileUpdate requires at least one field of a profile update.
	FieldProfileUpdate = "profile_update"

	// FieldAccessKey targets the dashboard access key.
	FieldAccessKey = "access_key"
)

const (
	MaxTitleLength    = 200
	MaxNameLength     = 100
	MinPasswordLength = 6
)

// TriageValidator implements the Validator interface for the request
// models of the bug-triage API: SubmitBugRequest, AuthRequest,
// UpdateProfileRequest, CreateDashboardRequest and JoinDashboardRequest.
//
// All string checks run on trimmed values. Both value and pointer forms
// of every model are accepted.
type TriageValidator struct {
}

// NewTriageValidator constructs a new TriageValidator
// and returns it as the Validator interface.
func NewTriageValidator() Validator {
	return &TriageValidator{}
}

// Validate dispatches validation to the type-specific method. Optional
// fields restrict validation to the named subset; when omitted, the default
// set of fields of the model is validated.
func (v *TriageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubmitBugRequest:
		return v.validateSubmitBug(ctx, value, fields...)
	case *models.SubmitBugRequest:
		return v.validateSubmitBug(ctx, *value, fields...)

	case models.AuthRequest:
		return v.validateAuth(ctx, value, fields...)
	case *models.AuthRequest:
		return v.validateAuth(ctx, *value, fields...)

	case models.UpdateProfileRequest:
		return v.validateUpdateProfile(ctx, value, fields...)
	case *models.UpdateProfileRequest:
		return v.validateUpdateProfile(ctx, *value, fields...)

	case models.CreateDashboardRequest:
		return v.validateCreateDashboard(ctx, value, fields...)
	case *models.CreateDashboardRequest:
		return v.validateCreateDashboard(ctx, *value, fields...)

	case models.JoinDashboardRequest:
		return v.validateJoinDashboard(ctx, value, fields...)
	case *models.JoinDashboardRequest:
		return v.validateJoinDashboard(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSubmitBug checks a bug report.
//
// Default validated fields: Title, Description, DashboardID.
// UserID comes from the session and is only checked when asked for.
func (v *TriageValidator) validateSubmitBug(_ context.Context, request models.SubmitBugRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldDashboardID}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			title := strings.TrimSpace(request.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldDescription:
			if strings.TrimSpace(request.Description) == "" {
				return ErrEmptyDescription
			}
		case FieldDashboardID:
			if strings.TrimSpace(request.DashboardID) == "" {
				return ErrEmptyDashboardID
			}
		case FieldUserID:
			if strings.TrimSpace(request.UserID) == "" {
				return ErrEmptyUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAuth checks registration and login credentials.
//
// Default validated fields: Email, Password, Name (registration).
// Login validates FieldEmail only since the password is optional there.
func (v *TriageValidator) validateAuth(_ context.Context, request models.AuthRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(request.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldName:
			if err := validateName(request.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdateProfile checks a partial profile update.
//
// Default validated fields: UserID, ProfileUpdate, Name, AvatarURL.
// Name and AvatarURL are only checked when present.
func (v *TriageValidator) validateUpdateProfile(_ context.Context, request models.UpdateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldProfileUpdate, FieldName, FieldAvatarURL}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(request.UserID) == "" {
				return ErrEmptyUserID
			}
		case FieldProfileUpdate:
			if request.Name == nil && request.AvatarURL == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if request.Name == nil {
				continue
			}
			if err := validateName(*request.Name); err != nil {
				return err
			}
		case FieldAvatarURL:
			if request.AvatarURL == nil || *request.AvatarURL == "" {
				continue
			}
			u, err := url.Parse(strings.TrimSpace(*request.AvatarURL))
			if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
				return ErrInvalidAvatarURL
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateDashboard checks the dashboard name.
func (v *TriageValidator) validateCreateDashboard(_ context.Context, request models.CreateDashboardRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(request.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateJoinDashboard checks that an access key was provided. Keys that
// are well formed but unknown, as well as malformed ones, are reported by
// the lookup as not found.
func (v *TriageValidator) validateJoinDashboard(_ context.Context, request models.JoinDashboardRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccessKey}
	}

	for _, f := range fields {
		switch f {
		case FieldAccessKey:
			if utils.NormalizeAccessKey(request.AccessKey) == "" {
				return ErrEmptyAccessKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
