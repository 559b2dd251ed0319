package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyDashboardID = errors.New("dashboard id is required")
	ErrEmptyUserID      = errors.New("user id is required")

	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidAvatarURL = errors.New("invalid avatar url")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrEmptyAccessKey = errors.New("access key is required")
)
