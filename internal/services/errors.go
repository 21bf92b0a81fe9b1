package services

import "errors"

// Error variables
var (
	ErrMissingField        = errors.New("missing required fields")
	ErrInvalidField        = errors.New("invalid field value")
	ErrUserAlreadyExists   = errors.New("username or email already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrOAuthOnlyAccount    = errors.New("account uses social login, no password set")
	ErrUnsupportedProvider = errors.New("unsupported authentication provider")
	ErrUpstreamTimeout     = errors.New("upstream service timed out")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrImageTooLarge       = errors.New("image dimensions exceed the pixel limit")
	ErrEquipmentNotFound   = errors.New("equipment not found")
	ErrDuplicateRule       = errors.New("compatibility rule already exists")
	ErrListingNotFound     = errors.New("listing not found")
	ErrForbidden           = errors.New("not allowed to modify this resource")
	ErrAccountSuspended    = errors.New("account suspended")
)
