package application

import "errors"

// Domain errors surfaced by the services. Handlers map them onto HTTP
// statuses; anything else is treated as an internal failure.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateAccount   = errors.New("account already exists with this email or phone")
	ErrUserNotFound       = errors.New("user not found")
	ErrAdminProtected     = errors.New("admin accounts cannot be deleted")

	ErrPropertyNotFound = errors.New("property not found")
	ErrNotOwner         = errors.New("not authorized to modify this property")
	ErrStatusLocked     = errors.New("status can only change after approval")

	ErrInquiryNotFound  = errors.New("inquiry not found")
	ErrOwnProperty      = errors.New("you cannot inquire about your own property")
	ErrNotInquiryOwner  = errors.New("not authorized to respond to this inquiry")
	ErrApprovalRequired = errors.New("account approval required")
	ErrRoleNotPermitted = errors.New("role is not permitted for this action")
)
