package auth

import "errors"

// RoleRecruiter is the only principal role: recruiters see the /hr surface.
const RoleRecruiter = "recruiter"

// Principal is the token owner.
type Principal struct {
	Subject string
	Role    string
}

// Common errors used by the auth use case
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginDisabled      = errors.New("recruiter login is not configured")
)
