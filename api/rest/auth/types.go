package auth

import (
	"github.com/gitpulse/server/gitpulse/profiles"
)

// returned from the OAuth callback. FirstLogin is true only for the
// login that created the profile row.
type AuthResponse struct {
	Profile    *profiles.Profile `json:"profile"`
	Token      string            `json:"token"`
	FirstLogin bool              `json:"first_login"`
}

type ProfileResponse struct {
	Profile *profiles.Profile `json:"profile"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
