package profiles

import (
	"github.com/gitpulse/server/gitpulse/profiles"
)

type ProfileResponse struct {
	Profile *profiles.Profile `json:"profile"`
}
