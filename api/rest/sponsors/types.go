package sponsors

import (
	"github.com/gitpulse/server/gitpulse/sponsors"
)

type SponsorsResponse struct {
	Sponsors []sponsors.Sponsor `json:"sponsors"`
}
