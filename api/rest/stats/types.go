package stats

import (
	"github.com/gitpulse/server/gitpulse/leaderboard"
)

// the stats endpoint returns the aggregator's board verbatim:
// the resolved range's ordered date list and the ranked users
type StatsResponse = leaderboard.Board
