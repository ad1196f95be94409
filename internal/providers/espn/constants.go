package espn

import "time"

const providerName = "espn"

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultUserAgent   = "ledmatrix-live-stats/1.0"
	defaultHTTPTimeout = 10 * time.Second
	defaultMaxGames    = 50
)

// Basketball stat array indices in the scoreboard athletes block.
const (
	idxPoints   = 15
	idxRebounds = 10
	idxAssists  = 11
)

// Football stat array indices per category block.
const (
	idxPassYards = 2
	idxPassTDs   = 3
	idxRecvYards = 1
	idxRecvTDs   = 3
	idxRushYards = 1
	idxRushTDs   = 3
)

const (
	blockAthletes  = "athletes"
	blockPassing   = "passing"
	blockReceiving = "receiving"
	blockRushing   = "rushing"
)
