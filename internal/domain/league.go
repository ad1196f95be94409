package domain

// Sport selects the stat shape a league produces.
type Sport string

const (
	SportBasketball Sport = "basketball"
	SportFootball   Sport = "football"
)

// LeagueID identifies one supported league.
type LeagueID string

const (
	LeagueNBA   LeagueID = "nba"
	LeagueNFL   LeagueID = "nfl"
	LeagueNCAAM LeagueID = "ncaam"
	LeagueNCAAF LeagueID = "ncaaf"
)

// AllLeagues lists supported leagues in canonical order. Rotation ties
// between equal priorities resolve in this order.
var AllLeagues = []LeagueID{LeagueNBA, LeagueNFL, LeagueNCAAM, LeagueNCAAF}

type leagueInfo struct {
	sport Sport
	path  string
}

// ESPN scoreboard path segments per league.
var leagueTable = map[LeagueID]leagueInfo{
	LeagueNBA:   {sport: SportBasketball, path: "basketball/nba"},
	LeagueNFL:   {sport: SportFootball, path: "football/nfl"},
	LeagueNCAAM: {sport: SportBasketball, path: "basketball/mens-college-basketball"},
	LeagueNCAAF: {sport: SportFootball, path: "football/college-football"},
}

// Known reports whether the league is one of the supported four.
func (l LeagueID) Known() bool {
	_, ok := leagueTable[l]
	return ok
}

// Sport returns the sport the league belongs to. Unknown leagues report
// the zero Sport; callers should check Known first.
func (l LeagueID) Sport() Sport {
	return leagueTable[l].sport
}

// SportPath returns the provider path segment ("basketball/nba") for the league.
func (l LeagueID) SportPath() string {
	return leagueTable[l].path
}

// LeagueConfig holds per-league rotation settings. Lower priority sorts first.
type LeagueConfig struct {
	Enabled  bool `json:"enabled" mapstructure:"enabled"`
	Priority int  `json:"priority" mapstructure:"priority"`
}
