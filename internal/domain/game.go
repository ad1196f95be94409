package domain

import "time"

// GameStatus mirrors the upstream scoreboard lifecycle states.
type GameStatus string

const (
	StatusPregame GameStatus = "PREGAME"
	StatusLive    GameStatus = "LIVE"
	StatusFinal   GameStatus = "FINAL"
)

// GameSnapshot is one live game as captured at fetch time. Snapshots are
// value types and never mutated after construction; the renderer relies on
// that for deterministic output.
type GameSnapshot struct {
	ID          string     `json:"id"`
	League      LeagueID   `json:"league"`
	HomeAbbr    string     `json:"homeAbbr"`
	AwayAbbr    string     `json:"awayAbbr"`
	HomeScore   int        `json:"homeScore"`
	AwayScore   int        `json:"awayScore"`
	Period      int        `json:"period"`
	Clock       string     `json:"clock"`
	Detail      string     `json:"detail"`
	Status      GameStatus `json:"status"`
	HomeLeaders *Leaders   `json:"homeLeaders,omitempty"`
	AwayLeaders *Leaders   `json:"awayLeaders,omitempty"`
}

// Live reports whether the game is in progress.
func (g GameSnapshot) Live() bool {
	return g.Status == StatusLive
}

// ScoreboardSnapshot is the persisted shape of one league's fetch result.
type ScoreboardSnapshot struct {
	League    LeagueID       `json:"league"`
	FetchedAt time.Time      `json:"fetchedAt"`
	Games     []GameSnapshot `json:"games"`
}
