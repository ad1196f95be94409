package espn

// Only the scoreboard fields the ticker consumes are declared; everything
// else in ESPN's payload is ignored by the decoder.

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Competitions []competitionResponse `json:"competitions"`
	Status       statusResponse        `json:"status"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
}

type statusResponse struct {
	Period       int                `json:"period"`
	DisplayClock string             `json:"displayClock"`
	Type         statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	State       string `json:"state"` // pre, in, post
	ShortDetail string `json:"shortDetail"`
}

type competitorResponse struct {
	HomeAway   string           `json:"homeAway"`
	Score      string           `json:"score"`
	Team       teamResponse     `json:"team"`
	Statistics []statisticBlock `json:"statistics"`
}

type teamResponse struct {
	Abbreviation string `json:"abbreviation"`
}

type statisticBlock struct {
	Name     string         `json:"name"`
	Athletes []athleteEntry `json:"athletes"`
}

type athleteEntry struct {
	Athlete athleteInfo `json:"athlete"`
	Stats   []string    `json:"stats"`
}

type athleteInfo struct {
	DisplayName string `json:"displayName"`
	ShortName   string `json:"shortName"`
}
