package domain

import (
	"fmt"
	"strings"
)

// FootballRole orders football leader categories. QB outranks WR outranks RB
// when the renderer picks a single line.
type FootballRole string

const (
	RoleQB FootballRole = "QB"
	RoleWR FootballRole = "WR"
	RoleRB FootballRole = "RB"
)

// BasketballLeaders is the basketball variant of a team's stat leaders:
// the top scorer's name with the team-leading points, rebounds and assists.
type BasketballLeaders struct {
	Player   string `json:"player"`
	Points   int    `json:"points"`
	Rebounds int    `json:"rebounds"`
	Assists  int    `json:"assists"`
}

// FootballLine is one football leader category for a team.
type FootballLine struct {
	Role   FootballRole `json:"role"`
	Player string       `json:"player"`
	Yards  int          `json:"yards"`
	TDs    int          `json:"tds"`
}

// Leaders is the per-team stat leader variant, tagged by sport. Exactly one
// of Basketball or Football is set for a well-formed value.
type Leaders struct {
	Sport      Sport              `json:"sport"`
	Basketball *BasketballLeaders `json:"basketball,omitempty"`
	Football   []FootballLine     `json:"football,omitempty"`
}

// NewBasketballLeaders builds the basketball variant.
func NewBasketballLeaders(b BasketballLeaders) *Leaders {
	return &Leaders{Sport: SportBasketball, Basketball: &b}
}

// NewFootballLeaders builds the football variant. Lines should already be
// ordered QB, WR, RB.
func NewFootballLeaders(lines []FootballLine) *Leaders {
	if len(lines) == 0 {
		return nil
	}
	return &Leaders{Sport: SportFootball, Football: lines}
}

// TopFootballLine returns the highest-priority football line (QB > WR > RB).
func (l *Leaders) TopFootballLine() (FootballLine, bool) {
	if l == nil || l.Sport != SportFootball {
		return FootballLine{}, false
	}
	for _, role := range []FootballRole{RoleQB, RoleWR, RoleRB} {
		for _, line := range l.Football {
			if line.Role == role {
				return line, true
			}
		}
	}
	return FootballLine{}, false
}

const maxShortNameLen = 8

// AbbreviateName compacts a player name for the ticker: bare surname when it
// fits, otherwise "F. Lastname", otherwise a truncation.
func AbbreviateName(full string) string {
	parts := strings.Fields(full)
	if len(parts) >= 2 {
		last := parts[len(parts)-1]
		if len(last) <= maxShortNameLen {
			return last
		}
		return fmt.Sprintf("%c. %s", parts[0][0], last)
	}
	if len(full) > 10 {
		return full[:10]
	}
	return full
}
