package render

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/metrics"
)

// CardWidth is the fixed width of one game card. Stat lines for two teams
// fit comfortably at the 4px character advance.
const CardWidth = 192

const defaultCardHeight = 32

var (
	colorScore   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorDetail  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorLeaders = color.RGBA{R: 77, G: 190, B: 238, A: 255}
)

type cardLine struct {
	text  string
	color color.RGBA
}

// Renderer rasterizes game snapshots into fixed-size card images for the
// scrolling ticker. Rendering is deterministic: the same snapshot always
// produces the same pixels.
type Renderer struct {
	height  int
	metrics *metrics.Recorder
}

// New builds a renderer for cards of the given height.
func New(height int, recorder *metrics.Recorder) *Renderer {
	if height <= 0 {
		height = defaultCardHeight
	}
	return &Renderer{height: height, metrics: recorder}
}

// Height reports the card height in pixels.
func (r *Renderer) Height() int {
	return r.height
}

// Cards renders one card per game and records the pass duration.
func (r *Renderer) Cards(games []domain.GameSnapshot) []*image.RGBA {
	start := time.Now()
	cards := make([]*image.RGBA, 0, len(games))
	for _, g := range games {
		cards = append(cards, r.Card(g))
	}
	r.metrics.RecordRender(time.Since(start), len(cards))
	return cards
}

// Card renders a single game: score header, game clock detail, then a stat
// leader line per team.
func (r *Renderer) Card(g domain.GameSnapshot) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CardWidth, r.height))
	for i, line := range cardLines(g) {
		baseline := i*lineHeight + 1 + glyphHeight
		if baseline > r.height {
			break
		}
		drawText(img, 1, baseline, line.text, line.color)
	}
	return img
}

// Placeholder renders a centered notice at the display's own size, shown
// when no enabled league has a live game.
func (r *Renderer) Placeholder(width int) *image.RGBA {
	if width <= 0 {
		width = CardWidth
	}
	img := image.NewRGBA(image.Rect(0, 0, width, r.height))

	msg := "NO LIVE GAMES"
	x := (width - textWidth(msg)) / 2
	if x < 0 {
		x = 0
	}
	baseline := (r.height + glyphHeight) / 2
	drawText(img, x, baseline, msg, colorScore)
	return img
}

func cardLines(g domain.GameSnapshot) []cardLine {
	return []cardLine{
		{text: fmt.Sprintf("%s %d @ %s %d", g.AwayAbbr, g.AwayScore, g.HomeAbbr, g.HomeScore), color: colorScore},
		{text: g.Detail, color: colorDetail},
		leaderLine(g.AwayAbbr, g.AwayLeaders),
		leaderLine(g.HomeAbbr, g.HomeLeaders),
	}
}

func leaderLine(team string, leaders *domain.Leaders) cardLine {
	if leaders == nil {
		return statsUnavailable(team)
	}
	switch leaders.Sport {
	case domain.SportBasketball:
		b := leaders.Basketball
		if b == nil {
			return statsUnavailable(team)
		}
		return cardLine{
			text:  fmt.Sprintf("%s: %s %d/%d/%d", team, b.Player, b.Points, b.Rebounds, b.Assists),
			color: colorLeaders,
		}
	case domain.SportFootball:
		line, ok := leaders.TopFootballLine()
		if !ok {
			return statsUnavailable(team)
		}
		return cardLine{
			text:  fmt.Sprintf("%s: %s %d, %dTD", team, line.Player, line.Yards, line.TDs),
			color: colorLeaders,
		}
	default:
		return statsUnavailable(team)
	}
}

func statsUnavailable(team string) cardLine {
	return cardLine{text: fmt.Sprintf("%s: STATS N/A", team), color: colorDetail}
}
