package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
)

func footballGame() domain.GameSnapshot {
	return domain.GameSnapshot{
		ID:        "1",
		League:    domain.LeagueNFL,
		HomeAbbr:  "BUF",
		AwayAbbr:  "KC",
		HomeScore: 17,
		AwayScore: 21,
		Detail:    "Q4 5:23",
		Status:    domain.StatusLive,
		AwayLeaders: domain.NewFootballLeaders([]domain.FootballLine{
			{Role: domain.RoleQB, Player: "Mahomes", Yards: 245, TDs: 3},
		}),
		HomeLeaders: domain.NewFootballLeaders([]domain.FootballLine{
			{Role: domain.RoleQB, Player: "Allen", Yards: 198, TDs: 2},
		}),
	}
}

func countColor(t *testing.T, img interface {
	At(x, y int) color.Color
}, bounds [4]int, want color.RGBA) int {
	t.Helper()
	n := 0
	for y := bounds[1]; y < bounds[3]; y++ {
		for x := bounds[0]; x < bounds[2]; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			wr, wg, wb, wa := want.RGBA()
			if r == wr && g == wg && b == wb && a == wa {
				n++
			}
		}
	}
	return n
}

func TestCardDimensions(t *testing.T) {
	card := New(32, nil).Card(footballGame())
	b := card.Bounds()
	if b.Dx() != CardWidth || b.Dy() != 32 {
		t.Fatalf("unexpected card size %dx%d", b.Dx(), b.Dy())
	}
}

func TestCardLineColors(t *testing.T) {
	card := New(32, nil).Card(footballGame())

	// Score header occupies the first 8px band, leaders the last two bands.
	if n := countColor(t, card, [4]int{0, 0, CardWidth, 8}, colorScore); n == 0 {
		t.Fatal("expected white score pixels in the header band")
	}
	if n := countColor(t, card, [4]int{0, 8, CardWidth, 16}, colorDetail); n == 0 {
		t.Fatal("expected gray detail pixels in the second band")
	}
	if n := countColor(t, card, [4]int{0, 16, CardWidth, 32}, colorLeaders); n == 0 {
		t.Fatal("expected leader-colored pixels in the bottom bands")
	}
}

func TestMissingLeadersRenderGray(t *testing.T) {
	g := footballGame()
	g.AwayLeaders = nil
	g.HomeLeaders = nil
	card := New(32, nil).Card(g)

	if n := countColor(t, card, [4]int{0, 16, CardWidth, 32}, colorLeaders); n != 0 {
		t.Fatal("leader color should not appear without leaders")
	}
	if n := countColor(t, card, [4]int{0, 16, CardWidth, 32}, colorDetail); n == 0 {
		t.Fatal("expected gray fallback text in the leader bands")
	}
}

func TestCardDeterministic(t *testing.T) {
	r := New(32, nil)
	a := r.Card(footballGame())
	b := r.Card(footballGame())
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("identical snapshots must render identical cards")
	}
}

func TestBasketballLeaderLine(t *testing.T) {
	line := leaderLine("BOS", domain.NewBasketballLeaders(domain.BasketballLeaders{
		Player: "J. Tatum", Points: 27, Rebounds: 9, Assists: 5,
	}))
	if line.text != "BOS: J. Tatum 27/9/5" {
		t.Fatalf("unexpected line %q", line.text)
	}
	if line.color != colorLeaders {
		t.Fatal("basketball leader line should use the leader color")
	}
}

func TestFootballLeaderLinePicksQB(t *testing.T) {
	line := leaderLine("KC", domain.NewFootballLeaders([]domain.FootballLine{
		{Role: domain.RoleWR, Player: "Kelce", Yards: 89, TDs: 1},
		{Role: domain.RoleQB, Player: "Mahomes", Yards: 245, TDs: 3},
	}))
	if line.text != "KC: Mahomes 245, 3TD" {
		t.Fatalf("unexpected line %q", line.text)
	}
}

func TestPlaceholderCentered(t *testing.T) {
	img := New(32, nil).Placeholder(192)

	if n := countColor(t, img, [4]int{0, 0, 192, 32}, colorScore); n == 0 {
		t.Fatal("placeholder should contain text pixels")
	}
	// Text is centered, so the far left edge stays dark.
	if n := countColor(t, img, [4]int{0, 0, 40, 32}, colorScore); n != 0 {
		t.Fatal("placeholder text should not touch the left edge")
	}
}

func TestShortDisplaySkipsOverflowLines(t *testing.T) {
	card := New(16, nil).Card(footballGame())
	if card.Bounds().Dy() != 16 {
		t.Fatalf("unexpected height %d", card.Bounds().Dy())
	}
	if n := countColor(t, card, [4]int{0, 0, CardWidth, 16}, colorLeaders); n != 0 {
		t.Fatal("leader lines should be dropped when they do not fit")
	}
}

func TestTextWidth(t *testing.T) {
	if got := textWidth("ABC"); got != 11 {
		t.Fatalf("textWidth(ABC) = %d", got)
	}
	if got := textWidth(""); got != 0 {
		t.Fatalf("textWidth(empty) = %d", got)
	}
}
