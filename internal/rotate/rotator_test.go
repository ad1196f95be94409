package rotate

import (
	"testing"

	"github.com/ZachSully4/ledmatrix-live-stats/internal/domain"
	"github.com/ZachSully4/ledmatrix-live-stats/internal/metrics"
)

func TestRotationOrderByPriority(t *testing.T) {
	r := New(map[domain.LeagueID]domain.LeagueConfig{
		domain.LeagueNBA:   {Enabled: true, Priority: 2},
		domain.LeagueNFL:   {Enabled: true, Priority: 1},
		domain.LeagueNCAAM: {Enabled: false, Priority: 3},
	}, nil)

	want := []domain.LeagueID{domain.LeagueNFL, domain.LeagueNBA, domain.LeagueNFL, domain.LeagueNBA}
	for i, expected := range want {
		got, ok := r.Current()
		if !ok {
			t.Fatalf("step %d: expected a league", i)
		}
		if got != expected {
			t.Fatalf("step %d: got %s, want %s", i, got, expected)
		}
		r.Advance()
	}
}

func TestCurrentDoesNotAdvance(t *testing.T) {
	r := New(map[domain.LeagueID]domain.LeagueConfig{
		domain.LeagueNBA: {Enabled: true, Priority: 1},
		domain.LeagueNFL: {Enabled: true, Priority: 2},
	}, nil)

	for i := 0; i < 3; i++ {
		got, ok := r.Current()
		if !ok || got != domain.LeagueNBA {
			t.Fatalf("call %d: cursor moved to %s", i, got)
		}
	}

	r.Advance()
	if got, _ := r.Current(); got != domain.LeagueNFL {
		t.Fatalf("expected nfl after advance, got %s", got)
	}
}

func TestTiesKeepCanonicalOrder(t *testing.T) {
	r := New(map[domain.LeagueID]domain.LeagueConfig{
		domain.LeagueNCAAF: {Enabled: true, Priority: 1},
		domain.LeagueNBA:   {Enabled: true, Priority: 1},
		domain.LeagueNFL:   {Enabled: true, Priority: 1},
	}, nil)

	got := r.Leagues()
	want := []domain.LeagueID{domain.LeagueNBA, domain.LeagueNFL, domain.LeagueNCAAF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestNoEnabledLeagues(t *testing.T) {
	r := New(map[domain.LeagueID]domain.LeagueConfig{
		domain.LeagueNBA: {Enabled: false, Priority: 1},
	}, nil)

	if league, ok := r.Current(); ok {
		t.Fatalf("expected no league, got %s", league)
	}
	r.Advance() // must not panic with an empty order
}

func TestAdvanceWithSingleLeague(t *testing.T) {
	r := New(map[domain.LeagueID]domain.LeagueConfig{
		domain.LeagueNFL: {Enabled: true, Priority: 1},
	}, nil)

	r.Advance()
	if got, ok := r.Current(); !ok || got != domain.LeagueNFL {
		t.Fatalf("single league should stay current, got %s (ok=%v)", got, ok)
	}
}

func TestSetLeaguesResetsCursor(t *testing.T) {
	r := New(map[domain.LeagueID]domain.LeagueConfig{
		domain.LeagueNBA: {Enabled: true, Priority: 1},
		domain.LeagueNFL: {Enabled: true, Priority: 2},
	}, nil)

	// Advance mid-cycle, then reconfigure.
	r.Advance()
	r.SetLeagues(map[domain.LeagueID]domain.LeagueConfig{
		domain.LeagueNFL:   {Enabled: true, Priority: 1},
		domain.LeagueNCAAM: {Enabled: true, Priority: 2},
	})

	got, ok := r.Current()
	if !ok || got != domain.LeagueNFL {
		t.Fatalf("expected cursor reset to nfl, got %s (ok=%v)", got, ok)
	}
}

func TestRotationRecorded(t *testing.T) {
	rec := metrics.NewRecorder()
	r := New(map[domain.LeagueID]domain.LeagueConfig{
		domain.LeagueNBA: {Enabled: true, Priority: 1},
		domain.LeagueNFL: {Enabled: true, Priority: 2},
	}, rec)

	r.Advance()
	r.Advance()
	r.Advance()

	if got := rec.Rotations(); got != 3 {
		t.Fatalf("expected 3 rotations, got %d", got)
	}
}
