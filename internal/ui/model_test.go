package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okrete/kinema/internal/scene"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	sc, err := scene.Compile(scene.Default())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return New(sc)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTickRunsOneFrameAndSnapshots(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.handleMsg(tickMsg(time.Now()))
	if next.frames != 1 {
		t.Fatalf("expected 1 frame, got %d", next.frames)
	}
	if len(next.snapshot) != 3 {
		t.Fatalf("expected 3 element snapshots, got %d", len(next.snapshot))
	}
	for _, ev := range next.snapshot {
		if len(ev.props) == 0 {
			t.Fatalf("element %q has no properties after the write phase", ev.label)
		}
	}
	if cmd == nil {
		t.Fatal("expected a follow-up tick command")
	}
}

func TestSpaceTogglesAutoplay(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.handleMsg(key(" "))
	if !next.playing {
		t.Fatal("space did not start autoplay")
	}
	next, _ = next.handleMsg(key(" "))
	if next.playing {
		t.Fatal("space did not stop autoplay")
	}
}

func TestAutoplayAdvancesTarget(t *testing.T) {
	m := newTestModel(t)
	m.playing = true

	next, _ := m.handleMsg(tickMsg(time.Now()))
	if next.target <= 0 {
		t.Fatalf("autoplay did not advance target: %v", next.target)
	}
	if next.elapsed == 0 {
		t.Fatal("autoplay did not advance the clock")
	}
}

func TestAutoplayPingPongsAtBounds(t *testing.T) {
	m := newTestModel(t)
	m.playing = true
	m.target = 1

	next, _ := m.handleMsg(tickMsg(time.Now()))
	if next.direction != -1 {
		t.Fatalf("expected direction flip at 1, got %v", next.direction)
	}
}

func TestScrubKeysMoveTarget(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.handleMsg(key("l"))
	if !almost(next.target, scrubStep) {
		t.Fatalf("right scrub moved target to %v", next.target)
	}
	next, _ = next.handleMsg(key("h"))
	if !almost(next.target, 0) {
		t.Fatalf("left scrub moved target to %v", next.target)
	}
	next, _ = next.handleMsg(key("h"))
	if next.target != 0 {
		t.Fatalf("target escaped below 0: %v", next.target)
	}
}

func TestBookmarkKeysJumpTarget(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.handleMsg(key("n"))
	if !almost(next.target, 0.25) {
		t.Fatalf("expected target 0.25 at second bookmark, got %v", next.target)
	}
	next, _ = next.handleMsg(key("p"))
	if !almost(next.target, 0) {
		t.Fatalf("expected target 0 back at first bookmark, got %v", next.target)
	}
}

func TestQuitStopsScheduler(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.handleMsg(key("q"))
	if !next.quitting {
		t.Fatal("q did not quit")
	}
	if next.sched.Running() {
		t.Fatal("scheduler still running after quit")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestViewRendersElements(t *testing.T) {
	m := newTestModel(t)
	m.width = 80
	m, _ = m.handleMsg(tickMsg(time.Now()))

	out := m.View()
	for _, label := range []string{"HERO", "METER", "PULSE"} {
		if !strings.Contains(out, label) {
			t.Fatalf("view missing element %q", label)
		}
	}
	if !strings.Contains(out, "kinema playground") {
		t.Fatal("view missing title")
	}
}

func almost(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
