package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/okrete/kinema/internal/frame"
	"github.com/okrete/kinema/internal/scene"
	"github.com/okrete/kinema/internal/style"
)

const (
	scrubStep    = 0.05
	autoplayRate = 0.2 // progress per second
)

// elementView is the post-write snapshot of one element, taken inside
// the frame's post-write phase so View never reads half-written state.
type elementView struct {
	label string
	props map[string]string
}

// Model is the Bubbletea model for the kinema playground. Displayed
// progress glides toward the scrub target on a spring; every tick fires
// one scheduler cycle: read viewport, write properties, snapshot.
type Model struct {
	scene *scene.Scene
	sched *frame.Scheduler
	pump  *frame.ManualPump

	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64

	playing   bool
	direction float64
	elapsed   time.Duration

	width    int
	avail    int
	snapshot []elementView
	frames   int

	bar      progress.Model
	quitting bool
}

// New creates a playground model over a compiled scene.
func New(sc *scene.Scene) Model {
	pump := &frame.ManualPump{}
	sched := frame.NewScheduler(pump)
	sched.Start()

	bar := progress.New(
		progress.WithScaledGradient("#5A56E0", "#EE6FF8"),
		progress.WithoutPercentage(),
	)

	return Model{
		scene:     sc,
		sched:     sched,
		pump:      pump,
		spring:    harmonica.NewSpring(harmonica.FPS(sc.FPS), 7.0, 0.9),
		direction: 1,
		bar:       bar,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.scene.FPS), tea.SetWindowTitle(m.scene.Title))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			m.sched.Stop()
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		switch msg.String() {
		case " ":
			m.playing = !m.playing
		case "left", "h":
			m.playing = false
			m.target = clampTarget(m.target - scrubStep)
		case "right", "l":
			m.playing = false
			m.target = clampTarget(m.target + scrubStep)
		case "n":
			m.playing = false
			if m.scene.Stops.Advance() {
				m.target = m.scene.Stops.Current().Progress
			}
		case "p":
			m.playing = false
			if m.scene.Stops.Previous() {
				m.target = m.scene.Stops.Current().Progress
			}
		case "r":
			m.playing = false
			m.target = 0
			m.scene.Stops.Jump(0)
		}
		return m, nil

	case tickMsg:
		if m.playing {
			m.target += m.direction * autoplayRate / float64(m.scene.FPS)
			if m.target >= 1 {
				m.target = 1
				m.direction = -1
			} else if m.target <= 0 {
				m.target = 0
				m.direction = 1
			}
			m.elapsed += time.Second / time.Duration(m.scene.FPS)
		}
		m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
		m = m.runFrame(time.Time(msg))
		return m, tickCmd(m.scene.FPS)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 10
		if m.bar.Width < 20 {
			m.bar.Width = 20
		}
		if m.bar.Width > 60 {
			m.bar.Width = 60
		}
		return m, nil
	}

	return m, nil
}

// runFrame queues the three phases for this frame and fires the pump.
// The read phase measures the viewport, the write phase drives every
// binder, and the post-write phase snapshots element properties for View.
func (m Model) runFrame(now time.Time) Model {
	var avail int
	var snap []elementView

	width, pos, sc := m.width, m.pos, m.scene
	m.sched.Read(func(time.Time) { avail = usableWidth(width) })
	m.sched.Write(func(time.Time) { sc.Update(pos) })
	m.sched.PostWrite(func(time.Time) { snap = snapshotElements(sc.Doc) })
	m.pump.Fire(now)

	m.avail = avail
	m.snapshot = snap
	m.frames++
	return m
}

func usableWidth(width int) int {
	w := width - 4
	if w < 40 {
		w = 40
	}
	return w
}

func snapshotElements(doc *style.Document) []elementView {
	elements := doc.Elements()
	snap := make([]elementView, len(elements))
	for i, el := range elements {
		snap[i] = elementView{label: el.Label(), props: el.Properties()}
	}
	return snap
}

func clampTarget(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
