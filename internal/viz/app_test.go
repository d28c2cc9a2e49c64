package viz

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/ratiolab/internal/feedback"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recorder struct {
	cues []feedback.Cue
}

func (r *recorder) Notify(c feedback.Cue) { r.cues = append(r.cues, c) }

func (r *recorder) count(c feedback.Cue) int {
	n := 0
	for _, x := range r.cues {
		if x == c {
			n++
		}
	}
	return n
}

type harness struct {
	app    App
	cues   *recorder
	copied string
	logs   *observer.ObservedLogs
}

func newHarness(t *testing.T, clip func(string) error) *harness {
	t.Helper()
	h := &harness{cues: &recorder{}}
	core, logs := observer.New(zap.InfoLevel)
	h.logs = logs
	if clip == nil {
		clip = func(s string) error {
			h.copied = s
			return nil
		}
	}
	app, err := NewApp(Options{
		Theme:     "song",
		FPS:       60,
		ExportDir: t.TempDir(),
		Notifier:  h.cues,
		Logger:    zap.New(core),
		Clipboard: clip,
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	h.app = app
	return h
}

func (h *harness) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		m, _ := h.app.Update(msg)
		h.app = m.(App)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAdvanceFocused(t *testing.T) {
	h := newHarness(t, nil)
	h.send(key(" "))

	if got := h.app.panels[0].Controller().Step(); got != 1 {
		t.Errorf("root2 step = %d, want 1", got)
	}
	if got := h.app.panels[1].Controller().Step(); got != 0 {
		t.Errorf("golden step = %d, want 0", got)
	}
	if h.cues.count(feedback.Swoosh) != 1 {
		t.Errorf("cues = %v, want one swoosh", h.cues.cues)
	}

	h.send(key("tab"), key(" "), key("2"))
	if got := h.app.panels[1].Controller().Step(); got != 2 {
		t.Errorf("golden step = %d, want 2", got)
	}
}

func TestAdvanceStopsAtMax(t *testing.T) {
	h := newHarness(t, nil)
	for i := 0; i < 10; i++ {
		h.send(key("1"))
	}
	if got := h.app.panels[0].Controller().Step(); got != 7 {
		t.Errorf("root2 step = %d, want 7", got)
	}
	if n := h.cues.count(feedback.Swoosh); n != 7 {
		t.Errorf("swoosh cues = %d, want 7", n)
	}
	if !strings.Contains(h.app.status, "fully subdivided") {
		t.Errorf("status = %q", h.app.status)
	}
}

func TestReset(t *testing.T) {
	h := newHarness(t, nil)
	h.send(key("tab"), key(" "), key(" "), key(" "), key("r"))

	if got := h.app.panels[1].Controller().Step(); got != 0 {
		t.Errorf("golden step = %d, want 0", got)
	}
	if h.cues.count(feedback.Pop) != 1 {
		t.Errorf("cues = %v, want one pop", h.cues.cues)
	}
}

func TestOverlaysClick(t *testing.T) {
	tests := []struct {
		key   string
		title string
	}{
		{"c", "COMPARISON"},
		{"d", "DERIVATION"},
		{"a", "ARCHITECTURE"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			h := newHarness(t, nil)
			h.send(key(tt.key))
			if h.cues.count(feedback.Click) != 1 {
				t.Errorf("cues = %v, want one click", h.cues.cues)
			}
			if !strings.Contains(h.app.View(), tt.title) {
				t.Errorf("view missing %q", tt.title)
			}
			h.send(key("esc"))
			if h.app.overlay != overlayNone {
				t.Error("esc did not close the overlay")
			}
		})
	}
}

func TestViewShowsCaptions(t *testing.T) {
	h := newHarness(t, nil)
	v := h.app.View()
	for _, want := range []string{"Halve (A0 → A1)", "Remove square", "1:1.414", "1:1.618", "step 0 / 7", "step 0 / 8"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}

	h.send(key("2"))
	if !strings.Contains(h.app.View(), "Remove square (1)") {
		t.Error("golden caption did not count the removed square")
	}
}

func TestExport(t *testing.T) {
	h := newHarness(t, nil)
	h.send(key("1"), key("e"))

	path := filepath.Join(h.app.exportDir, "ratiolab_root2-1_golden-0.svg")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("export not written: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Errorf("export is not SVG: %.80s", data)
	}
	if !strings.Contains(h.app.status, "saved") {
		t.Errorf("status = %q", h.app.status)
	}
}

func TestCopyActive(t *testing.T) {
	h := newHarness(t, nil)
	h.send(key("y"))
	if !strings.HasPrefix(h.copied, "<rect") {
		t.Errorf("copied %q", h.copied)
	}
}

func TestCopyFailureIsLogged(t *testing.T) {
	h := newHarness(t, func(string) error { return errors.New("no clipboard") })
	h.send(key("y"))

	if !strings.Contains(h.app.status, "copy failed") {
		t.Errorf("status = %q", h.app.status)
	}
	if h.logs.FilterMessage("clipboard copy failed").Len() != 1 {
		t.Error("copy failure not logged")
	}
}

func TestSpringSettlesOnActive(t *testing.T) {
	h := newHarness(t, nil)
	h.send(key("1"))

	target := h.app.target(0)
	if h.app.springs[0].rect() == target {
		t.Fatal("spring jumped without animating")
	}
	for i := 0; i < 300; i++ {
		h.send(TickMsg(time.Now()))
	}
	got := h.app.springs[0].rect()
	if math.Abs(got.W-target.W) > 0.1 || math.Abs(got.H-target.H) > 0.1 {
		t.Errorf("spring = %v, want %v", got, target)
	}
}

func TestConvergenceSeries(t *testing.T) {
	r2, g := ConvergenceSeries()
	if len(r2) != 8 || len(g) != 9 {
		t.Fatalf("len = %d, %d", len(r2), len(g))
	}
	if r2[0] != 1 || g[0] != 1 {
		t.Error("series not normalised")
	}
	if math.Abs(r2[1]-1/math.Sqrt2) > 1e-9 {
		t.Errorf("root2 ratio = %v", r2[1])
	}
	if math.Abs(g[1]-1/math.Phi) > 1e-9 {
		t.Errorf("golden ratio = %v", g[1])
	}
	if ComparisonChart(40, 6) == "" {
		t.Error("empty chart")
	}
}
