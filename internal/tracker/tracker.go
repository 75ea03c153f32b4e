package tracker

import (
	"io"
	"log/slog"

	"github.com/roach88/cyclops/internal/chart"
	"github.com/roach88/cyclops/internal/input"
	"github.com/roach88/cyclops/internal/report"
	"github.com/roach88/cyclops/internal/stats"
	"github.com/roach88/cyclops/internal/store"
)

// SampleStore is the persistence a session needs. *store.Store implements it.
type SampleStore interface {
	Load() (store.Samples, error)
	Save(store.Samples) error
	Path() string
}

// Result is everything a session computed.
type Result struct {
	RunID   string         `json:"run_id"`
	Label   string         `json:"label"`
	Samples store.Samples  `json:"samples"`
	Added   *float64       `json:"added,omitempty"`
	Summary stats.Summary  `json:"summary"`
	Chart   chart.Artifact `json:"chart"`
}

// Tracker wires the session phases to their collaborators.
type Tracker struct {
	store    SampleStore
	renderer chart.Renderer
	ids      IDGenerator
	out      io.Writer
	logger   *slog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithIDGenerator overrides the run ID source (for testing).
func WithIDGenerator(g IDGenerator) Option {
	return func(t *Tracker) { t.ids = g }
}

// WithSummaryWriter prints the console summary to w after saving.
// Without it no summary is printed.
func WithSummaryWriter(w io.Writer) Option {
	return func(t *Tracker) { t.out = w }
}

// WithLogger sets the logger; defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// New creates a Tracker. A nil renderer renders nothing.
func New(st SampleStore, r chart.Renderer, opts ...Option) *Tracker {
	if r == nil {
		r = chart.Nop{}
	}
	t := &Tracker{
		store:    st,
		renderer: r,
		ids:      UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t
}

// Record runs a logging session: load the history, acquire today's sample,
// append it, save, then summarize, print and render.
//
// Nothing is written if Load or Acquire fails. If printing or rendering
// fails the history is already saved and the returned Result is non-nil.
func (t *Tracker) Record(label string, acq input.Acquirer) (*Result, error) {
	runID := t.ids.Generate()
	log := t.logger.With("run", runID, "label", label)

	samples, err := t.load(log)
	if err != nil {
		return nil, &StageError{Stage: StageLoad, RunID: runID, Err: err}
	}

	v, err := acq.Acquire(report.Prompt(label))
	if err != nil {
		log.Debug("no sample recorded", "error", err)
		return nil, &StageError{Stage: StageAcquire, RunID: runID, Err: err}
	}

	updated := samples.Append(v)
	if err := t.store.Save(updated); err != nil {
		log.Error("save failed", "path", t.store.Path(), "error", err)
		return nil, &StageError{Stage: StageSave, RunID: runID, Err: err}
	}
	added, _ := updated.Last()
	log.Debug("sample recorded", "weight", added, "sessions", len(updated), "path", t.store.Path())

	res := &Result{RunID: runID, Label: label, Samples: updated, Added: &added}
	return t.finish(log, res)
}

// Report summarizes and renders the existing history without modifying it.
// An empty history fails at StageSummarize with stats.ErrEmpty.
func (t *Tracker) Report(label string) (*Result, error) {
	runID := t.ids.Generate()
	log := t.logger.With("run", runID, "label", label)

	samples, err := t.load(log)
	if err != nil {
		return nil, &StageError{Stage: StageLoad, RunID: runID, Err: err}
	}

	return t.finish(log, &Result{RunID: runID, Label: label, Samples: samples})
}

func (t *Tracker) load(log *slog.Logger) (store.Samples, error) {
	samples, err := t.store.Load()
	if err != nil {
		log.Error("load failed", "path", t.store.Path(), "error", err)
		return nil, err
	}
	log.Debug("history loaded", "path", t.store.Path(), "sessions", len(samples))
	return samples, nil
}

// finish runs the read-only tail shared by Record and Report.
func (t *Tracker) finish(log *slog.Logger, res *Result) (*Result, error) {
	summary, err := stats.Summarize(res.Samples)
	if err != nil {
		return nil, &StageError{Stage: StageSummarize, RunID: res.RunID, Err: err}
	}
	res.Summary = summary

	if t.out != nil {
		if err := report.PrintSummary(t.out, res.Label, summary); err != nil {
			return res, &StageError{Stage: StagePrint, RunID: res.RunID, Err: err}
		}
	}

	art, err := t.renderer.Render(res.Label, res.Samples)
	if err != nil {
		log.Warn("chart not rendered", "error", err)
		return res, &StageError{Stage: StageRender, RunID: res.RunID, Err: err}
	}
	res.Chart = art
	if art.Path != "" {
		log.Debug("chart written", "path", art.Path, "format", art.Format, "bytes", art.Bytes)
	}

	return res, nil
}
