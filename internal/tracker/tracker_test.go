package tracker

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cyclops/internal/chart"
	"github.com/roach88/cyclops/internal/input"
	"github.com/roach88/cyclops/internal/stats"
	"github.com/roach88/cyclops/internal/store"
	"github.com/roach88/cyclops/internal/testutil"
)

var errRender = errors.New("display unavailable")

type failingRenderer struct{}

func (failingRenderer) Render(string, []float64) (chart.Artifact, error) {
	return chart.Artifact{}, errRender
}

// recordingRenderer captures what it was asked to draw.
type recordingRenderer struct {
	label   string
	samples []float64
	calls   int
}

func (r *recordingRenderer) Render(label string, samples []float64) (chart.Artifact, error) {
	r.calls++
	r.label = label
	r.samples = append([]float64(nil), samples...)
	return chart.Nop{}.Render(label, samples)
}

func newTestTracker(st SampleStore, r chart.Renderer, out *bytes.Buffer) *Tracker {
	opts := []Option{WithIDGenerator(testutil.NewFixedIDGenerator("run-1"))}
	if out != nil {
		opts = append(opts, WithSummaryWriter(out))
	}
	return New(st, r, opts...)
}

func TestRecord_FirstSessionCreatesStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	var out bytes.Buffer
	tr := newTestTracker(store.New(path), nil, &out)

	res, err := tr.Record("squat", input.Fixed(135))
	require.NoError(t, err)

	assert.Equal(t, "[135]\n", testutil.ReadStoreFile(t, path))
	assert.Equal(t, "run-1", res.RunID)
	assert.Equal(t, store.Samples{135}, res.Samples)
	require.NotNil(t, res.Added)
	assert.Equal(t, 135.0, *res.Added)
	assert.Equal(t, stats.Summary{Count: 1, Average: 135, PersonalRecord: 135}, res.Summary)

	assert.Contains(t, out.String(), "Sessions: 1\n")
	assert.Contains(t, out.String(), "Average: 135.0 lbs\n")
	assert.Contains(t, out.String(), "PR: 135 lbs\n")
}

func TestRecord_AppendsToHistory(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteStoreFile(t, dir, "data.json", "[135, 140]")
	var out bytes.Buffer
	tr := newTestTracker(store.New(path), nil, &out)

	res, err := tr.Record("squat", input.Fixed(150))
	require.NoError(t, err)

	assert.Equal(t, "[135, 140, 150]\n", testutil.ReadStoreFile(t, path))
	assert.Equal(t, 3, res.Summary.Count)
	assert.Contains(t, out.String(), "Sessions: 3\n")
	assert.Contains(t, out.String(), "Average: 141.7 lbs\n")
	assert.Contains(t, out.String(), "PR: 150 lbs\n")
}

func TestRecord_PRIsHistoricalMax(t *testing.T) {
	m := testutil.NewMemoryStore(200, 150, 225)
	var out bytes.Buffer
	tr := newTestTracker(m, nil, &out)

	res, err := tr.Record("deadlift", input.Fixed(100))
	require.NoError(t, err)

	assert.Equal(t, store.Samples{200, 150, 225, 100}, m.Samples)
	assert.Equal(t, 225.0, res.Summary.PersonalRecord)
	assert.Contains(t, out.String(), "PR: 225 lbs\n")
}

func TestRecord_PromptUsesLabel(t *testing.T) {
	var prompt bytes.Buffer
	tr := newTestTracker(testutil.NewMemoryStore(), nil, nil)

	_, err := tr.Record("squat", input.NewPrompter(strings.NewReader("135\n"), &prompt))
	require.NoError(t, err)
	assert.Equal(t, "Enter today's squat weight (lbs): ", prompt.String())
}

func TestRecord_InvalidInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteStoreFile(t, dir, "data.json", "[135, 140]")
	var out bytes.Buffer
	r := &recordingRenderer{}
	tr := newTestTracker(store.New(path), r, &out)

	res, err := tr.Record("squat", input.NewPrompter(strings.NewReader("heavy\n"), &bytes.Buffer{}))
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, StageAcquire, StageOf(err))
	assert.ErrorIs(t, err, input.ErrInvalidInput)
	assert.False(t, Persisted(err))

	assert.Equal(t, "[135, 140]", testutil.ReadStoreFile(t, path))
	assert.Empty(t, out.String())
	assert.Zero(t, r.calls)
}

func TestRecord_MalformedStoreAborts(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteStoreFile(t, dir, "data.json", "[135, oops")
	tr := newTestTracker(store.New(path), nil, nil)

	_, err := tr.Record("squat", input.Fixed(150))
	require.Error(t, err)
	assert.Equal(t, StageLoad, StageOf(err))
	assert.ErrorIs(t, err, store.ErrMalformed)

	// History is never replaced by a fresh list.
	assert.Equal(t, "[135, oops", testutil.ReadStoreFile(t, path))
}

func TestRecord_SaveFailure(t *testing.T) {
	m := testutil.NewMemoryStore(135)
	m.FailSave = true
	var out bytes.Buffer
	tr := newTestTracker(m, nil, &out)

	res, err := tr.Record("squat", input.Fixed(140))
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, StageSave, StageOf(err))
	assert.ErrorIs(t, err, testutil.ErrSaveFailed)
	assert.Empty(t, out.String(), "no summary for an unsaved session")
}

func TestRecord_RenderFailureAfterSave(t *testing.T) {
	m := testutil.NewMemoryStore(135)
	var out bytes.Buffer
	tr := newTestTracker(m, failingRenderer{}, &out)

	res, err := tr.Record("squat", input.Fixed(140))
	require.Error(t, err)
	assert.Equal(t, StageRender, StageOf(err))
	assert.True(t, Persisted(err))
	assert.ErrorIs(t, err, errRender)

	require.NotNil(t, res)
	assert.Equal(t, 2, res.Summary.Count)
	assert.Equal(t, store.Samples{135, 140}, m.Samples)
	assert.Contains(t, out.String(), "Sessions: 2\n")
}

func TestRecord_RendersFullHistory(t *testing.T) {
	r := &recordingRenderer{}
	tr := newTestTracker(testutil.NewMemoryStore(135, 140), r, nil)

	res, err := tr.Record("squat", input.Fixed(150))
	require.NoError(t, err)

	assert.Equal(t, 1, r.calls)
	assert.Equal(t, "squat", r.label)
	assert.Equal(t, []float64{135, 140, 150}, r.samples)
	assert.Equal(t, []chart.Point{{X: 1, Y: 135}, {X: 2, Y: 140}, {X: 3, Y: 150}}, res.Chart.Points)
}

func TestRecord_FileRenderer(t *testing.T) {
	dir := t.TempDir()
	r, err := chart.NewFileRenderer(filepath.Join(dir, "progress.svg"))
	require.NoError(t, err)
	tr := newTestTracker(store.New(filepath.Join(dir, "data.json")), r, nil)

	res, err := tr.Record("squat", input.Fixed(135))
	require.NoError(t, err)
	assert.Equal(t, chart.FormatSVG, res.Chart.Format)
	assert.Contains(t, testutil.ReadStoreFile(t, res.Chart.Path), "Squat Progress")
}

func TestReport_DoesNotModifyHistory(t *testing.T) {
	m := testutil.NewMemoryStore(135, 140, 150)
	var out bytes.Buffer
	tr := newTestTracker(m, nil, &out)

	res, err := tr.Report("squat")
	require.NoError(t, err)

	assert.Nil(t, res.Added)
	assert.Zero(t, m.Saves)
	assert.Equal(t, 3, res.Summary.Count)
	assert.Contains(t, out.String(), "Average: 141.7 lbs\n")
}

func TestReport_EmptyHistory(t *testing.T) {
	tr := newTestTracker(testutil.NewMemoryStore(), nil, nil)

	_, err := tr.Report("squat")
	require.Error(t, err)
	assert.Equal(t, StageSummarize, StageOf(err))
	assert.ErrorIs(t, err, stats.ErrEmpty)
}

func TestReport_LoadError(t *testing.T) {
	m := testutil.NewMemoryStore()
	m.LoadErr = errors.New("disk gone")
	tr := newTestTracker(m, nil, nil)

	_, err := tr.Report("squat")
	assert.Equal(t, StageLoad, StageOf(err))
}

func TestStageError_Message(t *testing.T) {
	err := &StageError{Stage: StageSave, RunID: "run-1", Err: errors.New("disk full")}
	assert.Equal(t, "SAVE: disk full", err.Error())
	assert.Equal(t, Stage(""), StageOf(errors.New("other")))
}

func TestUUIDv7Generator(t *testing.T) {
	id := UUIDv7Generator{}.Generate()
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}$`, id)
	assert.NotEqual(t, id, UUIDv7Generator{}.Generate())
}
