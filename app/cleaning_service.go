// Package app wires the cleaning core together: it owns the current
// baseline dataset, the pending action queue, and the single state
// transition that commits a preview as the new baseline.
package app

import (
	"context"
	"sync"

	"goscrub/domain/cleaning"
	"goscrub/domain/core"
	"goscrub/domain/dataset"
	"goscrub/internal"
	"goscrub/internal/export"
	"goscrub/internal/inference"
	"goscrub/internal/pipeline"
	"goscrub/internal/profile"
	"goscrub/ports"
)

// Summary is the serializable dataset overview consumed by downstream
// collaborators (dashboard panels, the AI question-answering feature).
type Summary struct {
	DatasetID  string           `json:"dataset_id"`
	Name       string           `json:"name"`
	Columns    []dataset.Column `json:"columns"`
	SampleRows []dataset.Row    `json:"sample_rows"`
	Quality    profile.Quality  `json:"quality"`
}

// QueueItem describes one queued action for UI display
type QueueItem struct {
	ID          string              `json:"id"`
	Description string              `json:"description"`
	Spec        cleaning.ActionSpec `json:"spec"`
}

// CleaningService holds one editing session: an immutable baseline
// dataset plus the mutable recipe pending against it. Every queue
// mutation recomputes the whole preview from the baseline; nothing is
// cached between mutations.
type CleaningService struct {
	mu sync.Mutex

	inference  *inference.Engine
	profiler   *profile.Profiler
	executor   *pipeline.Executor
	serializer *export.Serializer
	recipes    ports.RecipeRepository
	log        *internal.Logger

	baseline *dataset.Dataset
	queue    *cleaning.Queue
	preview  *dataset.PreviewDataset
}

// NewCleaningService creates a session service. The recipe repository may
// be nil when persistence is disabled.
func NewCleaningService(engine *inference.Engine, profiler *profile.Profiler, recipes ports.RecipeRepository, log *internal.Logger) *CleaningService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &CleaningService{
		inference:  engine,
		profiler:   profiler,
		executor:   pipeline.NewExecutor(),
		serializer: export.NewSerializer(),
		recipes:    recipes,
		log:        log,
		queue:      cleaning.NewQueue(),
	}
}

// LoadDataset installs a new baseline, infers column types, and resets
// the queue.
func (s *CleaningService) LoadDataset(d *dataset.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inference.InferDataset(d)
	s.baseline = d
	s.queue.Clear()
	s.recompute()
	s.log.Info("dataset %s loaded: %d columns, %d rows", d.ID, len(d.Columns), len(d.Rows))
}

// Dataset returns the current baseline dataset
func (s *CleaningService) Dataset() *dataset.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseline
}

// Preview returns the current annotated preview
func (s *CleaningService) Preview() *dataset.PreviewDataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}

// Queue returns the queued actions for display
func (s *CleaningService) Queue() []QueueItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	actions := s.queue.Actions()
	items := make([]QueueItem, len(actions))
	for i, a := range actions {
		items[i] = QueueItem{
			ID:          a.ID().String(),
			Description: cleaning.Describe(a),
			Spec:        cleaning.ToSpec(a),
		}
	}
	return items
}

// Propose validates and queues a new action, recomputing the preview on
// acceptance. Redundancy rejections come back in the proposal, not as an
// error; construction failures (bad payloads) are errors.
func (s *CleaningService) Propose(spec cleaning.ActionSpec) (cleaning.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.baseline == nil {
		return cleaning.Proposal{}, core.ErrDatasetNotFound
	}
	action, err := cleaning.FromSpec(spec)
	if err != nil {
		return cleaning.Proposal{}, err
	}

	proposal := s.queue.Propose(action)
	if proposal.Accepted {
		s.recompute()
		s.log.Debug("action %s queued: %s", action.ID(), cleaning.Describe(action))
	} else {
		s.log.Debug("action rejected: %s", proposal.Reason)
	}
	return proposal, nil
}

// Remove deletes a queued action and recomputes the preview
func (s *CleaningService) Remove(id core.ActionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.queue.Remove(id); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// Reorder rearranges the queue and recomputes the preview
func (s *CleaningService) Reorder(ids []core.ActionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.queue.Reorder(ids); err != nil {
		return err
	}
	s.recompute()
	return nil
}

// ClearQueue discards every pending action
func (s *CleaningService) ClearQueue() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue.Clear()
	s.recompute()
}

// Apply commits the current preview as the new baseline dataset and
// clears the queue. This is the only transition that is not a pure
// function of its inputs: dropped columns disappear for real, types are
// re-inferred, and the preview resets to the unchanged state.
func (s *CleaningService) Apply() (*dataset.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.baseline == nil {
		return nil, core.ErrDatasetNotFound
	}

	columns := s.preview.EffectiveColumns()
	committed := make([]dataset.Column, len(columns))
	for i, c := range columns {
		committed[i] = dataset.Column{Name: c.Name}
	}

	rows := make([]dataset.Row, len(s.preview.Rows))
	for i, previewRow := range s.preview.Rows {
		row := make(dataset.Row, len(committed))
		for _, c := range committed {
			row[c.Name] = previewRow[c.Name].Value
		}
		rows[i] = row
	}

	next := dataset.New(s.baseline.Name, committed, rows)
	s.inference.InferDataset(next)

	s.baseline = next
	s.queue.Clear()
	s.recompute()
	s.log.Info("recipe applied: dataset %s is the new baseline (%d columns, %d rows)",
		next.ID, len(next.Columns), len(next.Rows))
	return next, nil
}

// Profile computes the statistical report for the current baseline
func (s *CleaningService) Profile() (*profile.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.baseline == nil {
		return nil, core.ErrDatasetNotFound
	}
	return s.profiler.Profile(s.baseline), nil
}

// Export renders the current preview as CSV with a suggested filename
func (s *CleaningService) Export() (filename, content string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.baseline == nil {
		return "", "", core.ErrDatasetNotFound
	}
	content, err = s.serializer.Serialize(s.preview)
	if err != nil {
		return "", "", err
	}
	return s.serializer.Filename(s.baseline.Name), content, nil
}

// Summary exposes columns, sample rows, and quality in a serializable
// form for downstream consumers.
func (s *CleaningService) Summary() (*Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.baseline == nil {
		return nil, core.ErrDatasetNotFound
	}

	sample := s.baseline.Rows
	if len(sample) > 5 {
		sample = sample[:5]
	}
	report := s.profiler.Profile(s.baseline)
	return &Summary{
		DatasetID:  s.baseline.ID.String(),
		Name:       s.baseline.Name,
		Columns:    s.baseline.Columns,
		SampleRows: sample,
		Quality:    report.Quality,
	}, nil
}

// SaveRecipe persists the current queue under a name
func (s *CleaningService) SaveRecipe(ctx context.Context, name string) (*cleaning.Recipe, error) {
	s.mu.Lock()
	recipe := cleaning.NewRecipe(name, s.queue.Actions())
	s.mu.Unlock()

	if s.recipes == nil {
		return nil, core.ErrRecipeNotFound
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	s.log.Info("recipe %q saved with %d actions", name, len(recipe.Actions))
	return recipe, nil
}

// ReplayRecipe proposes every action of a saved recipe in order. Actions
// made redundant by the current queue are skipped; their proposals are
// returned so the caller can surface them.
func (s *CleaningService) ReplayRecipe(ctx context.Context, id core.RecipeID) ([]cleaning.Proposal, error) {
	if s.recipes == nil {
		return nil, core.ErrRecipeNotFound
	}
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	proposals := make([]cleaning.Proposal, 0, len(recipe.Actions))
	for _, spec := range recipe.Actions {
		proposal, err := s.Propose(spec)
		if err != nil {
			return proposals, err
		}
		proposals = append(proposals, proposal)
	}
	return proposals, nil
}

// recompute re-executes the whole queue against the baseline. Callers
// hold the mutex.
func (s *CleaningService) recompute() {
	if s.baseline == nil {
		s.preview = nil
		return
	}
	s.preview = s.executor.Execute(s.baseline, s.queue.Actions())
}
