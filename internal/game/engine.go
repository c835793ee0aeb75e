package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ewei/lexikid/internal/catalog"
	"github.com/ewei/lexikid/internal/rewards"
	"github.com/ewei/lexikid/internal/store"
)

const (
	// ScorePerCorrect is the points awarded per correct answer.
	ScorePerCorrect = 10

	// DefaultQuestionCount is the run length when the working set
	// allows it.
	DefaultQuestionCount = 10

	// DistractorPoolSize is how many items are sampled to build one
	// question's wrong options.
	DistractorPoolSize = 30

	// DefaultLeaderboardSize is how many rows a leaderboard shows.
	DefaultLeaderboardSize = 10
)

// Engine drives the quiz flow: mode and category selection, the
// question loop, scoring, and run completion.
type Engine struct {
	items    store.ItemRepo
	sessions store.SessionRepo

	// evaluator, when set, runs after every recorded session so
	// unlocks land while the result screen is still up.
	evaluator *rewards.Service

	// OnSessionCompleted, when set, is called once per recorded run
	// with the stored record and the evaluation report (nil when no
	// evaluator is configured).
	OnSessionCompleted func(store.SessionRecord, *rewards.Report)

	state     State
	prevState State
	mode      Mode
	category  catalog.Category
	run       *Run

	now func() time.Time
}

// NewEngine creates an engine over the given repositories. evaluator
// may be nil.
func NewEngine(items store.ItemRepo, sessions store.SessionRepo, evaluator *rewards.Service) *Engine {
	return &Engine{
		items:     items,
		sessions:  sessions,
		evaluator: evaluator,
		state:     StateMenu,
		now:       time.Now,
	}
}

// State returns the engine's current state.
func (e *Engine) State() State {
	return e.state
}

// Mode returns the selected mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Category returns the selected category.
func (e *Engine) Category() catalog.Category {
	return e.category
}

// Run returns the active or just finished run, or nil.
func (e *Engine) Run() *Run {
	return e.run
}

// SelectMode picks the quiz mode. Valid from the menu.
func (e *Engine) SelectMode(m Mode) error {
	if e.state != StateMenu {
		return fmt.Errorf("select mode: not in menu (state %s)", e.state)
	}
	e.mode = m
	e.state = StateModeSelected
	return nil
}

// SelectCategory picks the item category, catalog.AllCategories for a
// mixed run. Valid after mode selection.
func (e *Engine) SelectCategory(c catalog.Category) error {
	if e.state != StateModeSelected {
		return fmt.Errorf("select category: no mode selected (state %s)", e.state)
	}
	e.category = c
	e.state = StateCategorySelected
	return nil
}

// StartRun builds the question set and enters play. It returns false
// without changing state when the selected category has no items.
func (e *Engine) StartRun(ctx context.Context) (bool, error) {
	if e.state != StateCategorySelected {
		return false, fmt.Errorf("start run: no category selected (state %s)", e.state)
	}

	targets, err := e.pickTargets(ctx)
	if err != nil {
		return false, err
	}
	if len(targets) == 0 {
		return false, nil
	}

	e.run = &Run{
		ID:        uuid.NewString(),
		Mode:      e.mode,
		Category:  e.category,
		targets:   targets,
		startedAt: e.now(),
	}
	if err := e.presentQuestion(ctx); err != nil {
		e.run = nil
		return false, err
	}
	e.state = StatePlaying
	return true, nil
}

// pickTargets draws up to DefaultQuestionCount items from the
// selected category, or from the whole catalog for a mixed run.
func (e *Engine) pickTargets(ctx context.Context) ([]store.Item, error) {
	if e.category == catalog.AllCategories {
		items, err := e.items.Sample(ctx, DefaultQuestionCount)
		if err != nil {
			return nil, fmt.Errorf("sample targets: %w", err)
		}
		return items, nil
	}

	items, err := e.items.ByCategory(ctx, e.category)
	if err != nil {
		return nil, fmt.Errorf("load category %q: %w", e.category, err)
	}
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	if len(items) > DefaultQuestionCount {
		items = items[:DefaultQuestionCount]
	}
	return items, nil
}

// presentQuestion builds the current target's options from a fresh
// catalog sample.
func (e *Engine) presentQuestion(ctx context.Context) error {
	target := e.run.targets[e.run.index]
	pool, err := e.items.Sample(ctx, DistractorPoolSize)
	if err != nil {
		return fmt.Errorf("sample distractor pool: %w", err)
	}
	e.run.current = &Question{
		Target:  target,
		Options: BuildOptions(target, pool),
	}
	return nil
}

// CurrentQuestion returns the question awaiting an answer, or nil.
func (e *Engine) CurrentQuestion() *Question {
	if e.state != StatePlaying || e.run == nil {
		return nil
	}
	return e.run.current
}

// SubmitAnswer records the child's pick for the current question and
// returns whether it was correct. Only the first answer per question
// counts; repeats return the latched verdict.
func (e *Engine) SubmitAnswer(itemID int64) (bool, error) {
	q := e.CurrentQuestion()
	if q == nil {
		return false, fmt.Errorf("submit answer: no active question (state %s)", e.state)
	}
	if q.Answered {
		return q.Correct, nil
	}

	q.Answered = true
	q.ChosenID = itemID
	q.Correct = itemID == q.Target.ID
	if q.Correct {
		e.run.Score += ScorePerCorrect
		e.run.CorrectCount++
	}
	return q.Correct, nil
}

// Advance moves past an answered question: on to the next one, or
// into the result state after the last. Finishing records the run and
// triggers achievement evaluation; if recording fails the run stays
// in play so Advance can be retried.
func (e *Engine) Advance(ctx context.Context) error {
	q := e.CurrentQuestion()
	if q == nil {
		return fmt.Errorf("advance: no active question (state %s)", e.state)
	}
	if !q.Answered {
		return fmt.Errorf("advance: current question not answered")
	}

	if e.run.index+1 < len(e.run.targets) {
		e.run.index++
		if err := e.presentQuestion(ctx); err != nil {
			// Stay on the answered question so the caller can retry.
			e.run.index--
			return err
		}
		return nil
	}
	return e.finish(ctx)
}

// finish records the run, evaluates achievements, and notifies the
// completion callback. Each step runs at most once, so a retry after
// a failed step never duplicates the earlier ones.
func (e *Engine) finish(ctx context.Context) error {
	if !e.run.recorded {
		rec := store.SessionRecord{
			RunID:        e.run.ID,
			Mode:         string(e.run.Mode),
			Score:        e.run.Score,
			CorrectCount: e.run.CorrectCount,
			TotalCount:   len(e.run.targets),
			DurationSecs: int(e.now().Sub(e.run.startedAt).Seconds()),
			Timestamp:    e.now(),
		}
		saved, err := e.sessions.Append(ctx, rec)
		if err != nil {
			return fmt.Errorf("record session: %w", err)
		}
		e.run.Record = saved
		e.run.recorded = true
	}

	if e.evaluator != nil && !e.run.evaluated {
		report, err := e.evaluator.Evaluate(ctx)
		if err != nil {
			return fmt.Errorf("evaluate achievements: %w", err)
		}
		e.run.Report = report
		e.run.evaluated = true
	}

	if e.OnSessionCompleted != nil && !e.run.notified {
		e.OnSessionCompleted(*e.run.Record, e.run.Report)
		e.run.notified = true
	}
	e.state = StateResult
	return nil
}

// Abandon discards the active run without recording it.
func (e *Engine) Abandon() {
	e.run = nil
	e.state = StateMenu
	e.mode = ""
	e.category = ""
}

// PlayAgain starts a fresh run with the same mode and category. Valid
// from the result state.
func (e *Engine) PlayAgain(ctx context.Context) (bool, error) {
	if e.state != StateResult {
		return false, fmt.Errorf("play again: no finished run (state %s)", e.state)
	}
	e.state = StateCategorySelected
	return e.StartRun(ctx)
}

// ToMenu returns to the menu, keeping the finished run's record.
func (e *Engine) ToMenu() {
	e.run = nil
	e.state = StateMenu
	e.mode = ""
	e.category = ""
}

// OpenLeaderboard enters the leaderboard state. Valid outside an
// active run; closing restores the state it was opened from.
func (e *Engine) OpenLeaderboard() error {
	switch e.state {
	case StateMenu, StateModeSelected, StateResult:
		e.prevState = e.state
		e.state = StateLeaderboard
		return nil
	}
	return fmt.Errorf("open leaderboard: not available (state %s)", e.state)
}

// CloseLeaderboard returns to the state the leaderboard was opened
// from.
func (e *Engine) CloseLeaderboard() {
	if e.state == StateLeaderboard {
		e.state = e.prevState
	}
}

// Leaderboard returns the top scores for the selected mode.
func (e *Engine) Leaderboard(ctx context.Context, limit int) ([]store.SessionRecord, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	return e.sessions.TopScores(ctx, string(e.mode), limit)
}
