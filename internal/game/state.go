package game

import (
	"time"

	"github.com/ewei/lexikid/internal/catalog"
	"github.com/ewei/lexikid/internal/rewards"
	"github.com/ewei/lexikid/internal/store"
)

// Mode is a quiz flavor. It decides how a question is presented, not
// how it is scored.
type Mode string

const (
	// ModeGuess shows the English word and description and asks for
	// the matching Chinese name.
	ModeGuess Mode = "guess"

	// ModeListen plays the Chinese audio cue and asks for the
	// matching item.
	ModeListen Mode = "listen"
)

// Modes lists the playable modes in menu order.
func Modes() []Mode {
	return []Mode{ModeGuess, ModeListen}
}

// DisplayName returns the child-facing label for a mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeGuess:
		return "看图猜词"
	case ModeListen:
		return "听音辨物"
	}
	return string(m)
}

// State is the engine's position in the quiz flow.
type State int

const (
	StateMenu State = iota
	StateModeSelected
	StateCategorySelected
	StatePlaying
	StateResult
	StateLeaderboard
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateModeSelected:
		return "mode_selected"
	case StateCategorySelected:
		return "category_selected"
	case StatePlaying:
		return "playing"
	case StateResult:
		return "result"
	case StateLeaderboard:
		return "leaderboard"
	}
	return "unknown"
}

// Question is one quiz prompt with its shuffled answer options.
type Question struct {
	Target  store.Item
	Options []store.Item

	Answered bool
	ChosenID int64
	Correct  bool
}

// Run is one quiz playthrough.
type Run struct {
	ID       string
	Mode     Mode
	Category catalog.Category

	// targets are the items still to be asked, in ask order. The
	// question at index is current.
	targets []store.Item
	index   int

	current *Question

	Score        int
	CorrectCount int

	// Record is the stored session row, set once the run finishes.
	Record *store.SessionRecord

	// Report is the achievement evaluation triggered by finishing,
	// nil when no evaluator is wired in.
	Report *rewards.Report

	startedAt time.Time
	recorded  bool
	evaluated bool
	notified  bool
}

// TotalQuestions returns the number of questions in the run.
func (r *Run) TotalQuestions() int {
	return len(r.targets)
}

// QuestionNumber returns the 1-based index of the current question.
func (r *Run) QuestionNumber() int {
	return r.index + 1
}
