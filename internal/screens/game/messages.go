package game

import "github.com/ewei/lexikid/internal/store"

// runStartedMsg reports the outcome of Engine.StartRun.
type runStartedMsg struct {
	OK  bool
	Err error
}

// feedbackDoneMsg fires when the post-answer feedback delay elapses.
type feedbackDoneMsg struct{}

// advanceDoneMsg reports the outcome of Engine.Advance.
type advanceDoneMsg struct {
	Err error
}

// leaderboardLoadedMsg carries the top scores for the result view.
type leaderboardLoadedMsg struct {
	Records []store.SessionRecord
	Err     error
}
