package rewards

// Requirement kinds the evaluator understands. Seed data may carry
// kinds outside this set; those achievements stay locked and show up
// in the evaluation report as skipped.
const (
	KindLearnedCount      = "learned_count"
	KindGameCount         = "game_count"
	KindContinuousDays    = "continuous_days"
	KindCategoriesLearned = "categories_learned"
	KindPerfectAnswer     = "perfect_answer"
)

// KnownKind reports whether the evaluator implements the given kind.
func KnownKind(kind string) bool {
	switch kind {
	case KindLearnedCount, KindGameCount, KindContinuousDays,
		KindCategoriesLearned, KindPerfectAnswer:
		return true
	}
	return false
}
