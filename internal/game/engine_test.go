package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/ewei/lexikid/internal/catalog"
	"github.com/ewei/lexikid/internal/rewards"
	"github.com/ewei/lexikid/internal/store"
)

type mockItemRepo struct {
	items []store.Item

	// failSamples makes the next n Sample calls fail.
	failSamples int
}

func (m *mockItemRepo) ByCategory(ctx context.Context, c catalog.Category) ([]store.Item, error) {
	var out []store.Item
	for _, it := range m.items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockItemRepo) ByDifficulty(ctx context.Context, difficulty int) ([]store.Item, error) {
	return nil, nil
}

func (m *mockItemRepo) Sample(ctx context.Context, n int) ([]store.Item, error) {
	if m.failSamples > 0 {
		m.failSamples--
		return nil, errors.New("database locked")
	}
	items := make([]store.Item, len(m.items))
	copy(items, m.items)
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	return items, nil
}

func (m *mockItemRepo) Get(ctx context.Context, id int64) (*store.Item, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			it := m.items[i]
			return &it, nil
		}
	}
	return nil, nil
}

func (m *mockItemRepo) Categories(ctx context.Context) ([]catalog.Category, error) {
	return nil, nil
}

func (m *mockItemRepo) SetCustomImage(ctx context.Context, id int64, path string) error {
	return nil
}

func (m *mockItemRepo) Count(ctx context.Context) (int, error) {
	return len(m.items), nil
}

type mockSessionRepo struct {
	records  []store.SessionRecord
	failNext bool
}

func (m *mockSessionRepo) Append(ctx context.Context, rec store.SessionRecord) (*store.SessionRecord, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("disk full")
	}
	rec.ID = len(m.records) + 1
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	m.records = append(m.records, rec)
	return &rec, nil
}

func (m *mockSessionRepo) All(ctx context.Context) ([]store.SessionRecord, error) {
	return m.records, nil
}

func (m *mockSessionRepo) ByMode(ctx context.Context, mode string) ([]store.SessionRecord, error) {
	var out []store.SessionRecord
	for _, rec := range m.records {
		if rec.Mode == mode {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) TopScores(ctx context.Context, mode string, limit int) ([]store.SessionRecord, error) {
	recs, _ := m.ByMode(ctx, mode)
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func testItems() []store.Item {
	items := make([]store.Item, 0, 16)
	fruits := []string{"苹果", "香蕉", "橙子", "葡萄", "梨", "桃子", "西瓜", "草莓"}
	for i, name := range fruits {
		items = append(items, store.Item{
			ID:       int64(101 + i),
			NameCN:   name,
			NameEN:   name,
			Category: catalog.CategoryFruits,
		})
	}
	animals := []string{"小猫", "小狗", "兔子", "老虎", "熊猫", "大象", "猴子", "狮子"}
	for i, name := range animals {
		items = append(items, store.Item{
			ID:       int64(1 + i),
			NameCN:   name,
			NameEN:   name,
			Category: catalog.CategoryAnimals,
		})
	}
	return items
}

func startedEngine(t *testing.T, sessions *mockSessionRepo) *Engine {
	t.Helper()
	e := NewEngine(&mockItemRepo{items: testItems()}, sessions, nil)
	if err := e.SelectMode(ModeGuess); err != nil {
		t.Fatalf("select mode: %v", err)
	}
	if err := e.SelectCategory(catalog.CategoryFruits); err != nil {
		t.Fatalf("select category: %v", err)
	}
	ok, err := e.StartRun(context.Background())
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	if !ok {
		t.Fatal("start run: empty working set")
	}
	return e
}

// answerCurrent submits either the correct answer or a guaranteed
// wrong one.
func answerCurrent(t *testing.T, e *Engine, correct bool) {
	t.Helper()
	q := e.CurrentQuestion()
	if q == nil {
		t.Fatal("no current question")
	}
	id := q.Target.ID
	if !correct {
		id = -1
	}
	got, err := e.SubmitAnswer(id)
	if err != nil {
		t.Fatalf("submit answer: %v", err)
	}
	if got != correct {
		t.Fatalf("verdict = %v, want %v", got, correct)
	}
}

func TestFullRunAllCorrect(t *testing.T) {
	sessions := &mockSessionRepo{}
	e := startedEngine(t, sessions)
	ctx := context.Background()

	total := e.Run().TotalQuestions()
	if total != 8 {
		t.Fatalf("total questions = %d, want 8 (category has 8 items)", total)
	}

	for i := 0; i < total; i++ {
		if got := e.Run().QuestionNumber(); got != i+1 {
			t.Errorf("question number = %d, want %d", got, i+1)
		}
		answerCurrent(t, e, true)
		if err := e.Advance(ctx); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	if e.State() != StateResult {
		t.Fatalf("state = %s, want result", e.State())
	}
	run := e.Run()
	if run.Score != total*ScorePerCorrect {
		t.Errorf("score = %d, want %d", run.Score, total*ScorePerCorrect)
	}
	if run.CorrectCount != total {
		t.Errorf("correct = %d, want %d", run.CorrectCount, total)
	}
	if len(sessions.records) != 1 {
		t.Fatalf("records = %d, want 1", len(sessions.records))
	}
	rec := sessions.records[0]
	if rec.Mode != string(ModeGuess) || rec.Score != run.Score || rec.TotalCount != total {
		t.Errorf("record = %+v", rec)
	}
	if rec.RunID != run.ID {
		t.Errorf("record run id = %q, want %q", rec.RunID, run.ID)
	}
}

func TestWrongAnswersScoreNothing(t *testing.T) {
	sessions := &mockSessionRepo{}
	e := startedEngine(t, sessions)
	ctx := context.Background()

	total := e.Run().TotalQuestions()
	for i := 0; i < total; i++ {
		answerCurrent(t, e, i%2 == 0)
		if err := e.Advance(ctx); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	wantCorrect := (total + 1) / 2
	run := e.Run()
	if run.CorrectCount != wantCorrect {
		t.Errorf("correct = %d, want %d", run.CorrectCount, wantCorrect)
	}
	if run.Score != wantCorrect*ScorePerCorrect {
		t.Errorf("score = %d, want %d", run.Score, wantCorrect*ScorePerCorrect)
	}
}

func TestSubmitAnswerLatchesFirstPick(t *testing.T) {
	e := startedEngine(t, &mockSessionRepo{})

	answerCurrent(t, e, false)
	score := e.Run().Score

	// A later correct pick must not rescue the question.
	got, err := e.SubmitAnswer(e.CurrentQuestion().Target.ID)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if got {
		t.Error("resubmit flipped the verdict")
	}
	if e.Run().Score != score {
		t.Errorf("score changed on resubmit: %d -> %d", score, e.Run().Score)
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	e := startedEngine(t, &mockSessionRepo{})
	if err := e.Advance(context.Background()); err == nil {
		t.Fatal("expected error advancing an unanswered question")
	}
}

func TestStartRunEmptyCategory(t *testing.T) {
	e := NewEngine(&mockItemRepo{}, &mockSessionRepo{}, nil)
	if err := e.SelectMode(ModeListen); err != nil {
		t.Fatalf("select mode: %v", err)
	}
	if err := e.SelectCategory(catalog.CategoryBody); err != nil {
		t.Fatalf("select category: %v", err)
	}

	ok, err := e.StartRun(context.Background())
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	if ok {
		t.Fatal("expected no run for an empty category")
	}
	if e.State() != StateCategorySelected {
		t.Errorf("state = %s, want category_selected", e.State())
	}
}

func TestQuestionOptionsContainTarget(t *testing.T) {
	e := startedEngine(t, &mockSessionRepo{})

	q := e.CurrentQuestion()
	found := false
	for _, opt := range q.Options {
		if opt.ID == q.Target.ID {
			found = true
		}
	}
	if !found {
		t.Error("target missing from options")
	}
	if len(q.Options) < 2 {
		t.Errorf("options = %d, want at least 2", len(q.Options))
	}
}

func TestAbandonDiscardsRun(t *testing.T) {
	sessions := &mockSessionRepo{}
	e := startedEngine(t, sessions)

	answerCurrent(t, e, true)
	e.Abandon()

	if e.State() != StateMenu {
		t.Errorf("state = %s, want menu", e.State())
	}
	if e.Run() != nil {
		t.Error("run survived abandon")
	}
	if len(sessions.records) != 0 {
		t.Errorf("abandoned run was recorded: %+v", sessions.records)
	}
}

func TestAdvanceRetriesSameQuestionAfterPoolFailure(t *testing.T) {
	items := &mockItemRepo{items: testItems()}
	e := NewEngine(items, &mockSessionRepo{}, nil)
	if err := e.SelectMode(ModeGuess); err != nil {
		t.Fatalf("select mode: %v", err)
	}
	if err := e.SelectCategory(catalog.CategoryFruits); err != nil {
		t.Fatalf("select category: %v", err)
	}
	ctx := context.Background()
	if ok, err := e.StartRun(ctx); err != nil || !ok {
		t.Fatalf("start run: ok=%v err=%v", ok, err)
	}

	answerCurrent(t, e, true)
	secondTarget := e.Run().targets[1]

	items.failSamples = 1
	if err := e.Advance(ctx); err == nil {
		t.Fatal("expected pool failure")
	}
	if got := e.Run().QuestionNumber(); got != 1 {
		t.Fatalf("question number = %d after failed advance, want 1", got)
	}

	// The retry must present question 2, not skip past it.
	if err := e.Advance(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	q := e.CurrentQuestion()
	if q == nil || q.Target.ID != secondTarget.ID {
		t.Fatalf("retry presented target %v, want %d", q, secondTarget.ID)
	}
	if got := e.Run().QuestionNumber(); got != 2 {
		t.Errorf("question number = %d after retry, want 2", got)
	}

	// Finish the run; the total must match the planned set.
	total := e.Run().TotalQuestions()
	for i := 1; i < total; i++ {
		answerCurrent(t, e, true)
		if err := e.Advance(ctx); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	if rec := e.Run().Record; rec == nil || rec.TotalCount != total || rec.CorrectCount != total {
		t.Errorf("record = %+v, want %d answered of %d", rec, total, total)
	}
}

func TestLargeCategoryTruncatesToDefaultCount(t *testing.T) {
	items := testItems()
	extras := []string{"柠檬", "樱桃", "菠萝", "芒果", "椰子", "荔枝"}
	for i, name := range extras {
		items = append(items, store.Item{
			ID:       int64(109 + i),
			NameCN:   name,
			NameEN:   name,
			Category: catalog.CategoryFruits,
		})
	}

	e := NewEngine(&mockItemRepo{items: items}, &mockSessionRepo{}, nil)
	if err := e.SelectMode(ModeGuess); err != nil {
		t.Fatalf("select mode: %v", err)
	}
	if err := e.SelectCategory(catalog.CategoryFruits); err != nil {
		t.Fatalf("select category: %v", err)
	}
	ctx := context.Background()
	if ok, err := e.StartRun(ctx); err != nil || !ok {
		t.Fatalf("start run: ok=%v err=%v", ok, err)
	}

	if got := e.Run().TotalQuestions(); got != DefaultQuestionCount {
		t.Fatalf("total questions = %d, want %d (category has 14 items)", got, DefaultQuestionCount)
	}
	for _, target := range e.Run().targets {
		if target.Category != catalog.CategoryFruits {
			t.Errorf("target %d from category %q", target.ID, target.Category)
		}
	}

	for i := 0; i < DefaultQuestionCount; i++ {
		answerCurrent(t, e, true)
		if err := e.Advance(ctx); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	if rec := e.Run().Record; rec == nil || rec.TotalCount != DefaultQuestionCount {
		t.Errorf("record = %+v, want total %d", rec, DefaultQuestionCount)
	}
}

func TestAllCategoriesSamplesWholeCatalog(t *testing.T) {
	e := NewEngine(&mockItemRepo{items: testItems()}, &mockSessionRepo{}, nil)
	if err := e.SelectMode(ModeListen); err != nil {
		t.Fatalf("select mode: %v", err)
	}
	if err := e.SelectCategory(catalog.AllCategories); err != nil {
		t.Fatalf("select category: %v", err)
	}

	ok, err := e.StartRun(context.Background())
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	if !ok {
		t.Fatal("start run: empty working set")
	}

	// 16 catalog items, so a mixed run fills the default count.
	if got := e.Run().TotalQuestions(); got != DefaultQuestionCount {
		t.Fatalf("total questions = %d, want %d", got, DefaultQuestionCount)
	}
	seen := make(map[int64]bool)
	for _, target := range e.Run().targets {
		if seen[target.ID] {
			t.Errorf("target %d drawn twice", target.ID)
		}
		seen[target.ID] = true
	}
}

func TestFinishRetriesWithoutDuplicateRecord(t *testing.T) {
	sessions := &mockSessionRepo{failNext: true}
	e := startedEngine(t, sessions)
	ctx := context.Background()

	total := e.Run().TotalQuestions()
	for i := 0; i < total-1; i++ {
		answerCurrent(t, e, true)
		if err := e.Advance(ctx); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	answerCurrent(t, e, true)

	if err := e.Advance(ctx); err == nil {
		t.Fatal("expected record failure")
	}
	if e.State() != StatePlaying {
		t.Fatalf("state = %s, want playing after failed finish", e.State())
	}

	if err := e.Advance(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if e.State() != StateResult {
		t.Errorf("state = %s, want result", e.State())
	}
	if len(sessions.records) != 1 {
		t.Errorf("records = %d, want 1", len(sessions.records))
	}
}

func TestOnSessionCompletedFiresOnce(t *testing.T) {
	sessions := &mockSessionRepo{}
	e := startedEngine(t, sessions)
	ctx := context.Background()

	var completed []store.SessionRecord
	e.OnSessionCompleted = func(rec store.SessionRecord, report *rewards.Report) {
		completed = append(completed, rec)
		if report != nil {
			t.Error("expected nil report without an evaluator")
		}
	}

	total := e.Run().TotalQuestions()
	for i := 0; i < total; i++ {
		answerCurrent(t, e, true)
		if err := e.Advance(ctx); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	if len(completed) != 1 {
		t.Fatalf("callback fired %d times, want 1", len(completed))
	}
	if completed[0].Score != total*ScorePerCorrect {
		t.Errorf("callback record score = %d, want %d", completed[0].Score, total*ScorePerCorrect)
	}
}

func TestPlayAgainStartsFreshRun(t *testing.T) {
	sessions := &mockSessionRepo{}
	e := startedEngine(t, sessions)
	ctx := context.Background()

	total := e.Run().TotalQuestions()
	firstID := e.Run().ID
	for i := 0; i < total; i++ {
		answerCurrent(t, e, true)
		if err := e.Advance(ctx); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	ok, err := e.PlayAgain(ctx)
	if err != nil {
		t.Fatalf("play again: %v", err)
	}
	if !ok {
		t.Fatal("play again: empty working set")
	}
	run := e.Run()
	if run.ID == firstID {
		t.Error("play again reused the run id")
	}
	if run.Score != 0 || run.CorrectCount != 0 {
		t.Errorf("fresh run carries score %d/%d", run.Score, run.CorrectCount)
	}
	if e.State() != StatePlaying {
		t.Errorf("state = %s, want playing", e.State())
	}
	if run.Mode != ModeGuess || run.Category != catalog.CategoryFruits {
		t.Errorf("run = %s/%s, want same mode and category", run.Mode, run.Category)
	}
}

func TestLeaderboardStateRoundTrip(t *testing.T) {
	e := NewEngine(&mockItemRepo{items: testItems()}, &mockSessionRepo{}, nil)

	if err := e.OpenLeaderboard(); err != nil {
		t.Fatalf("open from menu: %v", err)
	}
	if e.State() != StateLeaderboard {
		t.Fatalf("state = %s, want leaderboard", e.State())
	}
	e.CloseLeaderboard()
	if e.State() != StateMenu {
		t.Errorf("state = %s, want menu after close", e.State())
	}

	// Not reachable mid-run.
	e2 := startedEngine(t, &mockSessionRepo{})
	if err := e2.OpenLeaderboard(); err == nil {
		t.Error("expected error opening leaderboard while playing")
	}
}

func TestLeaderboardUsesSelectedMode(t *testing.T) {
	sessions := &mockSessionRepo{records: []store.SessionRecord{
		{Mode: "guess", Score: 80},
		{Mode: "listen", Score: 90},
		{Mode: "guess", Score: 60},
	}}
	e := NewEngine(&mockItemRepo{items: testItems()}, sessions, nil)
	if err := e.SelectMode(ModeGuess); err != nil {
		t.Fatalf("select mode: %v", err)
	}

	recs, err := e.Leaderboard(context.Background(), 0)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	for _, rec := range recs {
		if rec.Mode != "guess" {
			t.Errorf("record mode = %q", rec.Mode)
		}
	}
}
