package game

import (
	"math/rand"

	"github.com/ewei/lexikid/internal/store"
)

// MaxDistractors is the number of wrong options offered per question.
const MaxDistractors = 3

// BuildOptions assembles the answer options for a question: up to
// MaxDistractors items from the pool plus the correct item, shuffled.
// Pool entries matching the correct item's id or Chinese name are
// dropped, as are pool entries repeating an already picked name, so
// no two options ever read the same. A thin pool just yields fewer
// options; the correct item is always present.
func BuildOptions(correct store.Item, pool []store.Item) []store.Item {
	options := make([]store.Item, 0, MaxDistractors+1)
	seen := map[string]bool{correct.NameCN: true}
	for _, it := range pool {
		if len(options) == MaxDistractors {
			break
		}
		if it.ID == correct.ID || seen[it.NameCN] {
			continue
		}
		seen[it.NameCN] = true
		options = append(options, it)
	}
	options = append(options, correct)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
