package game

import (
	"fmt"
	"testing"

	"github.com/ewei/lexikid/internal/catalog"
	"github.com/ewei/lexikid/internal/store"
)

func poolOf(n int) []store.Item {
	pool := make([]store.Item, n)
	for i := range pool {
		pool[i] = store.Item{
			ID:     int64(i + 1),
			NameCN: fmt.Sprintf("词%d", i+1),
			NameEN: fmt.Sprintf("word%d", i+1),
		}
	}
	return pool
}

func TestBuildOptions(t *testing.T) {
	correct := store.Item{ID: 500, NameCN: "苹果", NameEN: "apple", Category: catalog.CategoryFruits}
	options := BuildOptions(correct, poolOf(30))

	if len(options) != MaxDistractors+1 {
		t.Fatalf("options = %d, want %d", len(options), MaxDistractors+1)
	}
	found := 0
	names := make(map[string]bool)
	for _, opt := range options {
		if opt.ID == correct.ID {
			found++
		}
		if names[opt.NameCN] {
			t.Errorf("duplicate option name %q", opt.NameCN)
		}
		names[opt.NameCN] = true
	}
	if found != 1 {
		t.Errorf("correct item appears %d times, want 1", found)
	}
}

func TestBuildOptionsExcludesCorrectFromPool(t *testing.T) {
	pool := poolOf(30)
	correct := pool[4]

	for i := 0; i < 20; i++ {
		options := BuildOptions(correct, pool)
		found := 0
		for _, opt := range options {
			if opt.ID == correct.ID {
				found++
			}
		}
		if found != 1 {
			t.Fatalf("correct item appears %d times, want 1", found)
		}
	}
}

func TestBuildOptionsDedupsByName(t *testing.T) {
	// Two pool entries share a Chinese name; only one may survive.
	pool := []store.Item{
		{ID: 1, NameCN: "香蕉"},
		{ID: 2, NameCN: "香蕉"},
		{ID: 3, NameCN: "橙子"},
		{ID: 4, NameCN: "梨"},
	}
	correct := store.Item{ID: 500, NameCN: "苹果"}

	options := BuildOptions(correct, pool)
	names := make(map[string]int)
	for _, opt := range options {
		names[opt.NameCN]++
	}
	for name, n := range names {
		if n > 1 {
			t.Errorf("name %q appears %d times", name, n)
		}
	}
	if len(options) != 4 {
		t.Errorf("options = %d, want 4", len(options))
	}
}

func TestBuildOptionsThinPool(t *testing.T) {
	correct := store.Item{ID: 500, NameCN: "苹果"}

	options := BuildOptions(correct, poolOf(1))
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}

	options = BuildOptions(correct, nil)
	if len(options) != 1 || options[0].ID != correct.ID {
		t.Fatalf("options = %+v, want just the correct item", options)
	}
}
