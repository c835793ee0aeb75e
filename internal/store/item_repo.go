package store

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ewei/lexikid/ent"
	"github.com/ewei/lexikid/ent/item"
	"github.com/ewei/lexikid/internal/catalog"
)

type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) ByCategory(ctx context.Context, c catalog.Category) ([]Item, error) {
	rows, err := r.client.Item.Query().
		Where(item.Category(string(c))).
		Order(ent.Asc(item.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items by category: %w", err)
	}
	return itemsFromEnt(rows), nil
}

func (r *itemRepo) ByDifficulty(ctx context.Context, difficulty int) ([]Item, error) {
	rows, err := r.client.Item.Query().
		Where(item.Difficulty(difficulty)).
		Order(ent.Asc(item.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items by difficulty: %w", err)
	}
	return itemsFromEnt(rows), nil
}

// Sample loads the whole catalog and shuffles in process. The catalog
// is a few hundred rows at most, so this beats driver-specific
// ORDER BY RANDOM().
func (r *itemRepo) Sample(ctx context.Context, n int) ([]Item, error) {
	rows, err := r.client.Item.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items for sample: %w", err)
	}
	items := itemsFromEnt(rows)
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	return items, nil
}

func (r *itemRepo) Get(ctx context.Context, id int64) (*Item, error) {
	row, err := r.client.Item.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	it := itemFromEnt(row)
	return &it, nil
}

func (r *itemRepo) Categories(ctx context.Context) ([]catalog.Category, error) {
	var names []string
	err := r.client.Item.Query().
		Unique(true).
		Select(item.FieldCategory).
		Scan(ctx, &names)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	cats := make([]catalog.Category, len(names))
	for i, n := range names {
		cats[i] = catalog.Category(n)
	}
	return cats, nil
}

func (r *itemRepo) SetCustomImage(ctx context.Context, id int64, path string) error {
	err := r.client.Item.UpdateOneID(id).
		SetCustomImage(path).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set custom image for item %d: %w", id, err)
	}
	return nil
}

func (r *itemRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Item.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func itemFromEnt(e *ent.Item) Item {
	return Item{
		ID:            e.ID,
		NameCN:        e.NameCn,
		NameEN:        e.NameEn,
		Category:      catalog.Category(e.Category),
		Difficulty:    e.Difficulty,
		DescriptionCN: e.DescriptionCn,
		DescriptionEN: e.DescriptionEn,
		ImageRes:      e.ImageRes,
		AudioCN:       e.AudioCn,
		AudioEN:       e.AudioEn,
		AudioDescCN:   e.AudioDescCn,
		Features:      e.Features,
		Scenarios:     e.Scenarios,
		CustomImage:   e.CustomImage,
	}
}

func itemsFromEnt(rows []*ent.Item) []Item {
	items := make([]Item, len(rows))
	for i, e := range rows {
		items[i] = itemFromEnt(e)
	}
	return items
}
