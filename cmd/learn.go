package cmd

import (
	"fmt"

	"github.com/ewei/lexikid/internal/catalog"
	"github.com/ewei/lexikid/internal/store"
	"github.com/spf13/cobra"
)

var (
	learnCategory   string
	learnDifficulty int
)

// learnCmd prints a study sheet: the catalog with per-item progress,
// for guardians who want a paper copy or a quick look.
var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Print the word list with learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		items := st.Items()
		progressRepo := st.Progress()

		if learnDifficulty > 0 {
			list, err := items.ByDifficulty(ctx, learnDifficulty)
			if err != nil {
				return err
			}
			fmt.Printf("\n难度 %d\n", learnDifficulty)
			return printSheet(cmd, list, progressRepo)
		}

		cats, err := items.Categories(ctx)
		if err != nil {
			return err
		}
		if learnCategory != "" {
			c := catalog.Category(learnCategory)
			if !catalog.Valid(c) {
				return fmt.Errorf("unknown category %q", learnCategory)
			}
			cats = []catalog.Category{c}
		}

		for _, c := range cats {
			list, err := items.ByCategory(ctx, c)
			if err != nil {
				return err
			}
			fmt.Printf("\n%s %s\n", c.Icon(), c.DisplayName())
			if err := printSheet(cmd, list, progressRepo); err != nil {
				return err
			}
		}
		return nil
	},
}

func printSheet(cmd *cobra.Command, list []store.Item, progressRepo store.ProgressRepo) error {
	ctx := cmd.Context()
	for _, it := range list {
		marker := "  "
		mastery := ""
		rec, err := progressRepo.Get(ctx, it.ID)
		if err != nil {
			return err
		}
		if rec != nil && rec.Viewed {
			marker = "✓ "
			mastery = fmt.Sprintf("  掌握 %d%%", rec.MasteryLevel)
		}
		fmt.Printf("  %s%-8s %-14s%s\n", marker, it.NameCN, it.NameEN, mastery)
	}
	return nil
}

func init() {
	learnCmd.Flags().StringVar(&learnCategory, "category", "", "Only print one category (Chinese name)")
	learnCmd.Flags().IntVar(&learnDifficulty, "difficulty", 0, "Only print words of one difficulty level")
}
