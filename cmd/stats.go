package cmd

import (
	"fmt"

	"github.com/ewei/lexikid/internal/profile"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		svc := profile.NewService(st.Progress(), st.Sessions(), st.Achievements())
		stats, err := svc.Compute(ctx)
		if err != nil {
			return err
		}

		total, err := st.Items().Count(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("已学词语  %d/%d\n", stats.LearnedCount, total)
		fmt.Printf("游戏次数  %d\n", stats.GameCount)
		fmt.Printf("星星      %d\n", stats.TotalStars)
		fmt.Printf("等级      Lv.%d\n", stats.Level)
		fmt.Printf("成就      %d/%d\n", stats.UnlockedAchievements, stats.TotalAchievements)

		recent, err := st.Progress().RecentViewed(ctx, 5)
		if err != nil {
			return err
		}
		if len(recent) > 0 {
			fmt.Println("\n最近学习")
			for _, rec := range recent {
				it, err := st.Items().Get(ctx, rec.ItemID)
				if err != nil {
					return err
				}
				if it == nil {
					continue
				}
				fmt.Printf("  %s %s  掌握 %d%%\n", it.NameCN, it.NameEN, rec.MasteryLevel)
			}
		}

		wall, err := st.Achievements().All(ctx)
		if err != nil {
			return err
		}
		fmt.Println()
		for _, a := range wall {
			if a.Unlocked {
				when := ""
				if a.UnlockedAt != nil {
					when = "  " + a.UnlockedAt.Format("2006-01-02")
				}
				fmt.Printf("%s %s — %s%s\n", a.Icon, a.Name, a.Description, when)
			} else {
				fmt.Printf("🔒 %s — %s\n", a.Name, a.Description)
			}
		}
		return nil
	},
}
