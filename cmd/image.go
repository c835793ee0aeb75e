package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

// imageCmd lets a guardian attach a custom picture to a catalog item.
var imageCmd = &cobra.Command{
	Use:   "image <item-id> <path>",
	Short: "Set a custom picture for a word",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}
		path, err := filepath.Abs(args[1])
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("image file: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		item, err := st.Items().Get(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("no item with id %d", id)
		}
		if err := st.Items().SetCustomImage(ctx, id, path); err != nil {
			return err
		}
		fmt.Printf("Picture for %s (%s) set to %s\n", item.NameCN, item.NameEN, path)
		return nil
	},
}
