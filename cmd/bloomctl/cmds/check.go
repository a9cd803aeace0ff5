package cmds

import (
	"fmt"

	gobloom "github.com/JyotinderSingh/go-bloom"
	"github.com/spf13/cobra"
)

func newCheckCmd(s *settings) *cobra.Command {
	var asHex bool

	cmd := &cobra.Command{
		Use:   "check NAME ITEM...",
		Short: "test items for probable membership in a filter",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(args[1:], asHex)
			if err != nil {
				return err
			}

			return s.withStore(func(store *gobloom.FilterStore) error {
				f, err := store.Get(args[0])
				if err != nil {
					return err
				}
				for i, item := range items {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", args[i+1], f.Contains(item))
				}
				return nil
			})
		},
	}

	addItemFlags(cmd, &asHex)
	return cmd
}
