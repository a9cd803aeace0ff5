package cmds

import (
	"fmt"

	gobloom "github.com/JyotinderSingh/go-bloom"
	"github.com/spf13/cobra"
)

func newClearCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "clear NAME",
		Short: "reset every bit of a filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withStore(func(store *gobloom.FilterStore) error {
				err := store.Update(args[0], func(f *gobloom.Filter) error {
					f.Clear()
					return nil
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "cleared filter %s\n", args[0])
				return nil
			})
		},
	}
}
