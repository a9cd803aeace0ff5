package cmds

import (
	"fmt"

	gobloom "github.com/JyotinderSingh/go-bloom"
	"github.com/spf13/cobra"
)

func newDeleteCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "remove a filter from the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withStore(func(store *gobloom.FilterStore) error {
				if err := store.Delete(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted filter %s\n", args[0])
				return nil
			})
		},
	}
}
