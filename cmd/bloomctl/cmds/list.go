package cmds

import (
	"fmt"

	gobloom "github.com/JyotinderSingh/go-bloom"
	"github.com/spf13/cobra"
)

func newListCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list stored filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withStore(func(store *gobloom.FilterStore) error {
				names, err := store.List()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			})
		},
	}
}
