package cmds

import (
	"fmt"

	gobloom "github.com/JyotinderSingh/go-bloom"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAddCmd(s *settings) *cobra.Command {
	var asHex bool

	cmd := &cobra.Command{
		Use:   "add NAME ITEM...",
		Short: "insert items into a filter",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			items, err := parseItems(args[1:], asHex)
			if err != nil {
				return err
			}

			return s.withStore(func(store *gobloom.FilterStore) error {
				err := store.Update(name, func(f *gobloom.Filter) error {
					if f.IsEmpty() {
						return errors.Errorf("filter %q has an empty bit buffer", name)
					}
					for _, item := range items {
						f.Insert(item)
					}
					return nil
				})
				if err != nil {
					return err
				}
				s.debugf("inserted %d items into %s", len(items), name)
				fmt.Fprintf(cmd.OutOrStdout(), "added %d items to %s\n", len(items), name)
				return nil
			})
		},
	}

	addItemFlags(cmd, &asHex)
	return cmd
}
