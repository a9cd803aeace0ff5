package cmds

import (
	"fmt"
	"text/tabwriter"

	gobloom "github.com/JyotinderSingh/go-bloom"
	"github.com/spf13/cobra"
)

func newShowCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "describe a filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withStore(func(store *gobloom.FilterStore) error {
				f, err := store.Get(args[0])
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintf(w, "name:\t%s\n", args[0])
				fmt.Fprintf(w, "bytes:\t%d\n", f.Size())
				fmt.Fprintf(w, "bits set:\t%d/%d\n", f.BitsSet(), f.Size()*8)
				fmt.Fprintf(w, "hash functions:\t%d\n", f.HashFuncs())
				fmt.Fprintf(w, "level:\t%d\n", f.Level())
				fmt.Fprintf(w, "elements:\t%v\n", f.Elements())
				fmt.Fprintf(w, "fp rate:\t%v\n", f.FPRate())
				return w.Flush()
			})
		},
	}
}
