package cmds

import (
	"fmt"

	gobloom "github.com/JyotinderSingh/go-bloom"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCreateCmd(s *settings) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "create a filter sized for an element count and false positive rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			elements := s.v.GetFloat64(keyElements)
			fpRate := s.v.GetFloat64(keyFPRate)
			level := s.v.GetUint32(keyLevel)

			f, err := gobloom.Create(elements, fpRate, level)
			if err != nil {
				return err
			}
			if f.IsEmpty() {
				s.logger.Sugar().Warnf("filter %s has an empty bit buffer and will never match", name)
			}

			return s.withStore(func(store *gobloom.FilterStore) error {
				if !force {
					_, err := store.Get(name)
					if err == nil {
						return errors.Errorf("filter %q already exists, use --force to replace it", name)
					}
					if !errors.Is(err, gobloom.ErrFilterNotFound) {
						return err
					}
				}
				if err := store.Put(name, f); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created filter %s: %d bytes, %d hash functions, level %d\n",
					name, f.Size(), f.HashFuncs(), f.Level())
				return nil
			})
		},
	}

	cmd.Flags().Float64("elements", 0, "expected number of elements")
	cmd.Flags().Float64("fp-rate", 0, "target false positive rate")
	cmd.Flags().Uint32("level", 0, "hash seed level")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing filter")
	s.bindFlag(keyElements, cmd.Flags().Lookup("elements"))
	s.bindFlag(keyFPRate, cmd.Flags().Lookup("fp-rate"))
	s.bindFlag(keyLevel, cmd.Flags().Lookup("level"))
	return cmd
}
