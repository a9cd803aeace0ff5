package cmds

import (
	"fmt"
	"os"

	gobloom "github.com/JyotinderSingh/go-bloom"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	formatJSON   = "json"
	formatBinary = "binary"
)

func newExportCmd(s *settings) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export NAME",
		Short: "write a filter in its JSON or binary wire format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withStore(func(store *gobloom.FilterStore) error {
				f, err := store.Get(args[0])
				if err != nil {
					return err
				}

				var data []byte
				switch format {
				case formatJSON:
					data, err = f.MarshalJSON()
				case formatBinary:
					data, err = f.MarshalBinary()
				default:
					return errors.Errorf("unknown format %q", format)
				}
				if err != nil {
					return err
				}
				if format == formatJSON {
					data = append(data, '\n')
				}

				if out == "" {
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}
				s.debugf("writing %s to %s", args[0], out)
				return errors.Wrap(os.WriteFile(out, data, 0644), "write export")
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", formatJSON, "output format, json or binary")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default is stdout)")
	return cmd
}

func newImportCmd(s *settings) *cobra.Command {
	var format string
	var force bool

	cmd := &cobra.Command{
		Use:   "import NAME FILE",
		Short: "store a filter read from its JSON or binary wire format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			data, err := os.ReadFile(args[1])
			if err != nil {
				return errors.Wrap(err, "read import")
			}

			var f *gobloom.Filter
			switch format {
			case formatJSON:
				f, err = gobloom.FromJSON(string(data))
			case formatBinary:
				f, err = gobloom.FromBinary(data)
			default:
				return errors.Errorf("unknown format %q", format)
			}
			if err != nil {
				return err
			}

			return s.withStore(func(store *gobloom.FilterStore) error {
				if !force {
					if _, err := store.Get(name); err == nil {
						return errors.Errorf("filter %q already exists, use --force to replace it", name)
					}
				}
				if err := store.Put(name, f); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported filter %s\n", name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", formatJSON, "input format, json or binary")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing filter")
	return cmd
}
