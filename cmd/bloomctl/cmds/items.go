package cmds

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// addItemFlags registers the flags controlling how item arguments are read.
func addItemFlags(cmd *cobra.Command, asHex *bool) {
	cmd.Flags().BoolVar(asHex, "hex", false, "items are hex encoded bytes instead of raw strings")
}

func parseItems(args []string, asHex bool) ([][]byte, error) {
	items := make([][]byte, 0, len(args))
	for _, arg := range args {
		if !asHex {
			items = append(items, []byte(arg))
			continue
		}
		item, err := hex.DecodeString(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "item %q is not valid hex", arg)
		}
		items = append(items, item)
	}
	return items, nil
}
