package cmds

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Execute runs bloomctl with the process arguments.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand builds the bloomctl command tree. Every call returns an
// independent tree with its own configuration.
func NewRootCommand() *cobra.Command {
	s := newSettings()

	rootCmd := &cobra.Command{
		Use:   "bloomctl",
		Short: "bloomctl manages connection bloom filters",
		Long: `bloomctl creates, fills and queries Bitcoin connection bloom filters
kept in a local filter store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = s.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.configFile, "config", "", "config file (default is $HOME/.bloomctl/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&s.debug, "debug", false, "enable debug level log")
	rootCmd.PersistentFlags().String("store", "", "path of the filter store")
	s.bindFlag(keyStorePath, rootCmd.PersistentFlags().Lookup("store"))

	rootCmd.AddCommand(
		newCreateCmd(s),
		newAddCmd(s),
		newCheckCmd(s),
		newShowCmd(s),
		newClearCmd(s),
		newListCmd(s),
		newDeleteCmd(s),
		newExportCmd(s),
		newImportCmd(s),
	)
	return rootCmd
}

func (s *settings) debugf(template string, args ...interface{}) {
	s.logger.Sugar().Debugf(template, args...)
}

// logger used before settings are loaded.
var defaultLogger = zap.NewNop()
