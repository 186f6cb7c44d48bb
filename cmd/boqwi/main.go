// Command boqwi analyzes Klingon words and looks them up in a dictionary
// from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/klingon-assistant/klingon"
	"github.com/klingon-assistant/klingon/internal/config"
	"github.com/klingon-assistant/klingon/internal/logging"
)

// Version is set at build time.
var Version = "0.1.0"

// app carries what PersistentPreRunE loads into the subcommands.
type app struct {
	cfgFile string
	output  string
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:     "boqwi",
		Short:   "Klingon word analyzer and dictionary",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(a.cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./boqwi.yaml)")
	pf.StringVarP(&a.output, "output", "o", "table", "output format (table|json)")
	pf.String("database", "", "SQLite dictionary database (empty for in-memory)")
	pf.String("data", "", "YAML dictionary file")
	pf.Int("max-candidates", klingon.DefaultMaxCandidates, "cap on analyses per word (0 disables the cap)")
	pf.Bool("lenient", true, "look up unaffixed words without a part of speech")
	pf.Int("workers", klingon.DefaultWorkers, "words looked up concurrently")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	pf.String("log-format", config.DefaultLogFormat, "log format (json|console)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newAnalyzeCommand(a))
	rootCmd.AddCommand(newLookupCommand(a))
	rootCmd.AddCommand(newDecodeCommand(a))
	rootCmd.AddCommand(newImportCommand(a))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
