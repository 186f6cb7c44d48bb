package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klingon-assistant/klingon"
	"github.com/klingon-assistant/klingon/internal/store"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "analyze WORD",
		Short: "List every decomposition of a word",
		Long: `Split a Klingon word into verb prefix, stem, suffixes and rovers.

No dictionary is consulted: every decomposition that fits the affix tables
is listed, including the word itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := []klingon.Kind{klingon.Noun, klingon.Verb}
			if kind != "both" {
				k, ok := klingon.ParseKind(kind)
				if !ok {
					return fmt.Errorf("unknown kind %q", kind)
				}
				kinds = []klingon.Kind{k}
			}

			analyzer := klingon.NewAnalyzer(
				klingon.WithMaxCandidates(a.cfg.MaxCandidates),
				klingon.WithLogger(a.log))
			word := klingon.Normalize(args[0])
			var leaves []*klingon.ComplexWord
			for _, k := range kinds {
				ws, err := analyzer.AnalyzeContext(cmd.Context(), word, k)
				if err != nil {
					return fmt.Errorf("analyze %q: %w", word, err)
				}
				leaves = append(leaves, ws...)
			}
			return renderAnalyses(cmd.OutOrStdout(), a.output, leaves, a.cfg.Lenient)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "both", "parse as noun, verb or both")
	return cmd
}

func newLookupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup QUERY...",
		Short: "Look words up in the dictionary",
		Long: `Look up each argument in the dictionary. A plain word is analyzed and
its parts are looked up; "name:pos" finds that exact entry.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, closeStore, err := store.Open(ctx, a.cfg.Database, a.cfg.Data)
			if err != nil {
				return err
			}
			defer closeStore() //nolint:errcheck

			dict := klingon.NewDictionary(st, a.log,
				klingon.WithAnalyzer(klingon.NewAnalyzer(
					klingon.WithMaxCandidates(a.cfg.MaxCandidates),
					klingon.WithLogger(a.log))),
				klingon.WithLenient(a.cfg.Lenient),
				klingon.WithWorkers(a.cfg.Workers))

			results, err := dict.LookupWords(ctx, args)
			if err != nil {
				return err
			}
			return renderLookup(cmd.OutOrStdout(), a.output, results)
		},
	}
}

func newDecodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode NAME [POS]",
		Short: "Decode the part-of-speech field of an entry",
		Example: `  boqwi decode Sop v:t_c
  boqwi decode "TKD p.42" src`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos := ""
			if len(args) == 2 {
				pos = args[1]
			}
			e := klingon.DecodeEntry(a.log, args[0], pos)
			return renderEntry(cmd.OutOrStdout(), a.output, e)
		},
	}
}

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Load a YAML dictionary into the SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Database == "" {
				return fmt.Errorf("import needs --database")
			}
			records, err := store.LoadYAML(args[0])
			if err != nil {
				return err
			}

			db := store.NewSQLite()
			if err := db.Open(a.cfg.Database); err != nil {
				return err
			}
			defer db.Close()
			if err := db.Migrate(); err != nil {
				return err
			}
			if err := db.Insert(cmd.Context(), records...); err != nil {
				return err
			}
			n, err := db.Count(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries (%d total)\n", len(records), n)
			return nil
		},
	}
}
