package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Jklawreszuk/gettext-net/catalog"
	"github.com/Jklawreszuk/gettext-net/converter"
	"github.com/Jklawreszuk/gettext-net/internal/config"
	"github.com/Jklawreszuk/gettext-net/resource"
)

// convertConfig holds flags for the convert command.
type convertConfig struct {
	output      string
	onDuplicate string
	useFuzzy    bool
}

func convertCmd(cfg *config.Config) *cobra.Command {
	cc := &convertConfig{}
	cmd := &cobra.Command{
		Use:   "convert -o <bundle.yaml> [input.po...]",
		Short: "Merge PO catalogs and write a resource bundle",
		Long: `Loads every input catalog in order, merges them and writes one resource per
entry: the translation when the entry is translated, the source string otherwise.
Entries with a context are keyed as "<context>\x04<msgid>".`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cc, args)
		},
	}
	cmd.Flags().StringVarP(&cc.output, "output", "o", "", "Resource bundle to write (required)")
	cmd.Flags().StringVar(&cc.onDuplicate, "on-duplicate", cfg.OnDuplicate, "Duplicate key policy: overwrite (last file wins), skip (first file wins) or append")
	cmd.Flags().BoolVar(&cc.useFuzzy, "use-fuzzy", cfg.UseFuzzy, "Use fuzzy translations")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runConvert(cc *convertConfig, inputs []string) error {
	policy, err := catalog.ParseMergePolicy(cc.onDuplicate)
	if err != nil {
		return err
	}
	sink, err := resource.CreateYAMLFile(cc.output)
	if err != nil {
		return err
	}
	conv := converter.New(
		converter.WithMergePolicy(policy),
		converter.WithUseFuzzy(cc.useFuzzy),
	)
	if err := conv.Run(inputs, sink); err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	log.Info().Str("output", cc.output).Int("resources", sink.Len()).Msg("Wrote resource bundle")
	return nil
}
