package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Jklawreszuk/gettext-net/catalog"
	"github.com/Jklawreszuk/gettext-net/converter"
	"github.com/Jklawreszuk/gettext-net/internal/config"
)

func checkCmd(cfg *config.Config) *cobra.Command {
	var onDuplicate string
	cmd := &cobra.Command{
		Use:   "check <input.po>...",
		Short: "Merge PO catalogs and report inconsistent translations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), onDuplicate, args)
		},
	}
	cmd.Flags().StringVar(&onDuplicate, "on-duplicate", cfg.OnDuplicate, "Duplicate key policy: overwrite, skip or append")
	return cmd
}

func runCheck(w io.Writer, onDuplicate string, inputs []string) error {
	policy, err := catalog.ParseMergePolicy(onDuplicate)
	if err != nil {
		return err
	}
	merged, err := converter.New(converter.WithMergePolicy(policy)).Merge(inputs)
	if err != nil {
		return err
	}
	findings := catalog.Check(merged)
	for _, f := range findings {
		fmt.Fprintln(w, f.String())
	}
	if len(findings) > 0 {
		return fmt.Errorf("check: %d problem(s) in %d entries", len(findings), merged.Len())
	}
	log.Info().Int("entries", merged.Len()).Str("language", merged.Language).Msg("Catalog is consistent")
	return nil
}
