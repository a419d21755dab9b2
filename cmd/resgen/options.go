package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Jklawreszuk/gettext-net/getopt"
	"github.com/Jklawreszuk/gettext-net/internal/config"
)

func optionsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "options <table.yaml>",
		Short: "Validate a YAML table of long options",
		Long: `Builds every long option declared in the table and lists them. Diagnostics
are rendered in English when POSIXLY_CORRECT is set (the default) and in the
language of the environment otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptions(cmd.OutOrStdout(), args[0], cfg.Getopt())
		},
	}
}

func runOptions(w io.Writer, path string, gcfg *getopt.Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := getopt.LoadTable(f, gcfg)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tARGUMENT\tFLAG\tVAL")
	for _, opt := range table.Options() {
		flag := "-"
		if opt.Flag() != nil {
			flag = "yes"
		}
		fmt.Fprintf(tw, "--%s\t%s\t%s\t%s\n", opt.Name(), opt.HasArg(), flag, describeVal(opt.Val()))
	}
	return tw.Flush()
}

func describeVal(val int) string {
	if val > ' ' && val < 0x7f {
		return fmt.Sprintf("%d ('%c')", val, rune(val))
	}
	return fmt.Sprintf("%d", val)
}
