package cli

import (
	"github.com/spf13/cobra"
)

// runsCommand prints every common run followed by the summary.
func (c *CLI) runsCommand() *cobra.Command {
	var flags compareFlags

	cmd := &cobra.Command{
		Use:   "runs <a> <b>",
		Short: "List the runs two files have in common",
		Long: `Runs splits both files into lines, words or runes and prints each run of a
longest common subsequence as n@a,b: n elements starting at index a of the
first file and index b of the second. Use "-" to read one input from stdin.`,
		Example: `  seqdiff runs old.txt new.txt
  seqdiff runs --unit words --ignore-case a.md b.md
  seqdiff runs -f json a.txt b.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompare(cmd, &flags, args, true)
		},
	}
	flags.register(cmd)

	return cmd
}

// statsCommand prints only the summary.
func (c *CLI) statsCommand() *cobra.Command {
	var flags compareFlags

	cmd := &cobra.Command{
		Use:   "stats <a> <b>",
		Short: "Print common length, edit distance and similarity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompare(cmd, &flags, args, false)
		},
	}
	flags.register(cmd)

	return cmd
}

// runCompare is the shared body of runs and stats.
func (c *CLI) runCompare(cmd *cobra.Command, flags *compareFlags, args []string, withRuns bool) error {
	cfg, err := c.resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	rep, err := compare(ctx, cfg, cmd.InOrStdin(), args[0], args[1])
	if err != nil {
		return err
	}

	return renderReport(cmd.OutOrStdout(), cfg, rep, withRuns)
}
