// Analyze command extracts the root of one or more words.
package main

import (
	"github.com/ethiomorph/ethiomorph"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <word>...",
		Short: "Extract the consonantal root of words",
		Long: `Analyze strips affixes from each word, reconstructs weak radicals and
prints the root with its derivation path.

Example:
  ethiomorph analyze ቀተልከኒ
  ethiomorph analyze ይቀትሉ መዝሙር`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]*ethiomorph.AnalysisResult, 0, len(args))
			for _, word := range args {
				results = append(results, c.engine.ExtractRoot(ethiomorph.CleanInput(word)))
			}
			if len(results) == 1 {
				return printJSON(cmd, results[0])
			}
			return printJSON(cmd, results)
		},
	}
}
