// Generate command conjugates a root for one tense and subject.
package main

import (
	"github.com/ethiomorph/ethiomorph"
	"github.com/spf13/cobra"
)

func newGenerateCmd(c *cli) *cobra.Command {
	var (
		tense    string
		subject  string
		verbType string
		wordOnly bool
	)
	cmd := &cobra.Command{
		Use:   "generate <root>",
		Short: "Conjugate a root",
		Long: `Generate renders root in one tense and subject and prints the word with
its derivation.

Example:
  ethiomorph generate ቀተለ --tense imperfective --subject 3pm
  ethiomorph generate ቀወመ --word`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.engine.GenerateWord(
				ethiomorph.CleanInput(args[0]),
				ethiomorph.Tense(tense),
				subject,
				ethiomorph.GenerateOptions{VerbType: verbType},
			)
			if err != nil {
				return err
			}
			if wordOnly {
				return printJSON(cmd, g.Word)
			}
			return printJSON(cmd, g)
		},
	}
	cmd.Flags().StringVarP(&tense, "tense", "t", string(ethiomorph.Perfective), "perfective, imperfective, jussive or imperative")
	cmd.Flags().StringVarP(&subject, "subject", "s", "3sm", "subject key (3sm, 3sf, 2sm, 2sf, 1s, 3pm, 3pf, 2pm, 2pf, 1p)")
	cmd.Flags().StringVar(&verbType, "verb-type", "", "template class (default: lexicon or detected)")
	cmd.Flags().BoolVar(&wordOnly, "word", false, "print only the generated word")
	return cmd
}
