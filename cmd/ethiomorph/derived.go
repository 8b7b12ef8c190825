// Derived and stems commands build nominals and stem forms.
package main

import (
	"github.com/ethiomorph/ethiomorph"
	"github.com/spf13/cobra"
)

func newDerivedCmd(c *cli) *cobra.Command {
	var verbType string
	cmd := &cobra.Command{
		Use:   "derived <root> <class>",
		Short: "Build a derived form (infinitive, participle, ...)",
		Example: `  ethiomorph derived ቀተለ infinitive
  ethiomorph derived ቀተለ instrumental`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.engine.GenerateDerived(ethiomorph.CleanInput(args[0]), args[1], verbType)
			if err != nil {
				return err
			}
			return printJSON(cmd, d)
		},
	}
	cmd.Flags().StringVar(&verbType, "verb-type", "", "template class (default: lexicon or type_a)")
	return cmd
}

func newStemsCmd(c *cli) *cobra.Command {
	var code string
	cmd := &cobra.Command{
		Use:   "stems <root>",
		Short: "Render a root in the derivational stems",
		Example: `  ethiomorph stems ቀተለ
  ethiomorph stems ቀተለ --code causative`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ethiomorph.CleanInput(args[0])
			if code == "" {
				return printJSON(cmd, c.engine.ExpandStems(root))
			}
			sw, err := c.engine.GenerateStem(root, code)
			if err != nil {
				return err
			}
			return printJSON(cmd, sw)
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "stem code (default: all stems)")
	return cmd
}
