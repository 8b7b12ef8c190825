// Expand commands print whole paradigms and the loaded templates.
package main

import (
	"github.com/ethiomorph/ethiomorph"
	"github.com/spf13/cobra"
)

func newExpandCmd(c *cli) *cobra.Command {
	var (
		verbType string
		simple   bool
	)
	cmd := &cobra.Command{
		Use:   "expand <root>",
		Short: "Print the full conjugation matrix of a root",
		Long: `Expand generates every subject of every tense plus the derived
nominals. A derivational prefix on the root (ተ, አ, አስተ) selects the
matching stem templates.

Example:
  ethiomorph expand ቀተለ
  ethiomorph expand ተቀተለ
  ethiomorph expand ቀተለ --simple`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ethiomorph.CleanInput(args[0])
			if simple {
				m, err := c.engine.ExpandRootSimple(root, verbType)
				if err != nil {
					return err
				}
				return printJSON(cmd, m)
			}
			m, err := c.engine.ExpandRoot(root, verbType)
			if err != nil {
				return err
			}
			return printJSON(cmd, m)
		},
	}
	cmd.Flags().StringVar(&verbType, "verb-type", "", "template class (default: lexicon or detected)")
	cmd.Flags().BoolVar(&simple, "simple", false, "print words only, keyed by legacy person names")
	return cmd
}

func newTemplatesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Print the loaded verb templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, c.engine.Templates())
		},
	}
}
