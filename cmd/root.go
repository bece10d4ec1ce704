package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "legisclaro",
	Short: "Analyze and simplify Brazilian legal documents with AI",
	Long: `Legisclaro reads legal prose, extracts statute and article citations,
cross-checks each citation against the text of the cited law fetched
from the legislation portal, flags discrepancies between what the
document claims and what the law says, and produces a plain-language
rewrite of the document.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".legisclaro.yml", "config file path")
}
