package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/legisclaro/legisclaro/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol server on stdio exposing the document analysis and simplification tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pipe, simp, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		mcpserver.Version = Version
		fmt.Fprintln(os.Stderr, "legisclaro MCP server started on stdio")

		return mcpserver.NewServer(pipe, simp).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
