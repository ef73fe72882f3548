package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stylewrap",
	Short: "Scoped CSS rewriter for Go view components",
	Long: `Attach scoped CSS to Go component functions at build time.
A //stylewrap:styles "path.css" directive makes the rewriter inline the CSS,
derive a stable id from the file stem, and wrap the component's view in
<style> + <div id=...> markup.`,
	// Default behavior: run rewrite when no subcommand is given.
	// We must call loadConfig here because PreRunE of rewriteCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runRewrite(rewriteCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().String("project-root", "", "Directory style paths resolve against (default: nearest go.mod)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".stylewrap.yaml", "Config file path")

	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
