// ABOUTME: Root CLI command and global flags for NavPilot
// ABOUTME: Wires subcommands and shared verbose/quiet handling
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

const banner = `
███╗   ██╗ █████╗ ██╗   ██╗██████╗ ██╗██╗      ██████╗ ████████╗
████╗  ██║██╔══██╗██║   ██║██╔══██╗██║██║     ██╔═══██╗╚══██╔══╝
██╔██╗ ██║███████║██║   ██║██████╔╝██║██║     ██║   ██║   ██║
██║╚██╗██║██╔══██║╚██╗ ██╔╝██╔═══╝ ██║██║     ██║   ██║   ██║
██║ ╚████║██║  ██║ ╚████╔╝ ██║     ██║███████╗╚██████╔╝   ██║
╚═╝  ╚═══╝╚═╝  ╚═╝  ╚═══╝  ╚═╝     ╚═╝╚══════╝ ╚═════╝    ╚═╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "navpilot",
		Short: "AI navigation assistant",
		Long: banner + `
NavPilot turns free-text route requests into opened map navigation.

A DeepSeek-backed oracle extracts origin, destination, and preferences;
addresses are validated and the route opens in Baidu Maps or Amap with
remote-tool, URL-synthesis, and OS-launch fallbacks.

Examples:
  navpilot navigate "从北京到上海"
  navpilot navigate --direct "b:天安门到故宫"
  navpilot serve
  navpilot mcp`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewNavigateCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewStatusCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
