// ABOUTME: Navigate command runs one request through the pipeline
// ABOUTME: Supports provider prefixes, direct parsing, and mode overrides
package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Z0909/heiha/internal/models"
)

var (
	navigateProvider string
	navigateMode     string
	navigateDirect   bool
	navigateJSON     bool
)

// NewNavigateCmd creates the navigate command
func NewNavigateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "navigate [text]",
		Short: "Open map navigation from a free-text request",
		Long: `Open map navigation from a free-text request

The request is analyzed by the DeepSeek oracle to extract origin,
destination, map service, and transport mode, then dispatched to the
chosen provider. Prefix the text with "b:" to force Baidu Maps or "g:"
to force Amap.

With --direct (or when DEEPSEEK_API_KEY is unset) the oracle is skipped
and the route is extracted by pattern matching instead.`,
		Args: cobra.ExactArgs(1),
		RunE: runNavigate,
		Example: `  # Full pipeline
  navpilot navigate "从北京到上海"

  # Force Amap, walking
  navpilot navigate --mode walking "g:天安门到故宫"

  # Skip the oracle entirely
  navpilot navigate --direct "北京西站 到 首都机场"`,
	}

	cmd.Flags().StringVar(&navigateProvider, "provider", "", "Map provider (baidu_map, amap)")
	cmd.Flags().StringVar(&navigateMode, "mode", "", "Transport mode (transit, driving, walking)")
	cmd.Flags().BoolVar(&navigateDirect, "direct", false, "Skip the oracle and parse the route heuristically")
	cmd.Flags().BoolVar(&navigateJSON, "json", false, "Print the full result envelope as JSON")

	return cmd
}

func runNavigate(cmd *cobra.Command, args []string) error {
	orch, _, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	text := strings.TrimSpace(args[0])
	if text == "" {
		return fmt.Errorf("navigation text must not be empty")
	}

	// Provider resolution order: explicit flag, then "b:"/"g:" prefix.
	provider, text, prefixed := splitProviderPrefix(text)
	if navigateProvider != "" {
		provider = models.ParseProviderID(navigateProvider)
	}

	mode := models.DefaultMode
	if navigateMode != "" {
		mode = models.ParseTransportMode(navigateMode)
	}

	ctx := cmd.Context()
	var env *models.Envelope
	// A prefix or --direct pins the provider, so the oracle's service
	// preference must not override it.
	if navigateDirect || prefixed || navigateProvider != "" {
		env = orch.ProcessDirect(ctx, text, provider, mode)
	} else {
		env = orch.ProcessRequest(ctx, text)
	}

	return printEnvelope(cmd, env)
}

// printEnvelope renders the pipeline result, either as JSON or as a
// short human-readable report.
func printEnvelope(cmd *cobra.Command, env *models.Envelope) error {
	out := cmd.OutOrStdout()

	if navigateJSON {
		data, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if !env.Success {
		fmt.Fprintf(out, "✗ 导航失败: %s\n", env.Error)
		if env.Step != "" {
			fmt.Fprintf(out, "  停止于: %s\n", env.Step)
		}
		return nil
	}

	fmt.Fprintf(out, "✓ 导航已打开: %s → %s\n", env.Summary.Origin, env.Summary.Destination)
	fmt.Fprintf(out, "  地图服务: %s  出行方式: %s\n", env.Summary.MapService, env.Summary.TransportMode)
	if env.NavigationExecution != nil && env.NavigationExecution.URL != "" {
		fmt.Fprintf(out, "  URL: %s\n", env.NavigationExecution.URL)
	}
	return nil
}
