// ABOUTME: Status command reports service health and provider tooling
// ABOUTME: Probes the oracle and optionally lists remote provider tools
package commands

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statusTools bool

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show service health",
		Long: `Show service health

Probes the DeepSeek oracle with a throwaway request and reports the
state of each configured service. With --tools, also queries each map
provider's remote endpoint for its advertised tool list.`,
		RunE: runStatus,
		Example: `  navpilot status
  navpilot status --tools`,
	}

	cmd.Flags().BoolVar(&statusTools, "tools", false, "List tools advertised by each provider endpoint")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	orch, cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	status := orch.Status(ctx)
	fmt.Fprintf(out, "系统状态: %s\n", status.Status)

	services := make([]string, 0, len(status.Services))
	for name := range status.Services {
		services = append(services, name)
	}
	sort.Strings(services)
	for _, name := range services {
		fmt.Fprintf(out, "  %-10s %s\n", name, status.Services[name])
	}
	if status.Error != "" {
		fmt.Fprintf(out, "  错误: %s\n", status.Error)
	}

	if !statusTools {
		return nil
	}

	registry, err := buildRegistry(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	for _, id := range registry.IDs() {
		tools, err := registry.ListTools(ctx, id, cfg.ToolTimeout)
		if err != nil {
			fmt.Fprintf(out, "%s: 工具列表获取失败 (%v)\n", id, err)
			continue
		}
		data, err := json.MarshalIndent(tools, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding tool list: %w", err)
		}
		fmt.Fprintf(out, "%s:\n%s\n", id, data)
	}
	return nil
}
