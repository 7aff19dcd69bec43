package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server health and user summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w := cmd.OutOrStdout()

			summary := map[string]interface{}{
				"server": apiClient.BaseURL(),
			}

			if health, err := apiClient.Ready(ctx); err != nil {
				summary["ready"] = false
				summary["error"] = err.Error()
			} else {
				summary["ready"] = health.Status == "ready"
			}

			if users, err := apiClient.Usuarios().List(ctx); err == nil {
				summary["usuarios"] = len(users)
			}
			if activos, err := apiClient.Usuarios().ListActivos(ctx); err == nil {
				summary["activos"] = len(activos)
			}
			if premium, err := apiClient.Usuarios().ListPremiumActivos(ctx); err == nil {
				summary["premium_activos"] = len(premium)
			}

			if getOutputFormat() != "table" {
				return printOutput(w, summary)
			}

			fmt.Fprintln(w, "Usuarios API")
			fmt.Fprintln(w, strings.Repeat("=", 40))
			fmt.Fprintf(w, "  Server:          %v\n", summary["server"])
			fmt.Fprintf(w, "  Ready:           %v\n", summary["ready"])
			if e, ok := summary["error"]; ok {
				fmt.Fprintf(w, "  Error:           %v\n", e)
			}
			for _, key := range []string{"usuarios", "activos", "premium_activos"} {
				if n, ok := summary[key]; ok {
					fmt.Fprintf(w, "  %-16s %v\n", key+":", n)
				}
			}
			return nil
		},
	}
}
