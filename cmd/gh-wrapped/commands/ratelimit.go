package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var rateLimitCmd = &cobra.Command{
	Use:   "ratelimit",
	Short: "Show the GitHub API quota of the stats service",
	RunE: func(cmd *cobra.Command, args []string) error {
		rl, err := statsClient.RateLimit(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "token:   %t\n", rl.HasToken)
		fmt.Fprintf(out, "core:    %d/%d (reset %s)\n", rl.Core.Remaining, rl.Core.Limit, resetTime(rl.Core.Reset))
		fmt.Fprintf(out, "graphql: %d/%d (reset %s)\n", rl.GraphQL.Remaining, rl.GraphQL.Limit, resetTime(rl.GraphQL.Reset))
		return nil
	},
}

func resetTime(unix int64) string {
	if unix <= 0 {
		return "-"
	}
	return time.Unix(unix, 0).Local().Format(time.Kitchen)
}
