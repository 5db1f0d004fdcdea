package cli

import (
	"github.com/spf13/cobra"
	"github.com/sprintertech/across-dataworker/app"
)

var runCMD = &cobra.Command{
	Use:   "run",
	Short: "Run dataworker",
	Long:  "Run dataworker",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run()
	},
}
