package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/sprintertech/across-dataworker/app"
)

type bundleOutput struct {
	ID                string `json:"id"`
	PoolRebalanceRoot string `json:"poolRebalanceRoot"`
	RelayerRefundRoot string `json:"relayerRefundRoot"`
	SlowRelayRoot     string `json:"slowRelayRoot"`
	DroppedFills      int    `json:"droppedFills"`
}

var bundleCMD = &cobra.Command{
	Use:   "bundle",
	Short: "Build the next bundle once and print its roots",
	Long:  "Build the bundle following the latest proposed root bundle once and print its roots",
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle, err := app.BuildBundle(cmd.Context())
		if err != nil {
			return err
		}

		roots := bundle.Roots()
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(bundleOutput{
			ID:                bundle.ID().Hex(),
			PoolRebalanceRoot: roots.PoolRebalanceRoot.Hex(),
			RelayerRefundRoot: roots.RelayerRefundRoot.Hex(),
			SlowRelayRoot:     roots.SlowRelayRoot.Hex(),
			DroppedFills:      len(bundle.Warnings),
		})
	},
}
