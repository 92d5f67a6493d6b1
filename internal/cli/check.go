package cli

import (
	"github.com/spf13/cobra"

	"github.com/vertextoedge/pixi-assistant/internal/logger"
	"github.com/vertextoedge/pixi-assistant/internal/service/checker"
)

func newCheckCommand(deps Deps, opts *globalOptions) *cobra.Command {
	var minGB float64

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check if sufficient space is available in pixi cache",
		Long: `Runs 'pixi info --json', reads the cache directory from its output and
verifies that the volume holding it has at least --gb binary gigabytes
(1 GB = 1024^3 bytes) available. Exits 0 when it does and 1 otherwise.`,
		Example: "  pixi-assistant check --gb 5",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			zapLogger := logger.GetZapLogger()

			svc := checker.New(
				deps.NewInfoFetcher(opts.cfg, zapLogger),
				deps.NewSpaceProvider(zapLogger),
				zapLogger,
			)

			result, err := svc.Check(cmd.Context(), minGB)
			if err != nil {
				return err
			}
			return checker.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr()).Report(result)
		},
	}

	cmd.Flags().Float64Var(&minGB, "gb", 0, "Minimum required space in GB")
	_ = cmd.MarkFlagRequired("gb")
	return cmd
}
