package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/caltrack/internal/utils"
)

var summaryFormat string

// summaryCmd prints the calorie tracker: consumed, burned and net.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Calories consumed, burned and net",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := utils.ParseFormat(summaryFormat)
		if err != nil {
			return err
		}
		if f != utils.FormatDefault && f != utils.FormatJSON {
			return fmt.Errorf("summary supports default and json, not %s", f)
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}

		renderConfig := utils.DefaultRenderConfig()
		renderConfig.Format = f
		renderConfig.Color = useColor()
		out, err := utils.NewRenderer(renderConfig).RenderTotals(a.Totals())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFormat, "format", "default", "output format: default or json")
	summaryCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
