package cli

import (
	"fmt"

	"github.com/arthur-debert/concat/pkg/config"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var (
		format   string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultsContent())
				return nil
			}

			content, err := config.GenerateConfigContent(format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatTOML, MsgFlagFormat)
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	cmd.MarkFlagsMutuallyExclusive("format", "defaults")

	return cmd
}
