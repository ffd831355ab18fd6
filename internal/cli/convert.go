package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xacro-convert/internal/app"
)

type convertOptions struct {
	Output string
}

func newConvertCommand() *cobra.Command {
	opts := convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert INPUT",
		Short: "Expand a xacro file into a self-contained URDF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output URDF path (defaults to INPUT with a .urdf extension)")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runConvert(ctx context.Context, cmd *cobra.Command, input string, opts convertOptions) error {
	service := app.NewService()
	result, err := service.Convert(ctx, app.ConvertRequest{
		SourcePath: input,
		OutputPath: resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", result.OutputPath)
	return nil
}
