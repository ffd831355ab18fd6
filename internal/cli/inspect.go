package cli

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"xacro-convert/internal/app"
)

type inspectOptions struct {
	Format string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect INPUT",
		Short: "Report the includes, properties, and macros a xacro file defines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format (text or yaml)")
	_ = viper.BindPFlag("inspect_format", cmd.Flags().Lookup("format"))
	return cmd
}

func runInspect(cmd *cobra.Command, input string, opts inspectOptions) error {
	service := app.NewService()
	result, err := service.Inspect(cmd.Context(), app.InspectRequest{
		SourcePath: input,
	})
	if err != nil {
		return err
	}
	report := result.Report

	switch resolveString(cmd, opts.Format, "inspect_format", "format") {
	case "yaml":
		encoded, err := yaml.Marshal(report)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode report").
				WithCause(err)
		}
		_, _ = os.Stdout.Write(encoded)
	default:
		fmt.Printf("root: <%s>\n", report.RootTag)
		fmt.Printf("includes: %d\n", len(report.Includes))
		for _, path := range report.Includes {
			fmt.Printf("  %s\n", path)
		}
		fmt.Printf("properties: %d\n", len(report.Properties))
		for _, prop := range report.Properties {
			if prop.Complex {
				fmt.Printf("  %s = %s (complex)\n", prop.Name, prop.Value)
				continue
			}
			fmt.Printf("  %s = %s\n", prop.Name, prop.Value)
		}
		fmt.Printf("macros: %d\n", len(report.Macros))
		for _, name := range report.Macros {
			fmt.Printf("  %s\n", name)
		}
	}
	return nil
}
