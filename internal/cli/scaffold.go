package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xacro-convert/internal/app"
)

type scaffoldOptions struct {
	Template string
	Target   string
	Name     string
}

func newScaffoldCommand() *cobra.Command {
	opts := scaffoldOptions{}
	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Create a ROS package directory from a template tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScaffold(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Template, "template", "", "Template package directory")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Target package directory")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Package name written into the build manifests")

	_ = viper.BindPFlag("template", cmd.Flags().Lookup("template"))
	_ = viper.BindPFlag("target", cmd.Flags().Lookup("target"))
	_ = viper.BindPFlag("package_name", cmd.Flags().Lookup("name"))
	return cmd
}

func runScaffold(cmd *cobra.Command, opts scaffoldOptions) error {
	service := app.NewService()
	result, err := service.Scaffold(cmd.Context(), app.ScaffoldRequest{
		TemplateDir: resolveString(cmd, opts.Template, "template", "template"),
		TargetDir:   resolveString(cmd, opts.Target, "target", "target"),
		PackageName: resolveString(cmd, opts.Name, "package_name", "name"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("scaffolded package: %s\n", result.TargetDir)
	return nil
}
