package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"armsmith/internal/app"
	apperrors "armsmith/internal/errors"
)

// version is set at build time via ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "armsmith",
	Short:   "Armsmith - declarative Azure deployment-template builder",
	Version: version,
	Long: `Armsmith reads a declarative deployment spec, resolves the described
resources into a consistent resource graph, and renders an ARM deployment
template ready to hand to the deployment engine.`,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble a deployment spec into an ARM template",
	Long: `Build parses a deployment spec YAML file, reconciles ports, volumes,
secrets, and cross-resource dependencies, validates the assembled template,
and writes the resulting JSON document.`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		out, _ := cmd.Flags().GetString("output")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		if err := app.Build(file, out, dryRun); err != nil {
			apperrors.HandleError(err)
			os.Exit(1)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a deployment spec without writing output",
	Long: `Validate parses and assembles a deployment spec and runs the full set
of structural checks, reporting any problem without producing a template.`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")

		if err := app.Validate(file); err != nil {
			apperrors.HandleError(err)
			os.Exit(1)
		}
	},
}

func init() {
	buildCmd.Flags().StringP("file", "f", "", "Path to the deployment spec YAML file (required)")
	buildCmd.Flags().StringP("output", "o", "azuredeploy.json", "Path of the rendered template")
	buildCmd.Flags().Bool("dry-run", false, "Print the resource plan without writing the template")
	cobra.CheckErr(buildCmd.MarkFlagRequired("file"))
	rootCmd.AddCommand(buildCmd)

	validateCmd.Flags().StringP("file", "f", "", "Path to the deployment spec YAML file (required)")
	cobra.CheckErr(validateCmd.MarkFlagRequired("file"))
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
