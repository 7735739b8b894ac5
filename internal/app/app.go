package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"armsmith/internal/assemble"
	apperrors "armsmith/internal/errors"
	"armsmith/internal/parser"
	"armsmith/internal/ui"
	"armsmith/pkg/arm"
	"armsmith/pkg/resource"
	"armsmith/pkg/spec"
)

// Build orchestrates the complete template build: parse the deployment spec,
// assemble the resource graph, validate the resulting template, and render
// it to outPath. With isDryRun set, the resource plan is printed and nothing
// is written.
func Build(specPath, outPath string, isDryRun bool) error {
	buildID := uuid.New().String()
	slog.Info("Starting template build", "specPath", specPath, "buildId", buildID, "dryRun", isDryRun)

	tmpl, err := assembleFromFile(specPath)
	if err != nil {
		return err
	}

	out, err := tmpl.Render()
	if err != nil {
		return apperrors.NewRenderError(
			"Template rendering failed",
			err.Error(),
			"This indicates a bug in the assembler; please report it",
			fmt.Errorf("%w: %v", apperrors.ErrRenderFailed, err))
	}

	console := ui.NewConsole()

	if isDryRun {
		console.PrintWarning("DRY RUN MODE - no template will be written")
		printPlan(console, tmpl)
		slog.Info("Dry run completed", "buildId", buildID, "resources", len(tmpl.Resources))
		return nil
	}

	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write template file: %w", err)
	}

	console.PrintSuccess(fmt.Sprintf("✅ Template written to: %s", outPath))
	slog.Info("Template build completed successfully", "buildId", buildID, "output", outPath, "resources", len(tmpl.Resources))
	return nil
}

// Validate runs parse, assembly, and structural validation without rendering
// any output.
func Validate(specPath string) error {
	slog.Info("Validating deployment spec", "specPath", specPath)

	tmpl, err := assembleFromFile(specPath)
	if err != nil {
		return err
	}

	ui.NewConsole().PrintSuccess(fmt.Sprintf("✅ Deployment spec is valid (%d resources, %d parameters)",
		len(tmpl.Resources), len(tmpl.Parameters)))
	return nil
}

// assembleFromFile runs the shared parse → compose → validate pipeline. Any
// failure aborts the build entirely; no partial template escapes this
// function.
func assembleFromFile(specPath string) (*arm.Template, error) {
	d, err := parser.Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("deployment spec parsing failed: %w", err)
	}
	slog.Info("Deployment spec parsed successfully", "name", d.Metadata.Name, "resources", len(d.Spec.Resources))

	configs, err := d.Spec.ToResources()
	if err != nil {
		return nil, apperrors.NewUnknownKindError(
			"Resource declaration failed",
			err.Error(),
			"Check the kind field of each declared resource",
			fmt.Errorf("%w: %v", apperrors.ErrUnknownResourceKind, err))
	}

	tmpl, err := assemble.Build(configs, assemble.Settings{
		Location:   d.Spec.Location,
		Parameters: d.Spec.Parameters,
		Variables:  namedValues(d.Spec.Variables),
		Outputs:    namedValues(d.Spec.Outputs),
	})
	if err != nil {
		return nil, fmt.Errorf("template assembly failed: %w", err)
	}

	if err := tmpl.Validate(); err != nil {
		return nil, apperrors.NewValidationError(
			"Template validation failed",
			err.Error(),
			"Fix the reported structural problem in the deployment spec",
			fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err))
	}

	return tmpl, nil
}

func printPlan(console *ui.Console, tmpl *arm.Template) {
	console.PrintHeading("Resources:")
	for _, r := range tmpl.Resources {
		console.PrintPlanEntry(r.Type, r.Name, len(r.DependsOn))
	}
	if len(tmpl.Parameters) > 0 {
		console.PrintHeading("Parameters supplied at deploy time:")
		for name := range tmpl.Parameters {
			console.PrintDetail(name)
		}
	}
}

func namedValues(in []spec.NamedValue) []resource.NamedValue {
	out := make([]resource.NamedValue, 0, len(in))
	for _, v := range in {
		out = append(out, resource.NamedValue{Name: v.Name, Value: v.Value})
	}
	return out
}
