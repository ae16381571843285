package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/constraints"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/models"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/validator"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

var errUsage = errors.New("usage error")

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run validates one design and prints the verdict as JSON to stdout.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var prompt *string
	fs.Func("prompt", "Design prompt (required, may be empty)", func(s string) error {
		prompt = &s
		return nil
	})
	category := fs.String("category", "", "Catalog category: ring, necklace, bracelet, earrings")
	constraintsPath := fs.String("constraints", "", "Optional YAML constraint catalog overriding the defaults")

	var thickness, weight, minThickness, maxWeight *float64
	fs.Func("thickness", "Declared thickness in mm", floatFlag(&thickness))
	fs.Func("weight", "Declared weight in grams", floatFlag(&weight))
	fs.Func("min-thickness", "Explicit minimum thickness in mm, overrides the -category limit", floatFlag(&minThickness))
	fs.Func("max-weight", "Explicit maximum weight in grams, overrides the -category limit", floatFlag(&maxWeight))

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if prompt == nil {
		fmt.Fprintln(stderr, "required flag -prompt not provided")
		return exitUsage
	}

	attrs := models.DesignAttributes{Prompt: prompt, Thickness: thickness, Weight: weight}

	result, err := validateDesign(attrs, *category, *constraintsPath, minThickness, maxWeight)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		log.Error().Err(err).Msg("Failed to write result")
		return exitUsage
	}

	printSummary(stderr, result)

	if !result.Valid {
		return exitInvalid
	}
	return exitValid
}

// printSummary writes a human readable verdict next to the JSON output.
func printSummary(w io.Writer, result models.ValidationResult) {
	if result.Valid {
		color.New(color.FgGreen, color.Bold).Fprintln(w, "✓ design is manufacturable")
		return
	}

	color.New(color.FgRed, color.Bold).Fprintf(w, "✗ design failed %d check(s)\n", len(result.Errors))
	errColor := color.New(color.FgRed)
	for _, e := range result.Errors {
		errColor.Fprintf(w, "  - %s\n", e)
	}
	for _, warning := range result.Warnings {
		color.New(color.FgYellow).Fprintf(w, "  ! %s\n", warning)
	}
}

func validateDesign(
	attrs models.DesignAttributes,
	category string,
	constraintsPath string,
	minThickness, maxWeight *float64,
) (models.ValidationResult, error) {
	overrides := models.DesignConstraints{MinThickness: minThickness, MaxWeight: maxWeight}

	if category == "" {
		if minThickness == nil && maxWeight == nil {
			return models.ValidationResult{}, fmt.Errorf("%w: -category or -min-thickness/-max-weight is required", errUsage)
		}
		return validator.ValidateDesign(attrs, overrides)
	}

	catalog, err := constraints.LoadCatalog(constraintsPath)
	if err != nil {
		return models.ValidationResult{}, err
	}

	return validator.NewDesignValidator(catalog).ValidateOverride(category, attrs, overrides)
}

func floatFlag(dst **float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}
