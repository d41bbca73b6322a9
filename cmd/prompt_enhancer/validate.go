package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/prompt-enhancer/internal/schemas"
	bundled "github.com/jonathan/prompt-enhancer/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a request or config file against its JSON Schema",
	Long: `Validate a JSON file against one of the bundled schemas (enhancement request or config)
or against a schema file given with --schema.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var (
	validateJSONPath   string
	validateSchemaPath string
	validateKind       string
)

func init() {
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to the JSON file to validate (required)")
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to a JSON Schema file (overrides --kind)")
	validateCmd.Flags().StringVar(&validateKind, "kind", "request", "Bundled schema to use: request or config")

	_ = validateCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	switch {
	case validateSchemaPath != "":
		err = schemas.ValidateJSON(validateSchemaPath, validateJSONPath)
	case validateKind == "request":
		err = schemas.ValidateBundledFile(bundled.EnhancementRequest, validateJSONPath)
	case validateKind == "config":
		err = schemas.ValidateBundledFile(bundled.Config, validateJSONPath)
	default:
		return fmt.Errorf("unknown --kind %q (valid: request, config)", validateKind)
	}

	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed:\n%s", validationErr.Error())
			return fmt.Errorf("%s does not match the schema", validateJSONPath)
		}
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", validateJSONPath)
	return nil
}
