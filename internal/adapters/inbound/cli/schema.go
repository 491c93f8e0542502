package cli

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/flightlint/flightlint/internal/domain"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for rule documents",
		Long:  "Emit the JSON Schema a compiled rule document must conform to. Rule compilers can validate their output against it before handing documents to flightlint.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reflector := jsonschema.Reflector{DoNotReference: true}
			schema := reflector.Reflect(&domain.RuleDocument{})

			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling schema: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
