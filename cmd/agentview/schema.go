package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/codewalk/agentview/progress"
)

var schemaResult bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the progress event stream",
	Long: `Prints the JSON schema of the per-line progress event (or, with
--result, of the terminal result record) so downstream display layers can
validate what they consume.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reflector := &jsonschema.Reflector{DoNotReference: true}

		var schema *jsonschema.Schema
		if schemaResult {
			schema = reflector.Reflect(&progress.Result{})
		} else {
			schema = reflector.Reflect(&progress.Event{})
		}

		out, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaResult, "result", false, "Emit the terminal result schema instead")
}
