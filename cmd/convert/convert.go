// Package convert handles single Bank Austria export conversion commands
package convert

import (
	"bankaustria-csv/cmd/root"
	"bankaustria-csv/internal/baparser"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Bank Austria CSV export",
	Long:  `Convert a single Bank Austria CSV export file into the normalized transaction CSV format.`,
	Run:   convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Convert command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output file: %s", root.SharedFlags.Output)

	opts := root.ParserOptions()

	if root.SharedFlags.Validate {
		root.Log.Info("Validating format...")
		valid, err := baparser.ValidateFormat(root.SharedFlags.Input, opts)
		if err != nil {
			root.Log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			root.Log.Fatal("The file is not a Bank Austria export")
		}
		root.Log.Info("Validation successful.")
	}

	if err := baparser.ConvertToCSV(root.SharedFlags.Input, root.SharedFlags.Output, opts); err != nil {
		root.Log.Fatalf("Error converting Bank Austria export: %v", err)
	}
	root.Log.Info("Bank Austria export conversion completed successfully!")
}
