// Package batch handles directory-wide conversion commands
package batch

import (
	"bankaustria-csv/cmd/root"
	"bankaustria-csv/internal/baparser"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert all Bank Austria exports in a directory",
	Long:  `Convert every Bank Austria CSV export found in the input directory into the normalized format.`,
	Run:   batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.InputDir, "input-dir", "d", "", "Input directory")
	Cmd.Flags().StringVarP(&root.OutputDir, "output-dir", "t", "", "Output directory")
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")
	root.Log.Infof("Input directory: %s", root.InputDir)
	root.Log.Infof("Output directory: %s", root.OutputDir)

	count, err := baparser.BatchConvert(root.InputDir, root.OutputDir, root.ParserOptions())
	if err != nil {
		root.Log.Fatalf("Error during batch conversion: %v", err)
	}
	root.Log.Infof("Batch conversion completed: %d file(s) converted", count)
}
