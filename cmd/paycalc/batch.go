package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/paycalc/internal/batch"
	"github.com/Veraticus/paycalc/internal/common"
	"github.com/Veraticus/paycalc/internal/config"
)

var errMissingInput = errors.New("missing --input file")

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Calculate payroll for every worker in a CSV file",
		Long: `Read workers from a CSV file with the header

  name,tax_id,gross_salary,category

and write one result line per worker. Category uses the same codes as the
interactive prompt (1 = Employee, 2 = Intern, 3 = Contractor). Processing
stops at the first invalid row.`,
		Args: cobra.NoArgs,
		RunE: runBatch,
	}

	cmd.Flags().StringP("input", "i", "", "CSV file with workers")
	cmd.Flags().StringP("output", "o", "", "write results to this file instead of stdout")

	_ = viper.BindPFlag("batch.input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("batch.output", cmd.Flags().Lookup("output"))

	return cmd
}

func runBatch(cmd *cobra.Command, _ []string) error {
	inputPath := config.ExpandPath(viper.GetString("batch.input"))
	if inputPath == "" {
		return errMissingInput
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open batch file: %w", err)
	}
	defer in.Close()

	rows, err := batch.Load(in)
	if err != nil {
		return err
	}

	results, err := batch.Process(rows)
	if err != nil {
		common.LogError(err, "Batch rejected", common.Fields{"input": inputPath})
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if outputPath := config.ExpandPath(viper.GetString("batch.output")); outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := batch.Write(out, results); err != nil {
		return err
	}

	common.LogInfo("Batch processed", common.Fields{"input": inputPath, "workers": len(results)})
	return nil
}
