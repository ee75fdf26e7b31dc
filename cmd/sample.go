package cmd

import (
	"fmt"
	"log"

	"data-profiler/internal/engine"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	sampleRows int
	sampleOut  string
	sampleSeed int64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a synthetic CSV exercising every detection path",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := viper.GetInt("sample.rows")
		if sampleRows > 0 { // Flag override
			rows = sampleRows
		}

		log.Printf("Generating %d sample rows...", rows)
		if err := engine.WriteSampleCSV(sampleOut, rows, sampleSeed); err != nil {
			return err
		}
		fmt.Printf("🔎 Sample written to %s\n", sampleOut)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().IntVar(&sampleRows, "rows", 0, "Number of rows to generate (overrides config)")
	sampleCmd.Flags().StringVarP(&sampleOut, "out", "o", "sample_data.csv", "Output CSV path")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "Random seed (0 = time-based)")

	viper.BindPFlag("sample.rows", sampleCmd.Flags().Lookup("rows"))
	viper.SetDefault("sample.rows", 100)
}
