package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"data-profiler/internal/detect"
	"data-profiler/internal/dialect"
	"data-profiler/internal/loader"
	"data-profiler/internal/schema"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dialectName   string
	tableName     string
	separator     string
	projectID     string
	datasetID     string
	reportPath    string
	ddlPath       string
	enableBoolean bool
	applyDDL      bool
	applyDSN      string
)

var profileCmd = &cobra.Command{
	Use:   "profile <file>",
	Short: "Detect column types of a file and generate schema report + DDL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		// 0. Keyword config (degraded fallback on failure, never fatal)
		kwPath := viper.GetString("detection.keywords")
		cfg, err := detect.LoadKeywordConfig(kwPath)
		if err != nil {
			log.Printf("Warning: %v. Proceeding with default keyword set.", err)
		}

		// 1. Load
		sep := ','
		if separator != "" {
			sep = []rune(separator)[0]
		}
		log.Printf("Loading %s...", input)
		t, err := loader.Load(input, sep)
		if err != nil {
			return err
		}
		fmt.Printf("🔎 Loaded %d columns x %d rows\n", len(t.Columns), t.RowCount())

		// 2. Detection pipeline
		useBoolean := viper.GetBool("detection.enable_boolean")
		if cmd.Flags().Changed("enable-boolean") {
			useBoolean = enableBoolean
		}
		pipeline := detect.NewPipeline(cfg, useBoolean)

		start := time.Now()
		uiprogress.Start()
		bar := uiprogress.AddBar(pipeline.StepCount()).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Detecting: "
		})
		pipeline.OnStep(func(name string) {
			bar.Incr()
		})

		typed, err := pipeline.Run(t)
		uiprogress.Stop()
		if err != nil {
			return err
		}

		// 3. Dialect
		d, err := dialect.GetDialect(dialectName, dialect.Options{ProjectID: projectID, DatasetID: datasetID})
		if err != nil {
			return err
		}

		// 4. Schema + exports
		gen := schema.NewGenerator(typed, d)
		entries, err := gen.SchemaMap()
		if err != nil {
			return err
		}

		output, err := GetOutputConfig()
		if err != nil {
			return err
		}
		if reportPath != "" {
			output.Report = reportPath
		}
		if ddlPath != "" {
			output.DDL = ddlPath
		}

		name := tableName
		if name == "" {
			name = normalizeTableName(input)
		}

		if err := gen.ExportReport(output.Report); err != nil {
			return err
		}
		if err := gen.ExportDDL(name, output.DDL); err != nil {
			return err
		}

		// 5. Summary
		fmt.Println("\n📊 Detected Schema:")
		for i, col := range typed.Columns {
			e := entries[col.Name]
			mandatory := "mandatory"
			if e.Nullable {
				mandatory = "nullable"
			}
			fmt.Printf("[%02d] %-24s %-12s %-14s len=%-4d %s\n",
				i+1, col.Name, col.Kind, e.Type, e.Length, mandatory)
		}
		fmt.Println("--------------------------------------------------")
		fmt.Printf("Report: %s\nDDL:    %s\n", output.Report, output.DDL)
		log.Printf("Profile Done! Time Elapsed: %s", time.Since(start))

		// 6. Optional apply (Oracle only)
		if applyDDL {
			ddl, err := gen.DDL(name)
			if err != nil {
				return err
			}
			return applyOracleDDL(d, ddl)
		}
		return nil
	},
}

// applyOracleDDL executes the freshly generated CREATE TABLE on a live
// Oracle database. Only the oracle dialect has a driver wired in.
func applyOracleDDL(d dialect.Dialect, ddl string) error {
	if d.Name() != "oracle" {
		return fmt.Errorf("--apply is only supported for the oracle dialect")
	}
	dsn := applyDSN
	if dsn == "" {
		dsn = viper.GetString("database.dsn")
	}
	if dsn == "" {
		return fmt.Errorf("database.dsn is required for --apply (via flag or config)")
	}

	db, err := sql.Open("oracle", dsn)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}

	// Oracle rejects the trailing statement terminator through the driver.
	stmt := strings.TrimSuffix(strings.TrimSpace(ddl), ";")
	if _, err := db.Exec(stmt); err != nil {
		return fmt.Errorf("failed to apply DDL: %w", err)
	}
	log.Println("DDL applied successfully.")
	return nil
}

// normalizeTableName derives a table name from the input file name.
func normalizeTableName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(base)
	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func init() {
	RootCmd.AddCommand(profileCmd)

	profileCmd.Flags().StringVarP(&dialectName, "dialect", "d", "oracle", "Target dialect: oracle or bigquery")
	profileCmd.Flags().StringVarP(&tableName, "table", "t", "", "Table name for the DDL (default: derived from file name)")
	profileCmd.Flags().StringVarP(&separator, "separator", "s", "", "CSV field separator (default ',')")
	profileCmd.Flags().StringVar(&projectID, "project", "", "BigQuery project id qualifier")
	profileCmd.Flags().StringVar(&datasetID, "dataset", "", "BigQuery dataset id qualifier")
	profileCmd.Flags().StringVar(&reportPath, "report", "", "Schema report output path (overrides config)")
	profileCmd.Flags().StringVar(&ddlPath, "ddl", "", "DDL output path (overrides config)")
	profileCmd.Flags().BoolVar(&enableBoolean, "enable-boolean", false, "Enable the boolean conversion step")
	profileCmd.Flags().BoolVar(&applyDDL, "apply", false, "Execute the generated DDL against a live Oracle database")
	profileCmd.Flags().StringVar(&applyDSN, "dsn", "", "Oracle DSN for --apply")

	viper.BindPFlag("detection.enable_boolean", profileCmd.Flags().Lookup("enable-boolean"))
	viper.BindPFlag("database.dsn", profileCmd.Flags().Lookup("dsn"))
}
