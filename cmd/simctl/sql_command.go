package main

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/sqlite-sim/engine"
)

func newSQLCommand(ctx *commandContext) *cobra.Command {
	var dsn string
	cmd := &cobra.Command{
		Use:   "sql <query>",
		Short: "Run a query with the similarity functions registered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			hasher, err := ctx.ensureHasher()
			if err != nil {
				return err
			}
			if err := engine.RegisterSimilarityFunctions(hasher); err != nil {
				return err
			}
			if strings.TrimSpace(dsn) == "" {
				dsn = cfg.SQL.DSN
			}
			logger := ctx.componentLogger("sql")
			logger.Debug("opening database", slog.String("dsn", dsn))

			db, err := engine.Open(dsn)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			columns, rows, err := query(cmd, db, args[0])
			if err != nil {
				return err
			}
			logger.Debug("query finished", slog.Int("rows", len(rows)))

			if ctx.jsonOutput() {
				records := make([]map[string]any, len(rows))
				for i, row := range rows {
					record := make(map[string]any, len(columns))
					for j, col := range columns {
						record[col] = jsonValue(row[j])
					}
					records[i] = record
				}
				return writeJSON(cmd, records)
			}
			text := make([][]string, len(rows))
			for i, row := range rows {
				text[i] = make([]string, len(row))
				for j, v := range row {
					text[i][j] = formatValue(v)
				}
			}
			printTable(cmd, columns, text, nil)
			return nil
		},
	}
	cmd.Flags().StringVar(&dsn, "dsn", "", "Database DSN (defaults to sql.dsn)")
	return cmd
}

func query(cmd *cobra.Command, db *sql.DB, statement string) ([]string, [][]any, error) {
	rows, err := db.QueryContext(cmd.Context(), statement)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	var result [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		result = append(result, values)
	}
	return columns, result, rows.Err()
}

func formatValue(v any) string {
	switch actual := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return hex.EncodeToString(actual)
	case float64:
		return strconv.FormatFloat(actual, 'g', -1, 64)
	default:
		return fmt.Sprint(actual)
	}
}

// jsonValue renders BLOBs as hex, matching the table output.
func jsonValue(v any) any {
	if b, ok := v.([]byte); ok {
		return hex.EncodeToString(b)
	}
	return v
}
