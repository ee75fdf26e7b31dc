// Package engine synthesizes demo datasets for trying out the profiler:
// a CSV that exercises every detection path (integers, comma-decimal
// numbers, dates, timestamps, booleans, low-cardinality categories,
// forced-text names, an all-empty column).
package engine

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var statusValues = []string{"ACTIVE", "INACTIVE", "PENDING"}

// WriteSampleCSV writes a synthetic dataset with rows data rows to path,
// creating parent directories as needed. A zero seed randomizes.
func WriteSampleCSV(path string, rows int, seed int64) error {
	if rows <= 0 {
		return fmt.Errorf("rows must be > 0")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)
	rng := rand.New(rand.NewSource(seed))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create sample directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sample file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"id", "customer_name", "email", "status",
		"amount", "signup_date", "last_login", "active", "notes", "legacy_field",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	base := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		// European-style amount: dot thousands, comma decimal.
		amount := float64(rng.Intn(5_000_000)) / 100
		signup := base.AddDate(0, 0, rng.Intn(900))
		login := signup.Add(time.Duration(rng.Intn(86_400)) * time.Second)

		active := "no"
		if rng.Intn(2) == 1 {
			active = "yes"
		}

		rec := []string{
			strconv.Itoa(i + 1),
			gofakeit.Name(),
			gofakeit.Email(),
			statusValues[rng.Intn(len(statusValues))],
			formatEuropeanAmount(amount),
			signup.Format("2006-01-02"),
			login.Format("2006-01-02 15:04:05"),
			active,
			gofakeit.Sentence(4),
			"", // stays empty so the profiler sees an all-null column
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// formatEuropeanAmount renders 12345.67 as "12.345,67".
func formatEuropeanAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart := s[:len(s)-3]
	frac := s[len(s)-2:]

	var grouped []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, c)
	}
	return string(grouped) + "," + frac
}
