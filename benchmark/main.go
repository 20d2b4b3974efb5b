// Package main provides a performance benchmarking tool for the Roadmap CLI.
// It generates synthetic milestone sheets of increasing size and measures
// layout and export times with and without the journey-order store,
// treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - roadmap binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated sheets and the SQLite store
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-store average, cold run and average of warm runs).
type BenchmarkResult struct {
	Sheet       string
	Command     string
	NoStoreTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	NoStoreRuns int
	StoreRuns   int
	SheetSizes  map[string]int // sheet name -> milestones
}

// Vocabulary for synthetic sheets.
var (
	milestoneTypes = []string{"Customer Go Live", "Tech Drop", "Checkpoint", "Critical Dependency"}
	sizes          = []string{"XS", "S", "M", "L", "XL", "XXL"}
)

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:     os.Args[1],
		Timeout:     2 * time.Minute,
		NoStoreRuns: 3,
		StoreRuns:   4,
		SheetSizes: map[string]int{
			"small":  100,
			"medium": 2_000,
			"large":  20_000,
		},
	}

	if _, err := exec.LookPath("roadmap"); err != nil {
		fmt.Printf("Prerequisites check failed: roadmap binary not found in PATH\n")
		os.Exit(1)
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		fmt.Printf("Failed to create work dir: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// generateSheet writes a sheet of n milestones spread over 8 programs and a year.
func generateSheet(path string, n int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Program", "Journey", "Milestone Type", "Delivery Milestone", "Planned Delivery Date", "Tshirt Size"}); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(42, uint64(n)))
	start := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	for i := range n {
		date := start.AddDate(0, 0, rng.IntN(365))
		rec := []string{
			fmt.Sprintf("Program %d", i%8),
			fmt.Sprintf("Journey %d", rng.IntN(12)),
			milestoneTypes[rng.IntN(len(milestoneTypes))],
			fmt.Sprintf("Milestone %d", i),
			date.Format("01/02/2006"),
			sizes[rng.IntN(len(sizes))],
		}
		if err := writer.Write(rec); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// runBenchmarks executes all benchmark tests across generated sheets
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d sheets, %v timeout, no-store: %d runs, store: %d runs\n",
		len(config.SheetSizes), config.Timeout, config.NoStoreRuns, config.StoreRuns)

	for _, name := range []string{"small", "medium", "large"} {
		n := config.SheetSizes[name]
		sheet := filepath.Join(config.WorkDir, name+".csv")
		if err := generateSheet(sheet, n); err != nil {
			fmt.Printf("Failed to generate %s: %v\n", sheet, err)
			continue
		}
		fmt.Printf("Benchmarking %s (%d milestones)\n", name, n)

		results = append(results,
			runBenchmarkSuite(config, name, "layout", "--output", "json", "--output-file", filepath.Join(config.WorkDir, name+".json"), sheet),
			runBenchmarkSuite(config, name, "export", "--output-file", filepath.Join(config.WorkDir, name+".svg"), sheet),
		)
	}

	return results
}

// runBenchmarkSuite runs both no-store and store benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, name, command string, args ...string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", command, name)

	// Helper to run a benchmark phase
	runPhase := func(backend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, command, args, backend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
		}
		return cold, avgTime
	}

	// Phase 1: No-store runs
	_, noStoreAvg := runPhase("none", config.NoStoreRuns, "No-store")

	// Phase 2: SQLite store runs, the first one seeds the journey orders
	coldTime, warmAvg := runPhase("sqlite", config.StoreRuns, "Store")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-store average: %s, Cold time: %s, Warm average: %s\n", noStoreAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Sheet:       name,
		Command:     command,
		NoStoreTime: noStoreAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a roadmap command multiple times with the given backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, command string, args []string, backend string, numRuns int) (coldTime float64, warmTimes []float64) {
	cmdArgs := append([]string{command, "--order-backend", backend}, args...)
	dbPath := filepath.Join(config.WorkDir, "orders.db")

	var times []float64
	for range numRuns {
		start := time.Now()

		cmd := exec.Command("roadmap", cmdArgs...)
		cmd.Dir = config.WorkDir
		cmd.Env = append(os.Environ(), "HOME="+config.WorkDir, "ROADMAP_ORDER_DB_CONNECT="+dbPath)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates a written result
func isSuccess(output []byte) bool {
	return strings.Contains(string(output), "💾 Wrote")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/roadmap_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"sheet", "cmd", "no_store_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Sheet, result.Command, result.NoStoreTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range []string{"layout", "export"} {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %-8s: No-store: %s, Cold: %s, Warm: %s\n", result.Sheet, result.NoStoreTime, result.ColdTime, result.WarmTime)
			}
		}
	}
}
