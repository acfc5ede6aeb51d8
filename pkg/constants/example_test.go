package constants_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/neurocrista/genemap/pkg/constants"
)

// Example demonstrates using constants for common operations
func Example() {
	// Create directory with standard permissions
	dir := filepath.Join(".", "data")
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		panic(err)
	}

	// Create file with standard permissions
	file := filepath.Join(dir, "config.yaml")
	data := []byte("config: true")
	if err := os.WriteFile(file, data, constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("Created dir with %o permissions\n", constants.DirPermissions)
	fmt.Printf("Created file with %o permissions\n", constants.FilePermissions)
	// Output:
	// Created dir with 755 permissions
	// Created file with 644 permissions
}

// Example_timeouts demonstrates timeout constants
func Example_timeouts() {
	// Context with operation timeout
	ctx, cancel := context.WithTimeout(
		context.Background(),
		constants.DefaultTimeout,
	)
	defer cancel()

	// Simulated operation
	select {
	case <-time.After(100 * time.Millisecond):
		fmt.Println("Operation completed")
	case <-ctx.Done():
		fmt.Println("Operation timed out")
	}

	fmt.Printf("Default timeout: %v\n", constants.DefaultTimeout)
	fmt.Printf("Reconcile timeout: %v\n", constants.ReconcileTimeout)

	// Output:
	// Operation completed
	// Default timeout: 10s
	// Reconcile timeout: 2m0s
}

// Example_concurrencyLimits demonstrates concurrency constants
func Example_concurrencyLimits() {
	// Worker pool with limited concurrency
	jobs := make(chan int, constants.ChannelBufferSize)
	results := make(chan int, constants.ChannelBufferSize)

	// Start workers up to the default merge worker count
	for w := 0; w < constants.DefaultMergeWorkers; w++ {
		go func() {
			for job := range jobs {
				results <- job * 2
			}
		}()
	}

	// Send jobs
	for i := 0; i < 20; i++ {
		jobs <- i
	}
	close(jobs)

	fmt.Printf("Folding with %d workers\n", constants.DefaultMergeWorkers)
	// Output: Folding with 4 workers
}

// Example_snapshotDates demonstrates the snapshot date key format
func Example_snapshotDates() {
	day := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	fmt.Println(day.Format(constants.SnapshotDateFormat))
	// Output: 2025-03-14
}
