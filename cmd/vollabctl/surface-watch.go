package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// surfaceWatchCmd represents the surface watch command
var surfaceWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a trigger file and refit surfaces when it changes",
	Long: `Watch a trigger file and refit surfaces when it changes.

The watched file holds one fit request per line:

  <options.csv> <date> <ticker>

Replacing its contents triggers a refit of every listed request. This is
meant for pipelines that drop fresh end-of-day quote files.

Example:
  vollabctl surface watch /run/vollab/fit-requests --model ssvi`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		model, _ := cmd.Flags().GetString("model")
		ratesPath, _ := cmd.Flags().GetString("rates")

		if err := watchSurfaces(args[0], model, ratesPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	surfaceWatchCmd.Flags().String("model", "svi", "smile model: sabr, svi or ssvi")
	surfaceWatchCmd.Flags().String("rates", "", "optional par-yield CSV for forwards")
	surfaceCmd.AddCommand(surfaceWatchCmd)
}

func watchSurfaces(filename, model, ratesPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for fit requests (model: %s)\n", filename, model)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, refitting...\n", time.Now().Format(time.RFC3339))
				runFitRequests(filename, model, ratesPath)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}

func runFitRequests(filename, model, ratesPath string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		return
	}

	for _, line := range strings.Split(string(content), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			continue
		}
		if err := fitSurfaces(fields[0], fields[1], fields[2], model, ratesPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error fitting %s: %v\n", line, err)
		}
	}
}
