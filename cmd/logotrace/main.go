// logotrace replays the logo animation without a window and prints what
// every frame draws.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/logoanim/internal/logger"
	"github.com/Faultbox/logoanim/internal/mesh"
	"github.com/Faultbox/logoanim/internal/trace"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "run":
		err = cmdRun(args)
	case "diff":
		err = cmdDiff(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`logotrace - headless replay of the logo animation

Usage:
  logotrace <command> [options]

Commands:
  run  [-frames N] [-step MS] [-start MS] [-toggles] [-o file]   Write a YAML trace
  diff <a.yaml> <b.yaml>                                         Compare two traces

Examples:
  logotrace run -frames 600 -step 16 -o trace.yaml
  logotrace run -toggles -frames 2000
  logotrace diff old.yaml new.yaml`)
}

func cmdRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	frames := fs.Int("frames", 400, "Number of frames to replay")
	step := fs.Int64("step", 16, "Milliseconds between frames")
	start := fs.Int64("start", 0, "Timestamp of the first frame")
	toggles := fs.Bool("toggles", false, "Only print frames that switch segments")
	out := fs.String("o", "", "Output file (default stdout)")
	logFile := fs.String("log-file", "", "Write debug log to this file")
	fs.Parse(args)

	if *logFile != "" {
		if err := logger.Setup(logger.Options{Level: "debug", File: logger.DefaultFileConfig(*logFile)}); err != nil {
			return err
		}
	}

	buf, err := mesh.Logo()
	if err != nil {
		return err
	}

	records, err := trace.Run(buf, trace.Options{
		Frames:      *frames,
		StartMs:     *start,
		StepMs:      *step,
		OnlyToggles: *toggles,
	})
	if err != nil {
		return err
	}
	logger.Info("trace complete", zap.Int("frames", *frames), zap.Int("records", len(records)))

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return trace.WriteYAML(w, records)
}

func cmdDiff(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: logotrace diff <a.yaml> <b.yaml>")
	}

	a, err := readTrace(args[0])
	if err != nil {
		return err
	}
	b, err := readTrace(args[1])
	if err != nil {
		return err
	}

	i := trace.Diff(a, b)
	if i < 0 {
		fmt.Printf("identical (%d records)\n", len(a))
		return nil
	}
	if i >= len(a) || i >= len(b) {
		return fmt.Errorf("traces differ in length: %d vs %d records", len(a), len(b))
	}
	return fmt.Errorf("traces differ at record %d:\n  %+v\n  %+v", i, a[i], b[i])
}

func readTrace(path string) ([]trace.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return trace.ReadYAML(f)
}
