package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/klokku/planner/internal/app"
	"github.com/klokku/planner/internal/config"
	"github.com/klokku/planner/pkg/planner"
	log "github.com/sirupsen/logrus"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config path] <command>\n\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(), "Commands:")
	fmt.Fprintln(flag.CommandLine.Output(), "  generate [year]   write planner_<year>.pdf to the output directory")
	fmt.Fprintln(flag.CommandLine.Output(), "  serve             serve planners over HTTP")
	fmt.Fprintln(flag.CommandLine.Output())
	flag.PrintDefaults()
}

// generateYear reads the optional year of the generate command. 0 means the
// configured or current year.
func generateYear(args []string) (int, error) {
	switch len(args) {
	case 0:
		return 0, nil
	case 1:
	default:
		return 0, fmt.Errorf("generate takes at most one argument, got %d", len(args))
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", args[0], err)
	}
	if err := planner.ValidateYear(year); err != nil {
		return 0, err
	}
	return year, nil
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML configuration")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	application, err := app.NewApplication(*configPath)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	switch args[0] {
	case "generate":
		year, err := generateYear(args[1:])
		if err != nil {
			log.Error(err)
			usage()
			os.Exit(2)
		}
		result, path, err := application.Generate(context.Background(), year)
		if err != nil {
			log.Fatalf("failed to generate planner: %v", err)
		}
		fmt.Printf("Wrote %s: %d pages (%d weeks) in %s\n", path, result.Pages, result.Weeks, result.Duration)
	case "serve":
		if err := application.Run(); err != nil {
			log.Fatal(err)
		}
	default:
		log.Errorf("unknown command %q", args[0])
		usage()
		os.Exit(2)
	}
}
