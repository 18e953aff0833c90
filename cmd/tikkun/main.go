// Package main implements the tikkun command, which derives a numeric
// profile from a birth date and optional full name and prints the
// composed archetype reading.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/phrazzld/tikkun-core/internal/archetype"
	"github.com/phrazzld/tikkun-core/internal/config"
	"github.com/phrazzld/tikkun-core/internal/domain"
	"github.com/phrazzld/tikkun-core/internal/domain/numerology"
	"github.com/phrazzld/tikkun-core/internal/platform/logger"
	"github.com/phrazzld/tikkun-core/internal/report"
	"github.com/phrazzld/tikkun-core/internal/service"
)

func main() {
	dateArg := flag.String("date", "", "birth date in YYYY-MM-DD form (required)")
	nameArg := flag.String("name", "", "full name; omit for a date-only reading")
	flag.Parse()

	if err := run(*dateArg, *nameArg); err != nil {
		fmt.Fprintf(os.Stderr, "tikkun: %v\n", err)
		os.Exit(1)
	}
}

func run(dateArg, nameArg string) error {
	if dateArg == "" {
		return fmt.Errorf("a -date is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	svc, err := buildService(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build reading service: %w", err)
	}

	parsed, err := time.Parse("2006-01-02", dateArg)
	if err != nil {
		return fmt.Errorf("failed to parse -date %q: %w", dateArg, err)
	}
	birth, err := domain.NewBirthDate(parsed.Year(), int(parsed.Month()), parsed.Day())
	if err != nil {
		return err
	}

	var name *domain.FullName
	if nameArg != "" {
		full, err := domain.NewFullName(nameArg)
		if err != nil {
			return err
		}
		name = &full
	}

	reading, err := svc.Analyze(context.Background(), birth, name)
	if err != nil {
		return err
	}

	fmt.Println(reading.Render())
	return nil
}

// buildService wires the service from configuration. Every reading
// fixture (letter table, knowledge base, overview layout) ships embedded;
// a configured path replaces the embedded copy.
func buildService(cfg *config.Config, log *slog.Logger) (service.ReadingService, error) {
	numbers := numerology.NewDefaultService()
	if path := cfg.Reading.LetterTablePath; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read letter table: %w", err)
		}
		table, err := numerology.LoadTable(data)
		if err != nil {
			return nil, err
		}
		numbers = numerology.NewServiceWithTable(table)
	}

	catalog, err := archetype.NewDefaultCatalog()
	if err != nil {
		return nil, err
	}
	if path := cfg.Reading.KnowledgeBasePath; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read knowledge base: %w", err)
		}
		catalog, err = archetype.LoadCatalog(data)
		if err != nil {
			return nil, err
		}
	}

	composer, err := report.NewComposer(catalog)
	if err != nil {
		return nil, err
	}
	if path := cfg.Reading.OverviewTemplatePath; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read overview template: %w", err)
		}
		composer, err = report.NewComposerWithTemplate(catalog, string(data))
		if err != nil {
			return nil, err
		}
	}

	return service.NewReadingService(numbers, archetype.NewResolver(catalog), composer, log)
}
