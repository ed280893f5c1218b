package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wealthmap/wealthmap"
	"github.com/wealthmap/wealthmap/internal/log"
)

// ingestJob is a single area to ingest: a postal code plus the property type
// passed through to the provider.
type ingestJob struct {
	PostalCode   string `yaml:"postal_code"`
	PropertyType string `yaml:"property_type"`
}

// ingestJobsFile is the YAML document accepted by --jobs.
type ingestJobsFile struct {
	Jobs []ingestJob `yaml:"jobs"`
}

func ingestCmd() *cobra.Command {
	var (
		envFile      string
		jobsFile     string
		postalCodes  []string
		propertyType string
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest property records for one or more postal codes",
		Long: `Ingest property records for one or more postal codes.

Areas come either from repeated --zip flags combined with --type, or from a
YAML jobs file:

  jobs:
    - postal_code: "90210"
      property_type: "SFR"
    - postal_code: "10007"
      property_type: "CONDO"

Each record is fetched from the ATTOM gateway, normalized, upserted, linked
to its owners, and every touched owner's net worth is recomputed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(envFile, jobsFile, postalCodes, propertyType)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&jobsFile, "jobs", "", "Path to a YAML file listing ingest jobs")
	cmd.Flags().StringSliceVar(&postalCodes, "zip", nil, "Postal code to ingest (repeatable)")
	cmd.Flags().StringVar(&propertyType, "type", "SFR", "Property type passed to the provider for --zip areas")

	return cmd
}

func runIngest(envFile, jobsFile string, postalCodes []string, propertyType string) error {
	jobs, err := collectJobs(jobsFile, postalCodes, propertyType)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return errors.New("nothing to ingest: provide --zip or --jobs")
	}

	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if cfg.AttomAPIKey() == "" {
		return errors.New("ATTOM_API_KEY is required for ingestion")
	}

	logger := log.Setup(cfg)

	client, err := wealthmap.New(clientOptions(cfg, logger)...)
	if err != nil {
		return fmt.Errorf("create wealthmap client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close wealthmap client", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for _, job := range jobs {
		if err := client.Ingestion.IngestArea(ctx, job.PostalCode, job.PropertyType); err != nil {
			return fmt.Errorf("ingest area %s: %w", job.PostalCode, err)
		}
	}

	logger.Info("ingestion complete", slog.Int("areas", len(jobs)))
	return nil
}

// collectJobs merges the --jobs file with any --zip flags. Flag areas run
// after the file's jobs.
func collectJobs(jobsFile string, postalCodes []string, propertyType string) ([]ingestJob, error) {
	var jobs []ingestJob

	if jobsFile != "" {
		data, err := os.ReadFile(jobsFile)
		if err != nil {
			return nil, fmt.Errorf("read jobs file: %w", err)
		}

		var doc ingestJobsFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse jobs file: %w", err)
		}

		for _, job := range doc.Jobs {
			if job.PostalCode == "" {
				return nil, fmt.Errorf("jobs file %s: job missing postal_code", jobsFile)
			}
			if job.PropertyType == "" {
				job.PropertyType = propertyType
			}
			jobs = append(jobs, job)
		}
	}

	for _, zip := range postalCodes {
		jobs = append(jobs, ingestJob{PostalCode: zip, PropertyType: propertyType})
	}

	return jobs, nil
}
