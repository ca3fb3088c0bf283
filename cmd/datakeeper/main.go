// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-data-keeper/internal/adapter"
	"github.com/MKhiriev/go-data-keeper/internal/config"
	"github.com/MKhiriev/go-data-keeper/internal/logger"
	"github.com/MKhiriev/go-data-keeper/internal/service"
	"github.com/MKhiriev/go-data-keeper/internal/store"
	"github.com/MKhiriev/go-data-keeper/models"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:           "datakeeper",
		Short:         "Maintain blob datasets on a hosted open-data platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.SetLevel(logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON configuration file (env: DATAKEEPER_CONFIG)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Minimum log level (debug, info, warn, error)")

	cmd.AddCommand(newReplaceCommand(&configPath))
	cmd.AddCommand(newAttachCommand(&configPath))
	cmd.AddCommand(newMetadataCommand(&configPath))
	cmd.AddCommand(newExportCommand(&configPath))
	cmd.AddCommand(newJournalCommand(&configPath))
	return cmd
}

func newReplaceCommand(configPath *string) *cobra.Command {
	var (
		fourfour   string
		filePath   string
		visibility string
	)

	cmd := &cobra.Command{
		Use:   "replace",
		Short: "Replace a dataset's blob content and publish the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newPlatformEnv(*configPath)
			if err != nil {
				return err
			}
			defer env.close()

			target, err := env.resolveFourFour(fourfour)
			if err != nil {
				return err
			}
			vis, err := parseVisibility(visibility)
			if err != nil {
				return err
			}

			job, err := env.services.Publish.ReplaceBlob(cmd.Context(), target, filePath, vis)
			if err != nil {
				return err
			}

			fmt.Printf("dataset %s: blob replaced, publish job %s\n", target, job.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&fourfour, "fourfour", "", "Dataset identifier (defaults to the configured dataset)")
	cmd.Flags().StringVar(&filePath, "file", "", "Path to the replacement blob file")
	cmd.Flags().StringVar(&visibility, "visibility", string(models.VisibilityPublic), "Publish visibility: public or private")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newAttachCommand(configPath *string) *cobra.Command {
	var (
		fourfour   string
		visibility string
		names      []string
	)

	cmd := &cobra.Command{
		Use:   "attach FILE...",
		Short: "Append one or more attachments to a dataset and publish",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(names) > len(args) {
				return fmt.Errorf("got %d --name values for %d files", len(names), len(args))
			}

			env, err := newPlatformEnv(*configPath)
			if err != nil {
				return err
			}
			defer env.close()

			target, err := env.resolveFourFour(fourfour)
			if err != nil {
				return err
			}
			vis, err := parseVisibility(visibility)
			if err != nil {
				return err
			}

			contents := make([]service.AttachmentContent, len(args))
			for i, path := range args {
				contents[i] = service.AttachmentContent{Path: path}
				if i < len(names) {
					contents[i].Name = names[i]
				}
			}

			job, err := env.services.Attachments.AttachFiles(cmd.Context(), target, vis, contents...)
			if err != nil {
				return err
			}

			fmt.Printf("dataset %s: %d attachment(s) added, publish job %s\n", target, len(args), job.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&fourfour, "fourfour", "", "Dataset identifier (defaults to the configured dataset)")
	cmd.Flags().StringVar(&visibility, "visibility", string(models.VisibilityPublic), "Publish visibility: public or private")
	cmd.Flags().StringArrayVar(&names, "name", nil, "Display name for the matching FILE argument (repeatable, positional)")
	return cmd
}

func newMetadataCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Dataset metadata operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newMetadataSetCommand(configPath))
	return cmd
}

func newMetadataSetCommand(configPath *string) *cobra.Command {
	var (
		fourfour string
		category string
		field    string
		value    string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set one custom metadata field",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newPlatformEnv(*configPath)
			if err != nil {
				return err
			}
			defer env.close()

			target, err := env.resolveFourFour(fourfour)
			if err != nil {
				return err
			}

			if err = env.services.Metadata.SetCustomField(cmd.Context(), target, category, field, value); err != nil {
				return err
			}

			fmt.Printf("dataset %s: %s / %s updated\n", target, category, field)
			return nil
		},
	}

	cmd.Flags().StringVar(&fourfour, "fourfour", "", "Dataset identifier (defaults to the configured dataset)")
	cmd.Flags().StringVar(&category, "category", "", "Custom field category (fieldset name)")
	cmd.Flags().StringVar(&field, "field", "", "Custom field name within the category")
	cmd.Flags().StringVar(&value, "value", "", "New field value")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("field")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func newExportCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Local metadata export utilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newExportFilterCommand(configPath))
	return cmd
}

func newExportFilterCommand(configPath *string) *cobra.Command {
	var (
		inPath  string
		outPath string
		marker  string
		prefix  string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter a metadata export file and normalize entry names",
		RunE: func(cmd *cobra.Command, args []string) error {
			// purely local: no platform config or credentials needed
			if _, err := config.GetConfig(*configPath); err != nil {
				return err
			}

			svc := service.NewExportService(logger.NewLogger("cli"))
			kept, err := svc.TransformFile(inPath, outPath, marker, prefix)
			if err != nil {
				return err
			}

			fmt.Printf("%s: kept %d record(s)\n", outPath, kept)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "input", "i", "", "Metadata export JSON file to read")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Destination file (overwritten)")
	cmd.Flags().StringVar(&marker, "marker", service.DefaultExportMarker, "Substring a record's name must contain to be kept")
	cmd.Flags().StringVar(&prefix, "strip-prefix", service.DefaultExportStripPrefix, "Prefix removed from kept record names")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newJournalCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Local revision journal operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newJournalListCommand(configPath))
	return cmd
}

func newJournalListCommand(configPath *string) *cobra.Command {
	var (
		fourfour string
		openOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List revisions this tool opened and how each one ended",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig(*configPath)
			if err != nil {
				return err
			}

			journal, err := store.NewRevisionJournal(cmd.Context(), cfg.Storage.Journal, logger.NewLogger("store"))
			if err != nil {
				return fmt.Errorf("open revision journal: %w", err)
			}
			defer journal.Close()

			entries, err := journal.List(cmd.Context(), store.JournalFilter{FourFour: fourfour, OpenOnly: openOnly})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATASET\tSEQ\tACTION\tJOB STATUS\tOPENED\tAPPLIED")
			for _, entry := range entries {
				applied := "-"
				if entry.AppliedAt != nil {
					applied = entry.AppliedAt.Format("2006-01-02 15:04:05")
				}
				status := string(entry.JobStatus)
				if status == "" {
					status = "-"
				}
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
					entry.ID, entry.FourFour, entry.Seq, entry.Action, status,
					entry.OpenedAt.Format("2006-01-02 15:04:05"), applied)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&fourfour, "fourfour", "", "Only list revisions of this dataset")
	cmd.Flags().BoolVar(&openOnly, "open-only", false, "Only list revisions that were never applied")
	return cmd
}

// platformEnv bundles everything a network-facing command needs.
type platformEnv struct {
	cfg      *config.StructuredConfig
	services *service.Services
	journal  store.RevisionJournal
	logger   *logger.Logger
}

// newPlatformEnv loads configuration, validates the platform settings, and
// wires the adapter, journal, and service layer. The journal is best-effort:
// if it cannot be opened the command proceeds without local records.
func newPlatformEnv(configPath string) (*platformEnv, error) {
	cfg, err := config.GetConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err = cfg.ValidatePlatform(); err != nil {
		return nil, err
	}

	log := logger.NewLogger("cli")

	platform, err := adapter.NewHTTPPlatformAdapter(cfg.Platform, cfg.Auth, cfg.Adapter, log.GetChildLogger())
	if err != nil {
		return nil, err
	}

	journal, err := store.NewRevisionJournal(context.Background(), cfg.Storage.Journal, log.GetChildLogger())
	if err != nil {
		log.Warn().Err(err).Str("dsn", cfg.Storage.Journal.DSN).Msg("revision journal unavailable; continuing without local records")
		journal = nil
	}

	return &platformEnv{
		cfg:      cfg,
		services: service.NewServices(platform, journal, cfg.Publish, log),
		journal:  journal,
		logger:   log,
	}, nil
}

func (e *platformEnv) close() {
	if e.journal != nil {
		if err := e.journal.Close(); err != nil {
			e.logger.Warn().Err(err).Msg("close revision journal")
		}
	}
}

// resolveFourFour picks the dataset identifier: the command flag wins,
// otherwise the configured default.
func (e *platformEnv) resolveFourFour(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if e.cfg.Platform.FourFour != "" {
		return e.cfg.Platform.FourFour, nil
	}
	return "", fmt.Errorf("no dataset: pass --fourfour or set DATAKEEPER_PLATFORM_FOURFOUR")
}

func parseVisibility(raw string) (models.Visibility, error) {
	switch models.Visibility(raw) {
	case models.VisibilityPublic:
		return models.VisibilityPublic, nil
	case models.VisibilityPrivate:
		return models.VisibilityPrivate, nil
	default:
		return "", fmt.Errorf("invalid --visibility %q: want public or private", raw)
	}
}
