package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/johnquangdev/smart-voice-assistant/internal/infrastructure/database"
	"github.com/johnquangdev/smart-voice-assistant/pkg/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the database schema with the embedded SQL migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newUpCommand())
	cmd.AddCommand(newDownCommand())
	cmd.AddCommand(newStatusCommand())
	return cmd
}

func newUpCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withDB(func(db *gorm.DB) error {
				n, err := database.Migrate(db, database.DirectionUp, limit)
				if err != nil {
					return err
				}
				log.Printf("✅ Successfully applied %d migration(s)!", n)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of migrations to apply (0 applies all)")
	return cmd
}

func newDownCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit must be at least 1")
			}
			return withDB(func(db *gorm.DB) error {
				n, err := database.Migrate(db, database.DirectionDown, limit)
				if err != nil {
					return err
				}
				log.Printf("✅ Rolled back %d migration(s)", n)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 1, "number of migrations to roll back")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which migrations have been applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(func(db *gorm.DB) error {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				records, err := database.MigrationStatus(ctx, db)
				if err != nil {
					return err
				}
				return printStatus(cmd.OutOrStdout(), records)
			})
		},
	}
}

func printStatus(out io.Writer, records []database.MigrationRecord) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MIGRATION\tAPPLIED AT")
	for _, rec := range records {
		applied := "pending"
		if rec.Applied {
			applied = rec.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\n", rec.ID, applied)
	}
	return w.Flush()
}

func withDB(fn func(db *gorm.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return err
	}
	defer database.CloseDB(db)

	return fn(db)
}
