package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/magnetar/internal/config"
	"github.com/papapumpkin/magnetar/internal/docstore"
	"github.com/papapumpkin/magnetar/internal/library"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Assign missing ids and write them back",
	Long: `Loads every document, assigns ids to projects, boards, and todos that
lack one, and rewrites exactly the annotated lines plus the metadata
block of each touched document.

With --watch, stays running and re-syncs whenever a document changes.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().Bool("dry-run", false, "report what would change without writing")
	syncCmd.Flags().Bool("watch", false, "keep running and re-sync on document changes")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	watch, _ := cmd.Flags().GetBool("watch")

	if err := syncOnce(cfg, dryRun); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	watcher, err := library.NewWatcher(cfg.RootPath)
	if err != nil {
		return fmt.Errorf("watching %s: %w", cfg.RootPath, err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.RootPath, err)
	}
	defer watcher.Stop()

	fmt.Printf("watching %s\n", cfg.RootPath)
	for change := range watcher.Changes {
		if change.Kind == library.ChangeRemoved {
			fmt.Printf("removed: %s\n", change.Path)
		}
		if err := syncOnce(cfg, dryRun); err != nil {
			// Keep watching; a half-saved edit often parses on the
			// next write.
			fmt.Fprintf(os.Stderr, "sync: %v\n", err)
		}
	}
	return nil
}

func syncOnce(cfg config.Config, dryRun bool) error {
	store := docstore.New(cfg.RootPath)
	lib, err := library.Load(store)
	if err != nil {
		return err
	}
	if err := lib.Reconcile(); err != nil {
		return err
	}

	touched := 0
	for _, p := range lib.Projects {
		if lib.Dirty(p) {
			touched++
			if dryRun {
				fmt.Printf("would rewrite %s\n", lib.DocumentPath(p))
			}
		}
	}

	if dryRun {
		fmt.Printf("%d of %d documents need ids\n", touched, len(lib.Projects))
		return nil
	}
	if err := lib.Flush(store); err != nil {
		return err
	}
	fmt.Printf("synced %d documents, %d rewritten\n", len(lib.Projects), touched)
	return nil
}
