package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/magnetar/internal/config"
	"github.com/papapumpkin/magnetar/internal/history"
	"github.com/papapumpkin/magnetar/internal/statestore"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently worked projects",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Bool("clear", false, "reset the recency log")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	ctx := context.Background()

	lib, _, err := openLibrary(cfg)
	if err != nil {
		return err
	}

	store, err := statestore.Open(ctx, cfg.StateDB)
	if err != nil {
		return err
	}
	defer store.Close()

	state, err := store.Load(ctx)
	if err != nil {
		return err
	}

	if clear, _ := cmd.Flags().GetBool("clear"); clear {
		state.ProjectsHistory = nil
		return store.Save(ctx, state)
	}

	hist := history.New(state, lib)
	projects := hist.Projects()
	if len(projects) == 0 {
		fmt.Println("no history yet")
		return store.Save(ctx, state)
	}

	for i, p := range projects {
		fmt.Printf("%2d. %s\n", i+1, p.Name)
	}
	// Normalization may have pruned dead projects; persist the result.
	return store.Save(ctx, state)
}
