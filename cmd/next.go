package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/magnetar/internal/config"
	"github.com/papapumpkin/magnetar/internal/filter"
	"github.com/papapumpkin/magnetar/internal/history"
	"github.com/papapumpkin/magnetar/internal/statestore"
	"github.com/papapumpkin/magnetar/internal/suggest"
	"github.com/papapumpkin/magnetar/internal/tui"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Suggest what to work on next",
	Long: `Presents available todos one at a time, ordered by priority-weighted
randomness. Todos of recently worked projects come last, close to their
document order. Accepting a candidate records it as pending work; the
next run asks whether you worked on it before suggesting again.`,
	RunE: runNext,
}

func init() {
	nextCmd.Flags().Bool("urgent", false, "only ultra-urgent todos")
	nextCmd.Flags().Bool("urgency", false, "todos of considerable urgency")
	nextCmd.Flags().Bool("strategy", false, "todos of considerable strategy")
	nextCmd.Flags().Bool("interest", false, "todos of considerable interest")
	nextCmd.Flags().String("area", "", "only todos of projects tagged with this area")
	nextCmd.Flags().String("project", "", "only todos of the named project")
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	ctx := context.Background()

	lib, _, err := openLibrary(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.StateDB), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
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
	state.RootPath = cfg.RootPath
	hist := history.New(state, lib)

	// A candidate from the previous run is resolved before suggesting:
	// accepting it moves its project to the front of the recency log.
	if hist.HasCandidate() {
		result, err := tui.RunConfirm(fmt.Sprintf("Did you work on %q?", hist.CandidateName()))
		if err != nil {
			return err
		}
		switch result {
		case tui.ConfirmYes:
			hist.Accept()
		case tui.ConfirmNo:
			hist.Reject()
		case tui.ConfirmCancelled:
			return store.Save(ctx, state)
		}
		if err := store.Save(ctx, state); err != nil {
			return err
		}
	}

	f := filterFromFlags(cmd)
	engine := suggest.New(lib, hist, rand.New(rand.NewSource(time.Now().UnixNano())))
	session := engine.Suggest(f)

	if session.Empty() {
		fmt.Println("no todos found")
		return nil
	}

	outcome, todo, err := tui.RunSuggest(session)
	if err != nil {
		return err
	}
	switch outcome {
	case tui.OutcomeAccepted:
		if err := store.Save(ctx, state); err != nil {
			return err
		}
		fmt.Printf("next up: %s (%s)\n", todo.Description, todo.Project.Name)
	case tui.OutcomeExhausted:
		fmt.Println("no todos for you")
	case tui.OutcomeCancelled:
		// Closed without answering; nothing changed.
	}
	return nil
}

func filterFromFlags(cmd *cobra.Command) filter.Filter {
	urgent, _ := cmd.Flags().GetBool("urgent")
	urgency, _ := cmd.Flags().GetBool("urgency")
	strategy, _ := cmd.Flags().GetBool("strategy")
	interest, _ := cmd.Flags().GetBool("interest")
	area, _ := cmd.Flags().GetString("area")
	project, _ := cmd.Flags().GetString("project")

	return filter.Filter{
		UltraUrgent:          urgent,
		ConsiderableUrgency:  urgency,
		ConsiderableStrategy: strategy,
		ConsiderableInterest: interest,
		AreaName:             area,
		ProjectName:          project,
	}
}
