// Package cmd wires the CLI: configuration, the document library, and the
// interactive suggestion flow.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/magnetar/internal/config"
	"github.com/papapumpkin/magnetar/internal/docstore"
	"github.com/papapumpkin/magnetar/internal/library"
)

var rootCmd = &cobra.Command{
	Use:   "magnetar",
	Short: "Task suggestions from a folder of markdown documents",
	Long: `Magnetar treats a folder of markdown documents as a task library:
each document is a project, headings are boards, checkboxes are todos.
It keeps stable numeric ids across edits and suggests what to work on
next, biased by priority and recent history.`,
	RunE: runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .magnetar.yaml)")
	rootCmd.PersistentFlags().String("root", "", "task folder (default tasks)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("root_path", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".magnetar")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("MAGNETAR")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault auto-launches the suggestion flow when the task folder
// exists. If it is not found, it falls back to showing help.
func runRootDefault(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if _, err := os.Stat(cfg.RootPath); os.IsNotExist(err) {
		return cmd.Help()
	}
	return runNext(nextCmd, nil)
}

// openLibrary loads, reconciles, and flushes the library so every element
// has a persisted id before anything else runs.
func openLibrary(cfg config.Config) (*library.Library, *docstore.Store, error) {
	store := docstore.New(cfg.RootPath)
	lib, err := library.Load(store)
	if err != nil {
		return nil, nil, err
	}
	if err := lib.Reconcile(); err != nil {
		return nil, nil, err
	}
	if err := lib.Flush(store); err != nil {
		return nil, nil, err
	}
	return lib, store, nil
}
