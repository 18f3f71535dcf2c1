package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/magnetar/internal/config"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects and their available todos",
	RunE:  runProjects,
}

func init() {
	projectsCmd.Flags().Bool("areas", false, "list area tags instead of projects")
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	lib, _, err := openLibrary(cfg)
	if err != nil {
		return err
	}

	if areas, _ := cmd.Flags().GetBool("areas"); areas {
		for _, a := range lib.AreaNames() {
			fmt.Println(a)
		}
		return nil
	}

	for _, p := range lib.Projects {
		id, _ := p.ID.Value()
		line := fmt.Sprintf("%3d  %-24s %-8s %2d available", id, p.Name, p.Type, len(lib.AvailableTodos(p)))
		if len(p.Areas) > 0 {
			line += "  [" + strings.Join(p.Areas, ", ") + "]"
		}
		fmt.Println(line)
	}
	return nil
}
