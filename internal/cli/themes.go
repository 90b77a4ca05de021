package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func (c *CLI) themesCommand() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Long:  `List the built-in themes and any loaded with --themes, with their colors and activity motif.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := c.newRenderer()
			if err != nil {
				return err
			}
			rows := themeRows(renderer.Themes, renderer.Scenes)

			if !pick {
				fmt.Fprintln(out, themeTable(rows, -1).Render())
				printDetail("%d themes", len(rows))
				return nil
			}

			final, err := tea.NewProgram(NewThemeListModel(rows), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("theme picker: %w", err)
			}
			m, ok := final.(ThemeListModel)
			if !ok || m.Selected == "" {
				printInfo("No theme selected")
				return nil
			}
			printSuccess("Selected %s", m.Selected)
			printNextStep("Render with it", fmt.Sprintf("gitcanvas render stats --user <you> --theme %s", m.Selected))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pick, "pick", "p", false, "choose a theme interactively")
	return cmd
}

// completeThemes offers theme names for --theme.
func (c *CLI) completeThemes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	themes, err := c.Config.Themes()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return themes.Names(), cobra.ShellCompDirectiveNoFileComp
}
