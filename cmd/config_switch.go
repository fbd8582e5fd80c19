package cmd

import (
	"fmt"

	"github.com/brogergvhs/starsite/internal/config"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var configSwitchCmd = &cobra.Command{
	Use:               "switch [label]",
	Short:             "Switch to a different configuration profile",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeLabel,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return switchTo(args[0])
		}

		list, err := config.ListConfigs()
		if err != nil {
			return err
		}
		if len(list) == 0 {
			return fmt.Errorf("no configs available, run `starsite config init` first")
		}

		cursor := 0
		for i, c := range list {
			if c.Active {
				cursor = i
			}
		}

		prompt := promptui.Select{
			Label:     "Select config",
			Items:     list,
			CursorPos: cursor,
			Templates: &promptui.SelectTemplates{
				Active:   `> {{ .Label | cyan }}{{ if .Active }} (active){{ end }}`,
				Inactive: `  {{ .Label }}{{ if .Active }} (active){{ end }}`,
				Selected: `{{ .Label }}`,
				Details:  `{{ if .Err }}invalid: {{ .Err }}{{ else }}{{ .Franchise }} -> {{ .Output }}{{ end }}  {{ .Path | faint }}`,
			},
		}

		idx, _, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("selection cancelled")
		}

		return switchTo(list[idx].Label)
	},
}

func switchTo(label string) error {
	if err := config.SwitchConfig(label); err != nil {
		return err
	}

	fmt.Println("Switched to:", label)
	return nil
}

func init() {
	configCmd.AddCommand(configSwitchCmd)
}
