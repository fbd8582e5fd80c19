package cmd

import (
	"fmt"

	"github.com/brogergvhs/starsite/internal/config"

	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:               "rename <old_label> <new_label>",
		Short:             "Rename a config profile; the active label follows the rename",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeLabel,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.RenameConfig(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Renamed config %q -> %q\n", args[0], args[1])
			return nil
		},
	})
}

// completeLabel completes the first argument with existing profile labels.
func completeLabel(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	list, err := config.ListConfigs()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	labels := make([]string, 0, len(list))
	for _, c := range list {
		labels = append(labels, c.Label)
	}
	return labels, cobra.ShellCompDirectiveNoFileComp
}
