package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/brogergvhs/pokenames/internal/config"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var flagInitYes bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the Default config profile and make it active",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		defaultPath := config.PathForLabel(config.DefaultLabel)

		if _, err := os.Stat(defaultPath); err == nil {
			fmt.Fprintln(out, "Configuration already exists at:")
			fmt.Fprintln(out, "  ", defaultPath)
			fmt.Fprintln(out, "Use `pokenames config reset` to recreate it.")
			return nil
		}

		fmt.Fprintln(out, "Default configuration:")
		config.DefaultConfig().Print(out)
		fmt.Fprintln(out)

		if !flagInitYes {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Create Default config at %s", defaultPath),
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		path, err := config.InitDefaultConfig()
		if err != nil && !errors.Is(err, os.ErrExist) {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Fprintln(out, "Config created at:", path)
		fmt.Fprintln(out, "This config is now active (label: Default).")

		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&flagInitYes, "yes", "y", false, "create without asking")
	configCmd.AddCommand(configInitCmd)
}
