package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goalplan/engine/internal/llm"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available for plan generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(true)
		if err != nil {
			return err
		}
		defer log.Sync()

		client, err := llm.NewAnthropicClient(llm.AnthropicConfig{
			APIKey:    cfg.AnthropicAPIKey,
			Model:     cfg.AnthropicModel,
			MaxTokens: cfg.AnthropicMaxTokens,
		}, log)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Fetching models...")
		list, err := client.ListModels(cmd.Context())
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()
		for _, m := range list {
			marker := " "
			if m.ID == cfg.AnthropicModel {
				marker = green("*")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", marker, m.ID, gray(m.DisplayName))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nFinished.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
