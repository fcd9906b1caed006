package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goalplan/engine/internal/llm"
	"github.com/goalplan/engine/internal/planner"
	"github.com/goalplan/engine/internal/repository"
	"github.com/goalplan/engine/internal/services"
	"github.com/goalplan/engine/pkg/database"
	appErr "github.com/goalplan/engine/pkg/errors"
)

var generateCmd = &cobra.Command{
	Use:   "generate <goal>",
	Short: "Generate a plan for a goal and save it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal := strings.Join(args, " ")

		cfg, log, err := loadConfig(true)
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := openStore(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer database.Close(db)

		client, err := llm.NewAnthropicClient(llm.AnthropicConfig{
			APIKey:    cfg.AnthropicAPIKey,
			Model:     cfg.AnthropicModel,
			MaxTokens: cfg.AnthropicMaxTokens,
		}, log)
		if err != nil {
			return err
		}

		svc := services.NewPlanService(planner.NewGenerator(client, log), repository.NewPlanRepository(db), log)
		out, err := svc.CreatePlan(cmd.Context(), goal)
		if err != nil {
			return fmt.Errorf("%s", appErr.Message(err, planner.GenerationFailedMessage))
		}

		renderPlan(cmd.OutOrStdout(), out.Plan.Document)
		green := color.New(color.FgGreen).SprintFunc()
		if out.ID != 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", green(fmt.Sprintf("Saved as plan %d", out.ID)))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", color.YellowString("Plan was not saved; see logs"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
