package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/goalplan/engine/internal/models"
	"github.com/goalplan/engine/internal/repository"
	"github.com/goalplan/engine/pkg/database"
)

var showRaw bool

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Browse saved plans",
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved plans, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(false)
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := openStore(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer database.Close(db)

		list, err := repository.NewPlanRepository(db).ListSummaries(cmd.Context())
		if err != nil {
			return err
		}
		renderSummaries(cmd.OutOrStdout(), list)
		return nil
	},
}

var plansShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid plan id %q", args[0])
		}

		cfg, log, err := loadConfig(false)
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := openStore(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer database.Close(db)

		doc, err := repository.NewPlanRepository(db).GetData(cmd.Context(), uint(id))
		if err != nil {
			return err
		}
		if showRaw {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), string(doc))
			return err
		}
		renderPlan(cmd.OutOrStdout(), doc)
		return nil
	},
}

func init() {
	plansShowCmd.Flags().BoolVar(&showRaw, "json", false, "print the stored JSON document")
	plansCmd.AddCommand(plansListCmd)
	plansCmd.AddCommand(plansShowCmd)
	rootCmd.AddCommand(plansCmd)
}

func renderSummaries(w io.Writer, list []models.PlanSummary) {
	gray := color.New(color.FgHiBlack).SprintFunc()
	if len(list) == 0 {
		fmt.Fprintln(w, gray("No plans saved yet."))
		return
	}
	for _, p := range list {
		fmt.Fprintf(w, "%4d  %s  %s\n", p.ID, p.ProjectName, gray(p.CreatedAt.Local().Format("2006-01-02 15:04")))
	}
}

// renderPlan prints a plan document. Task fields are read leniently since
// generated documents are not type-checked.
func renderPlan(w io.Writer, doc []byte) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	plan := gjson.ParseBytes(doc)
	name := plan.Get("project_name").String()
	if name == "" {
		name = models.UntitledPlan
	}
	fmt.Fprintf(w, "%s\n", cyan(name))

	tasks := plan.Get("tasks").Array()
	if len(tasks) == 0 {
		fmt.Fprintln(w, gray("  no tasks"))
		return
	}
	for _, t := range tasks {
		fmt.Fprintf(w, "\n%s %s\n", yellow(t.Get("task_id").String()+"."), t.Get("task_name").String())
		if d := t.Get("description").String(); d != "" {
			fmt.Fprintf(w, "   %s\n", d)
		}
		deps := "None"
		if ids := t.Get("dependencies").Array(); len(ids) > 0 {
			parts := make([]string, 0, len(ids))
			for _, id := range ids {
				parts = append(parts, id.String())
			}
			deps = strings.Join(parts, ", ")
		}
		fmt.Fprintf(w, "   %s\n", gray(fmt.Sprintf("Timeline: %s days | Dependencies: %s", t.Get("timeline_days").String(), deps)))
	}
}
