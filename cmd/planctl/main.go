package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/planner"
	"personal-task-planner/internal/planner/usecase"
	"personal-task-planner/pkg/datemath"
	"personal-task-planner/pkg/gemini"
	pkgLog "personal-task-planner/pkg/log"
)

var (
	flagTimezone string
	flagDate     string
	flagFile     string
)

func main() {
	root := &cobra.Command{
		Use:   "planctl",
		Short: "Offline task parsing and daily planning",
		Long:  "planctl runs the task inference and priority scheduling engine against local input, without the HTTP server.",
	}
	root.PersistentFlags().StringVar(&flagTimezone, "timezone", "Local", "IANA timezone for date resolution")

	parseCmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse freeform task text into structured tasks",
		Long:  "Parses the given text (or stdin when no argument is given) into task candidates with inferred fields. Set LLM_API_KEY to delegate parsing to the external service.",
		RunE:  runParse,
	}

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a daily plan from a task list JSON file",
		RunE:  runPlan,
	}
	planCmd.Flags().StringVarP(&flagFile, "file", "f", "", "path to a JSON file holding the task list (required)")
	planCmd.Flags().StringVar(&flagDate, "date", "", "plan date as YYYY-MM-DD (default: today)")
	_ = planCmd.MarkFlagRequired("file")

	root.AddCommand(parseCmd, planCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildUseCase() (planner.UseCase, error) {
	dateMath, err := datemath.NewParser(flagTimezone)
	if err != nil {
		return nil, err
	}

	var textModel gemini.TextModel
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		textModel = gemini.NewClient(apiKey)
	}

	return usecase.New(pkgLog.NewNop(), textModel, nil, dateMath, ""), nil
}

func runParse(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(raw)
	}

	uc, err := buildUseCase()
	if err != nil {
		return err
	}

	result, err := uc.ParseFreeform(context.Background(), model.Scope{UserID: "planctl"}, planner.ParseInput{RawText: text})
	if err != nil {
		return err
	}

	return printJSON(result)
}

func runPlan(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(flagFile)
	if err != nil {
		return fmt.Errorf("reading task file: %w", err)
	}

	var tasks []model.InferredTask
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return fmt.Errorf("parsing task file: %w", err)
	}

	var planDate *time.Time
	if flagDate != "" {
		d, dateErr := time.Parse("2006-01-02", flagDate)
		if dateErr != nil {
			return fmt.Errorf("invalid --date: %w", dateErr)
		}
		planDate = &d
	}

	uc, err := buildUseCase()
	if err != nil {
		return err
	}

	plan, err := uc.GenerateDailyPlan(context.Background(), model.Scope{UserID: "planctl"}, planner.PlanInput{
		Tasks:    tasks,
		Settings: model.DefaultPlanningSettings(),
		PlanDate: planDate,
	})
	if err != nil {
		return err
	}

	return printJSON(plan)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
