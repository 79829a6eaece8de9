package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/debtplan/payoff-engine/internal/calculation"
	"github.com/debtplan/payoff-engine/internal/config"
	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/internal/logging"
	"github.com/debtplan/payoff-engine/internal/output"
	"github.com/debtplan/payoff-engine/pkg/money"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "payoff",
		Short: "Debt payoff planning engine",
		Long: "Simulate avalanche and snowball repayment of a household's debts under minimum and\n" +
			"optimized monthly budgets and compare months to payoff, interest and total paid.",
		SilenceUsage: true,
	}
	root.AddCommand(newPlanCmd(), newValidateCmd(), newExampleCmd(), newFormatsCmd())
	return root
}

type planOptions struct {
	input       string
	format      string
	outputDir   string
	budget      string
	maxMonths   int
	policy      string
	concurrency int
	schedule    bool
	collapsed   bool
	verbose     bool
	logFormat   string
}

func newPlanCmd() *cobra.Command {
	opts := &planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate payoff plans for a request file",
		Example: "  payoff plan -i household.yaml\n" +
			"  payoff plan -i household.toml --budget 3500 -f xlsx --output-dir reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "plan request file (.yaml, .yml, .json or .toml)")
	f.StringVarP(&opts.format, "format", "f", "console", "output format (see 'payoff formats')")
	f.StringVarP(&opts.outputDir, "output-dir", "o", "", "write a timestamped report file here instead of stdout")
	f.StringVar(&opts.budget, "budget", "", "monthly payment budget in dollars, overriding the file")
	f.IntVar(&opts.maxMonths, "max-months", 0, "simulation cap in months")
	f.StringVar(&opts.policy, "deferred-policy", "", "deferred interest policy: promo_start_balance or accrued_shadow")
	f.IntVar(&opts.concurrency, "concurrency", 0, "variants simulated at once")
	f.BoolVar(&opts.schedule, "schedule", false, "attach the month-by-month schedule to every plan")
	f.BoolVar(&opts.collapsed, "include-collapsed", false, "emit optimized plans even when the budget does not exceed minimums")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log engine progress at debug level")
	f.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runPlan(cmd *cobra.Command, opts *planOptions) error {
	parser := config.NewInputParser()
	req, err := parser.LoadFromFile(opts.input)
	if err != nil {
		return err
	}
	if err := applyOverrides(req, opts); err != nil {
		return err
	}
	if err := parser.ValidateRequest(req); err != nil {
		return err
	}

	formatter := output.GetFormatterByName(opts.format)
	if opts.format != "all" && formatter == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, opts.format)
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(logging.Config{
		Level:     level,
		Format:    opts.logFormat,
		Component: "engine",
		Output:    cmd.ErrOrStderr(),
	})

	engine := calculation.NewPlanGenerator()
	engine.SetLogger(logger)
	result, err := engine.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	if opts.outputDir == "" && opts.format != "all" {
		return output.WriteReport(cmd.OutOrStdout(), result, opts.format)
	}
	if err := os.MkdirAll(outputDirOrDot(opts.outputDir), 0o755); err != nil {
		return err
	}
	files, err := output.GenerateReport(result, opts.format, opts.outputDir)
	if err != nil {
		return err
	}
	for _, name := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", name)
	}
	return nil
}

func applyOverrides(req *domain.PlanRequest, opts *planOptions) error {
	if opts.budget != "" {
		budget, err := money.ParseDollars(opts.budget)
		if err != nil {
			return fmt.Errorf("--budget: %w", err)
		}
		req.MonthlyPaymentBudget = &budget
	}
	if opts.maxMonths > 0 {
		req.Assumptions.MaxMonths = opts.maxMonths
	}
	if opts.policy != "" {
		req.Assumptions.DeferredInterestPolicy = domain.DeferredInterestPolicy(strings.ToLower(opts.policy))
	}
	if opts.concurrency > 0 {
		req.Assumptions.Concurrency = opts.concurrency
	}
	if opts.schedule {
		req.Assumptions.IncludeSchedule = true
	}
	if opts.collapsed {
		req.Assumptions.IncludeCollapsedOptimized = true
	}
	return nil
}

func outputDirOrDot(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

func newValidateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a plan request file without running simulations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := config.NewInputParser().LoadFromFile(input)
			if err != nil {
				return err
			}
			var consumer []domain.Debt
			for _, d := range req.Debts {
				if domain.ScopeConsumer.Includes(d) {
					consumer = append(consumer, d)
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Request is valid: %d debts (%d consumer)\n", len(req.Debts), len(consumer))
			fmt.Fprintf(out, "Total balance: %s\n", domain.TotalBalance(req.Debts).Format())
			fmt.Fprintf(out, "Minimum payments: %s (consumer %s)\n",
				domain.TotalMinimumPayments(req.Debts).Format(), domain.TotalMinimumPayments(consumer).Format())
			if budget, ok := req.Budget(); ok {
				fmt.Fprintf(out, "Monthly budget: %s\n", budget.Format())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "plan request file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newExampleCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write a sample plan request",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parser := config.NewInputParser()
			if err := parser.SaveRequest(parser.CreateExampleRequest(), out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example request written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "example_request.yaml", "destination file (.yaml, .json or .toml)")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and aliases",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Formats: %s, all\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(out, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}
