package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingrea/nextstep/internal/decision"
	"github.com/kingrea/nextstep/internal/intake"
	"github.com/kingrea/nextstep/internal/tui"
)

func newPlanCmd(a *app) *cobra.Command {
	var intakePath string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a roadmap from an answer file",
		Long: "Reads the six intake answers from a YAML file, validates them and replaces the stored roadmap " +
			"with a fresh plan. Keys: zip, household_size, take_home_band, high_apr_debt, employer_match, ef_months.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := intake.LoadFile(intakePath)
			if err != nil {
				printValidation(cmd.ErrOrStderr(), err)
				return err
			}
			if err := a.store.RecomputePlan(in); err != nil {
				return err
			}
			active, _ := a.store.ActiveStep()
			a.journal.Info("Plan built from %s · starting with %s", intakePath, active.Title)
			printRoadmap(cmd.OutOrStdout(), a.store.Steps())
			return nil
		},
	}
	cmd.Flags().StringVarP(&intakePath, "intake", "i", "", "YAML file with intake answers (required)")
	if err := cmd.MarkFlagRequired("intake"); err != nil {
		panic(fmt.Sprintf("failed to mark intake flag as required: %v", err))
	}
	return cmd
}

func newStatusCmd(a *app) *cobra.Command {
	var detail bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the stored roadmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !a.store.HasPlan() {
				fmt.Fprintln(out, errNoPlan.Error())
				return nil
			}
			printRoadmap(out, a.store.Steps())
			if !detail {
				return nil
			}
			active, ok := a.store.ActiveStep()
			if !ok {
				return nil
			}
			render := tui.GlamourRenderer(a.cfg.Theme())
			rendered, err := render(decision.DetailMarkdown(active.StepDefinition), 80)
			if err != nil {
				return fmt.Errorf("render %s: %w", active.ID, err)
			}
			fmt.Fprint(out, rendered)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&detail, "detail", "d", false, "also print the long-form guide for the active step")
	return cmd
}

func newCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Mark the active step complete and move to the next one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			active, err := a.requireActive(cmd.OutOrStdout())
			if err != nil || active == nil {
				return err
			}
			if _, err := a.store.CompleteActive(); err != nil {
				return err
			}
			a.journal.Info("Completed · %s", active.Title)
			fmt.Fprintf(cmd.OutOrStdout(), "Completed: %s\n", active.Title)
			printActive(cmd.OutOrStdout(), a)
			return nil
		},
	}
}

func newSkipCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "skip",
		Short: "Skip the active step for now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			active, err := a.requireActive(cmd.OutOrStdout())
			if err != nil || active == nil {
				return err
			}
			if err := a.store.SkipActive(); err != nil {
				return err
			}
			a.journal.Info("Skipped · %s", active.Title)
			fmt.Fprintf(cmd.OutOrStdout(), "Skipped: %s\n", active.Title)
			printActive(cmd.OutOrStdout(), a)
			return nil
		},
	}
}

func newUnskipCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unskip <step-id>",
		Short: "Make a skipped or completed step active again",
		Long:  "Step ids: " + strings.Join(stepIDNames(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.store.HasPlan() {
				return errNoPlan
			}
			id := decision.StepID(strings.TrimSpace(args[0]))
			if !id.Valid() {
				return fmt.Errorf("unknown step %q (valid: %s)", args[0], strings.Join(stepIDNames(), ", "))
			}
			if err := a.store.Unskip(id); err != nil {
				return err
			}
			active, _ := a.store.ActiveStep()
			a.journal.Info("Unskipped · %s", active.Title)
			printActive(cmd.OutOrStdout(), a)
			return nil
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear your answers and roadmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.store.Reset(); err != nil {
				return err
			}
			if err := a.journal.Truncate(); err != nil {
				a.log.Warnf("truncate journey log: %v", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session cleared.")
			return nil
		},
	}
}

func newValidateIntakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "validate-intake <file>",
		Short:       "Check an answer file without building a plan",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{skipEnv: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := intake.LoadFile(args[0])
			if err != nil {
				printValidation(cmd.ErrOrStderr(), err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: ZIP %s, household of %d, %s take-home\n",
				args[0], in.Zip, in.HouseholdSize, in.TakeHomeBand)
			return nil
		},
	}
}

// requireActive returns the active step, or nil after telling the user why
// there is nothing to act on.
func (a *app) requireActive(out io.Writer) (*decision.StepRecord, error) {
	if !a.store.HasPlan() {
		return nil, errNoPlan
	}
	active, ok := a.store.ActiveStep()
	if !ok {
		fmt.Fprintln(out, "Every step is resolved. Use `nextstep unskip <step-id>` to revisit one.")
		return nil, nil
	}
	return &active, nil
}

func printValidation(w io.Writer, err error) {
	var verr *intake.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for _, field := range verr.Fields {
		fmt.Fprintf(w, "  ✗ %s: %s\n", field.Field, field.Message)
	}
}

func stepIDNames() []string {
	names := make([]string, len(decision.AllStepIDs))
	for i, id := range decision.AllStepIDs {
		names[i] = string(id)
	}
	return names
}
