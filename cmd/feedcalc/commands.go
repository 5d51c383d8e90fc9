package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/guttosm/feeding-service/internal/domain/dto"
	"github.com/guttosm/feeding-service/internal/domain/model"
	"github.com/guttosm/feeding-service/internal/nutrition"
	"github.com/guttosm/feeding-service/internal/service"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// options holds every flag value. Each subcommand registers only the flags it reads.
type options struct {
	output        string
	weight        float64
	objective     string
	condition     string
	activity      string
	ageMonths     int
	adultWeight   float64
	birthDate     string
	now           string
	puppyAgeLimit int
}

// gramsResult pairs the adult grams target with the objective it was computed for.
type gramsResult struct {
	WeightKg    float64 `json:"weight_kg" yaml:"weight_kg"`
	Objective   string  `json:"objective" yaml:"objective"`
	GramsPerDay int     `json:"grams_per_day" yaml:"grams_per_day"`
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "feedcalc",
		Short:        "Daily calorie and food portion targets for dogs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch strings.ToLower(opts.output) {
			case outputJSON, outputYAML:
				return nil
			}
			return fmt.Errorf("unsupported output format %q, use json or yaml", opts.output)
		},
	}
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputJSON, "Output format: json or yaml")

	root.AddCommand(
		newRERCmd(opts),
		newMERCmd(opts),
		newGramsCmd(opts),
		newAgeCmd(opts),
		newPuppyCmd(opts),
		newMealsCmd(opts),
		newPlanCmd(opts),
	)
	return root
}

func newRERCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rer",
		Short: "Resting energy requirement (70 x weight^0.75)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			weight, err := weightFlag(cmd, opts)
			if err != nil {
				return err
			}
			rer, err := nutrition.RER(weight)
			if err != nil {
				return inputError(err)
			}
			return render(cmd.OutOrStdout(), opts.output, model.RERResult{
				WeightKg: weight,
				RER:      math.Round(rer*100) / 100,
			})
		},
	}
	addWeightFlag(cmd, opts)
	return cmd
}

func newMERCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mer",
		Short: "Daily kcal and grams for an adult dog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := dto.AdultFeedingRequest{
				WeightKg:      optionalFloat(cmd, "weight", opts.weight),
				Objective:     opts.objective,
				BodyCondition: opts.condition,
				ActivityLevel: opts.activity,
				AgeMonths:     optionalInt(cmd, "age-months", opts.ageMonths),
			}
			in, err := req.ToInput()
			if err != nil {
				return inputError(err)
			}
			plan, err := nutrition.AdultPlan(in)
			if err != nil {
				return inputError(err)
			}
			return render(cmd.OutOrStdout(), opts.output, model.NewFeedingResult(plan))
		},
	}
	addWeightFlag(cmd, opts)
	addAttributeFlags(cmd, opts)
	cmd.Flags().IntVar(&opts.ageMonths, "age-months", 0, "Age in whole months, only used for the meal frequency")
	return cmd
}

func newGramsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grams",
		Short: "Daily food portion in grams for an adult dog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			weight, err := weightFlag(cmd, opts)
			if err != nil {
				return err
			}
			objective, err := nutrition.ParseObjective(opts.objective)
			if err != nil {
				return inputError(err)
			}
			grams, err := nutrition.GramsPerDay(weight, objective)
			if err != nil {
				return inputError(err)
			}
			return render(cmd.OutOrStdout(), opts.output, gramsResult{
				WeightKg:    weight,
				Objective:   string(objective),
				GramsPerDay: grams,
			})
		},
	}
	addWeightFlag(cmd, opts)
	cmd.Flags().StringVar(&opts.objective, "objective", string(nutrition.ObjectiveMaintain), "maintain, lose_weight, gain_weight or healthy_eating")
	return cmd
}

func newAgeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "age",
		Short: "Age in whole months from a birth date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			birth, err := dto.ParseBirthDate(opts.birthDate)
			if err != nil {
				return inputError(err)
			}
			now, err := parseNow(opts.now)
			if err != nil {
				return err
			}
			months, known := nutrition.AgeInMonths(birth, now)
			result := model.AgeResult{Known: known}
			if known {
				result.AgeMonths = &months
			}
			return render(cmd.OutOrStdout(), opts.output, result)
		},
	}
	addDateFlags(cmd, opts)
	return cmd
}

func newPuppyCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puppy",
		Short: "Growth-adjusted daily kcal and grams for a puppy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := dto.PuppyFeedingRequest{
				WeightKg:               optionalFloat(cmd, "weight", opts.weight),
				AgeMonths:              optionalInt(cmd, "age-months", opts.ageMonths),
				EstimatedAdultWeightKg: optionalFloat(cmd, "adult-weight", opts.adultWeight),
			}
			in, err := req.ToInput()
			if err != nil {
				return inputError(err)
			}
			plan, err := nutrition.PuppyPlan(in)
			if err != nil {
				return inputError(err)
			}
			return render(cmd.OutOrStdout(), opts.output, model.NewFeedingResult(plan))
		},
	}
	addWeightFlag(cmd, opts)
	cmd.Flags().IntVar(&opts.ageMonths, "age-months", 0, "Age in whole months (required)")
	cmd.Flags().Float64Var(&opts.adultWeight, "adult-weight", 0, "Estimated adult weight in kg, defaults to twice the current weight")
	return cmd
}

func newMealsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meals",
		Short: "Suggested number of meals per day for an age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			age := optionalInt(cmd, "age-months", opts.ageMonths)
			if age == nil {
				return dto.ErrInvalidAgeMonths
			}
			meals, err := nutrition.SuggestedMealsPerDay(*age)
			if err != nil {
				return inputError(err)
			}
			return render(cmd.OutOrStdout(), opts.output, model.MealsResult{AgeMonths: *age, MealsPerDay: meals})
		},
	}
	cmd.Flags().IntVar(&opts.ageMonths, "age-months", 0, "Age in whole months (required)")
	return cmd
}

func newPlanCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Feeding plan for a dog profile, picking the puppy or adult formula",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := dto.FeedingPlanRequest{
				WeightKg:               optionalFloat(cmd, "weight", opts.weight),
				Objective:              opts.objective,
				BodyCondition:          opts.condition,
				ActivityLevel:          opts.activity,
				BirthDate:              opts.birthDate,
				EstimatedAdultWeightKg: optionalFloat(cmd, "adult-weight", opts.adultWeight),
			}
			profile, err := req.ToProfile()
			if err != nil {
				return inputError(err)
			}
			now, err := parseNow(opts.now)
			if err != nil {
				return err
			}

			calc := service.NewFeedingCalculatorService(service.WithPuppyAgeLimit(opts.puppyAgeLimit))
			defer calc.Stop()

			plan, err := calc.Plan(profile, now)
			if err != nil {
				return inputError(err)
			}
			return render(cmd.OutOrStdout(), opts.output, model.NewFeedingResult(plan))
		},
	}
	addWeightFlag(cmd, opts)
	addAttributeFlags(cmd, opts)
	addDateFlags(cmd, opts)
	cmd.Flags().Float64Var(&opts.adultWeight, "adult-weight", 0, "Estimated adult weight in kg, defaults to twice the current weight")
	cmd.Flags().IntVar(&opts.puppyAgeLimit, "puppy-age-limit", nutrition.DefaultPuppyAgeLimitMonths, "Age in months from which dogs are planned as adults")
	return cmd
}

func addWeightFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().Float64Var(&opts.weight, "weight", 0, "Body weight in kg (required)")
}

func addAttributeFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.objective, "objective", string(nutrition.ObjectiveMaintain), "maintain, lose_weight, gain_weight or healthy_eating")
	cmd.Flags().StringVar(&opts.condition, "condition", string(nutrition.BodyConditionIdeal), "thin, ideal or overweight")
	cmd.Flags().StringVar(&opts.activity, "activity", string(nutrition.ActivityModerate), "low, moderate or high")
}

func addDateFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.birthDate, "birth-date", "", "Birth date, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.now, "now", "", "Reference date, YYYY-MM-DD (default today)")
}

func weightFlag(cmd *cobra.Command, opts *options) (float64, error) {
	w := optionalFloat(cmd, "weight", opts.weight)
	if w == nil {
		return 0, dto.ErrWeightRequired
	}
	return *w, nil
}

func optionalFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func optionalInt(cmd *cobra.Command, name string, v int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func parseNow(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.ParseInLocation(dto.BirthDateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, errors.New("now: must be formatted as YYYY-MM-DD")
	}
	return t, nil
}

// inputError reports nutrition errors with the same field messages as the HTTP API.
func inputError(err error) error {
	if verr := dto.ValidationErrorFor(err); verr != nil {
		return verr
	}
	return err
}

func render(w io.Writer, format string, v any) error {
	if strings.ToLower(format) == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
