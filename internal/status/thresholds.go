package status

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/go-playground/validator/v10"
)

// TaskThresholds are upper bounds on the percentage of a task's recurrence
// interval that has elapsed. A task is in the first band whose bound is not
// exceeded; anything above Due is overdue. Values must be non-decreasing.
type TaskThresholds struct {
	Complete float64 `mapstructure:"complete" yaml:"complete" validate:"gte=0,ltefield=Soon"`
	Soon     float64 `mapstructure:"soon" yaml:"soon" validate:"ltefield=Due"`
	Due      float64 `mapstructure:"due" yaml:"due"`
}

// AggregateThresholds are lower bounds on an area or room health score
// (0-100, higher is healthier). Values must be non-increasing.
type AggregateThresholds struct {
	Complete float64 `mapstructure:"complete" yaml:"complete" validate:"lte=100,gtefield=Soon"`
	Soon     float64 `mapstructure:"soon" yaml:"soon" validate:"gtefield=Due"`
	Due      float64 `mapstructure:"due" yaml:"due" validate:"gte=0"`
}

func DefaultTaskThresholds() TaskThresholds {
	return TaskThresholds{Complete: 75, Soon: 90, Due: 95}
}

func DefaultAggregateThresholds() AggregateThresholds {
	return AggregateThresholds{Complete: 90, Soon: 70, Due: 40}
}

var validate = validator.New()

// Validate checks that the bands are ordered.
func (t TaskThresholds) Validate() error {
	return validateThresholds("task thresholds", t)
}

// Validate checks that the bands are ordered.
func (a AggregateThresholds) Validate() error {
	return validateThresholds("aggregate thresholds", a)
}

func (t TaskThresholds) classify(pctElapsed float64) domain.Status {
	switch {
	case pctElapsed <= t.Complete:
		return domain.StatusComplete
	case pctElapsed <= t.Soon:
		return domain.StatusSoon
	case pctElapsed <= t.Due:
		return domain.StatusDue
	default:
		return domain.StatusOverdue
	}
}

func (a AggregateThresholds) classify(score float64) domain.Status {
	switch {
	case score >= a.Complete:
		return domain.StatusComplete
	case score >= a.Soon:
		return domain.StatusSoon
	case score >= a.Due:
		return domain.StatusDue
	default:
		return domain.StatusOverdue
	}
}

func validateThresholds(kind string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating %s: %w", kind, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("invalid %s: %s", kind, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	param := strings.ToLower(fe.Param())
	switch fe.Tag() {
	case "ltefield":
		return fmt.Sprintf("%s (%v) must not exceed %s", field, fe.Value(), param)
	case "gtefield":
		return fmt.Sprintf("%s (%v) must not be below %s", field, fe.Value(), param)
	case "gte":
		return fmt.Sprintf("%s (%v) must be >= %s", field, fe.Value(), param)
	case "lte":
		return fmt.Sprintf("%s (%v) must be <= %s", field, fe.Value(), param)
	default:
		return fmt.Sprintf("%s failed %q", field, fe.Tag())
	}
}
