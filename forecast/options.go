package forecast

import (
	"fmt"

	"github.com/fabioo29/covid-cases-prediction/errs"
	"github.com/fabioo29/covid-cases-prediction/internal/options"
)

// DefaultStepDays is the nominal month length used to space future dates
// beyond the last observed date. The step is a fixed day count on purpose;
// no calendar-month semantics are intended.
const DefaultStepDays = 30

type config struct {
	stepDays int
}

func defaultConfig() config {
	return config{stepDays: DefaultStepDays}
}

// Option is a functional option for Forecast.
type Option = options.Option[*config]

// WithStepDays overrides the spacing, in days, between generated future
// dates. The step must be positive.
func WithStepDays(days int) Option {
	return options.New(func(cfg *config) error {
		if days <= 0 {
			return fmt.Errorf("%w: step days must be positive, got %d", errs.ErrInvalidParameter, days)
		}
		cfg.stepDays = days

		return nil
	})
}
