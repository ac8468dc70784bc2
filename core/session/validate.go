package session

import (
	"github.com/shopspring/decimal"

	"voice-cost/core/types"
	"voice-cost/internal/errors"
)

var maxMargin = decimal.NewFromInt(100)

// ValidateParams applies the form's numeric bounds
func ValidateParams(p types.Params) error {
	if err := validateCallDuration(p.CallDuration); err != nil {
		return err
	}
	if err := validateTotalMinutes(p.TotalMinutes); err != nil {
		return err
	}
	if err := validateMargin(p.Margin); err != nil {
		return err
	}
	return nil
}

func validateCallDuration(v decimal.Decimal) *errors.Error {
	if !v.IsPositive() {
		return errors.Inputf("call duration must be greater than 0, got %s", v).
			WithContext("field", "call_duration")
	}
	return nil
}

func validateTotalMinutes(v decimal.Decimal) *errors.Error {
	if !v.IsPositive() {
		return errors.Inputf("total minutes must be greater than 0, got %s", v).
			WithContext("field", "total_minutes")
	}
	return nil
}

func validateMargin(v decimal.Decimal) *errors.Error {
	if v.IsNegative() || v.GreaterThan(maxMargin) {
		return errors.Inputf("margin must be between 0 and 100, got %s", v).
			WithContext("field", "margin")
	}
	return nil
}
