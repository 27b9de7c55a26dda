package diff

import "fmt"

// validateArgs checks the four Diff arguments in declaration order and
// returns the first failure.
//
// Contract:
//   - aLength, bLength in [0, MaxLength]     → else ErrInvalidLength.
//   - isCommon, foundSubsequence non-nil     → else ErrInvalidCallback.
//
// No callback is invoked here.
func validateArgs(aLength, bLength int, isCommon IsCommonFunc, foundSubsequence FoundSubsequenceFunc) error {
	// Stage 1: lengths.
	if err := validateLength("aLength", aLength); err != nil {
		return err
	}
	if err := validateLength("bLength", bLength); err != nil {
		return err
	}

	// Stage 2: callbacks.
	if isCommon == nil {
		return fmt.Errorf("%w: isCommon must be a function", ErrInvalidCallback)
	}
	if foundSubsequence == nil {
		return fmt.Errorf("%w: foundSubsequence must be a function", ErrInvalidCallback)
	}

	return nil
}

// validateLength rejects a length outside [0, MaxLength], naming the parameter.
func validateLength(name string, n int) error {
	if n < 0 || n > MaxLength {
		return fmt.Errorf("%w: %s must be a non-negative safe integer (got %d)", ErrInvalidLength, name, n)
	}

	return nil
}
