package cli

import "errors"

// Error variables for CLI operations.
var (
	ErrFlagRequiresArg  = errors.New("flag requires an argument")
	ErrUnknownFlag      = errors.New("unknown flag")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArgs      = errors.New("missing arguments")
	ErrTooManyArgs      = errors.New("too many arguments")
	ErrInvalidVersion   = errors.New("invalid version (want 0..65535, decimal or 0x hex)")
	ErrInvalidSteps     = errors.New("steps must be between 1 and 65536")
	ErrPropertyViolated = errors.New("version ordering properties violated")
)
