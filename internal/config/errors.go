package config

import "github.com/ayoisaiah/clockout/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown store driver %q (must be bolt or sqlite)",
	}

	errInvalidWeekendDay = &apperr.Error{
		Message: "invalid weekend day %q",
	}

	errInvalidHook = &apperr.Error{
		Message: "the %s hook is not a valid command",
	}

	errInvalidAt = &apperr.Error{
		Message: "invalid login time %q",
	}

	errFutureAt = &apperr.Error{
		Message: "login time %s is in the future",
	}
)
