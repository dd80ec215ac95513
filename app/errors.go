package app

import "github.com/ayoisaiah/clockout/internal/apperr"

const time24h = "Mon, Jan 02 15:04"

var errAtNotToday = &apperr.Error{
	Message: "the login time (%s) must be earlier today",
}
