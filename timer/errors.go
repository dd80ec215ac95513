package timer

import "github.com/ayoisaiah/clockout/internal/apperr"

var errNotLoggedIn = &apperr.Error{
	Message: "you are not logged in: run 'clockout login' to start the day",
}
