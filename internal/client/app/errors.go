package app

import (
	"parkospace/internal/client/gateway"
	"parkospace/internal/errors"
)

var (
	ErrLocationUnsupported = errors.New("geolocation is not supported")
	ErrQueryRequired       = errors.New("enter a place to search")
	ErrRadiusOutOfRange    = errors.New("radius out of range")
	ErrNotInView           = errors.New("listing is not in the current results")
	ErrNotLoggedIn         = errors.New("log in first")
	ErrNotInPortfolio      = errors.New("listing is not in your portfolio")
	ErrCancelled           = errors.New("cancelled")
)

// describe turns err into the text shown to the user.
func describe(action string, err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return action + ": " + apiErr.Error()
	}

	return action + ": " + errors.Message(err)
}
