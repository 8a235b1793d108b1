package domain

import "errors"

// CityNotFoundMessage is the single user-visible failure text. Empty
// geocoding results, network failures and malformed responses all
// collapse into it; the underlying cause stays in the server logs.
const CityNotFoundMessage = "Could not find weather for this city. Please try again."

var (
	// ErrEmptyCity rejects blank or whitespace-only city names before
	// any network call is made
	ErrEmptyCity = errors.New("city name is empty")

	// ErrCityNotFound is the collapsed failure for every way a lookup
	// can go wrong
	ErrCityNotFound = errors.New("city not found")
)
