package service

import (
	"errors"

	"suntimes-api/internal/models"
	"suntimes-api/internal/sunapi"
)

const (
	unexpectedMessage  = "An unexpected error occurred."
	unavailableMessage = "The sun does not rise or set at this location on the requested days."
)

// InvalidInputError reports user input that cannot be turned into a location.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// UnexpectedError wraps any failure outside the known taxonomy.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return unexpectedMessage
	}
	return e.Err.Error()
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// UnavailableError reports a location and date for which no sun times exist.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return unavailableMessage
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Classify converts any lookup error into its user-facing failure.
func Classify(err error) models.Failure {
	var (
		invalid    *InvalidInputError
		network    *sunapi.NetworkError
		apiErr     *sunapi.APIError
		unexpected *UnexpectedError
		missing    *UnavailableError
	)

	switch {
	case errors.As(err, &invalid):
		return models.Failure{Kind: models.ErrorKindInvalidInput, Message: invalid.Error()}
	case errors.As(err, &network):
		return models.Failure{Kind: models.ErrorKindNetwork, Message: network.Error()}
	case errors.As(err, &apiErr):
		return models.Failure{Kind: models.ErrorKindAPI, Message: apiErr.Error()}
	case errors.As(err, &missing):
		return models.Failure{Kind: models.ErrorKindUnavailable, Message: missing.Error()}
	case errors.As(err, &unexpected):
		return models.Failure{Kind: models.ErrorKindUnexpected, Message: unexpected.Error()}
	default:
		return models.Failure{Kind: models.ErrorKindUnexpected, Message: (&UnexpectedError{Err: err}).Error()}
	}
}
