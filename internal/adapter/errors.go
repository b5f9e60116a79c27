package adapter

import "errors"

// Transport errors, one per status code the contract host answers with.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnknownRequestKind is returned by Callback for kinds without an
	// endpoint.
	ErrUnknownRequestKind = errors.New("unknown request kind")
)
