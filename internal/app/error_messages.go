// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the contract host
// handlers and the client adapters.
//
// The handlers write a Msg* constant as the plain-text body of every error
// response, and the client maps the (status, body) pair back to a sentinel
// error. Keeping them in one place keeps both sides in agreement.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned for unknown logins and wrong
	// passwords alike.
	MsgInvalidLoginPassword = "invalid login/password"

	MsgInternalServerError = "internal server error"

	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when an authenticated route finds no
	// user ID in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the caller does not own the twin,
	// reading or aggregate it acts on.
	MsgAccessDenied = "access denied"

	MsgLoginAlreadyExists = "login already exists"

	// MsgEmptyReadingList is returned for twin update and recommendation
	// requests without reading IDs.
	MsgEmptyReadingList = "reading list is empty"

	MsgTooManyReadings = "too many readings for one request"

	MsgTooManyAdditions = "aggregate accumulator is full"

	MsgInvalidCiphertext = "invalid ciphertext"

	// MsgUnknownAggregate is returned when revealing a key that was never
	// created.
	MsgUnknownAggregate = "unknown aggregate key"

	// MsgUnknownRequest is returned by callbacks for unknown, consumed,
	// expired or mismatched request IDs.
	MsgUnknownRequest = "unknown decryption request"

	MsgInvalidProof = "invalid decryption proof"

	MsgConcurrentUpdate = "aggregate was updated concurrently, retry"

	MsgReadingNotFound = "reading not found"

	MsgCiphertextNotFound = "ciphertext not found"

	MsgKeyHashCollision = "aggregate key hash collides with another key"

	MsgNotFound = "not found"
)
