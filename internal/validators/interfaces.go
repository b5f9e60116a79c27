// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads of the contract host before
// they reach the service layer.
//
// A [Validator] receives a value and, optionally, the names of the fields to
// check. Handlers call it right after decoding a body so that malformed
// input is answered with 400 before any ledger operation starts.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
