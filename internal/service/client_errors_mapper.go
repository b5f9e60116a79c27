// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-farm-twin/internal/adapter"
	"github.com/MKhiriev/go-farm-twin/internal/app"
	"github.com/MKhiriev/go-farm-twin/internal/store"
)

var adapterMessages = map[error]map[string]error{
	adapter.ErrBadRequest: {
		app.MsgInvalidDataProvided: ErrInvalidDataProvided,
		app.MsgEmptyReadingList:    ErrEmptyReadingList,
		app.MsgTooManyReadings:     ErrTooManyReadings,
		app.MsgInvalidCiphertext:   ErrInvalidCiphertext,
	},
	adapter.ErrUnauthorized: {
		app.MsgInvalidLoginPassword:    ErrWrongPassword,
		app.MsgTokenIsExpiredOrInvalid: ErrTokenIsExpiredOrInvalid,
		app.MsgInvalidProof:            ErrInvalidProof,
	},
	adapter.ErrNotFound: {
		app.MsgUnknownAggregate:   ErrUnknownAggregate,
		app.MsgUnknownRequest:     ErrUnknownRequest,
		app.MsgReadingNotFound:    store.ErrReadingNotFound,
		app.MsgCiphertextNotFound: store.ErrCiphertextNotFound,
	},
	adapter.ErrConflict: {
		app.MsgLoginAlreadyExists: store.ErrLoginAlreadyExists,
		app.MsgConcurrentUpdate:   ErrConcurrentUpdate,
		app.MsgKeyHashCollision:   store.ErrKeyHashCollision,
	},
	adapter.ErrUnprocessable: {
		app.MsgTooManyAdditions: ErrTooManyAdditions,
	},
}

// mapAdapterError translates a transport error of the contract host back
// into the service error that produced it. Errors it does not recognize are
// returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrForbidden) {
		return ErrAccessDenied
	}

	msg := extractBody(err)
	for transportErr, byMessage := range adapterMessages {
		if !errors.Is(err, transportErr) {
			continue
		}
		if mapped, ok := byMessage[msg]; ok {
			return mapped
		}
	}

	return err
}

// extractBody returns <body> of an error of the form "bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
