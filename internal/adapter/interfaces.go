// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the contract host over HTTP on behalf of the CLI
// client ([ServerAdapter]) and the decryption oracle ([OracleAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go, wrapped together with the response body, so callers can use
// [errors.Is] regardless of the exact message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-farm-twin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the client's view of the contract host. Every method
// except Register, Login and GetVersion needs a session token set with
// SetToken.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	// Register creates the account and returns its session token.
	Register(ctx context.Context, user models.User) (models.Token, error)
	// Login returns a fresh session token.
	Login(ctx context.Context, user models.User) (models.Token, error)
	GetVersion(ctx context.Context) (string, error)

	SubmitReading(ctx context.Context, cts models.ReadingCiphertexts) (models.Reading, error)
	GetReading(ctx context.Context, readingID int64) (models.Reading, error)

	RequestTwinUpdate(ctx context.Context, twinID int64, readingIDs []int64) (models.RequestReceipt, error)
	GetTwin(ctx context.Context, twinID int64) (models.Twin, error)
	RequestRecommendation(ctx context.Context, twinID int64, readingIDs []int64) (models.RequestReceipt, error)
	GetRecommendation(ctx context.Context, twinID int64) (models.Recommendation, error)

	AddToAggregate(ctx context.Context, key string, delta []byte) (models.Aggregate, error)
	RequestAggregateReveal(ctx context.Context, key string) (models.RequestReceipt, error)
	AggregateKeys(ctx context.Context) ([]string, error)
	FindKeyByHash(ctx context.Context, keyHash int64) (string, error)

	Events(ctx context.Context, afterSeq int64, limit int) ([]models.Event, error)

	GetData(ctx context.Context, key string) ([]byte, error)
	SetData(ctx context.Context, key string, value []byte) error
	AppendRecord(ctx context.Context, rec models.RecordAppend) error
}

// OracleAdapter is the decryption oracle's view of the contract host.
type OracleAdapter interface {
	// PendingRequests returns up to limit live requests with an ID greater
	// than afterID.
	PendingRequests(ctx context.Context, afterID int64, limit int) ([]models.PendingRequest, error)
	Ciphertext(ctx context.Context, handle models.Handle) ([]byte, error)
	// Callback delivers cb to the callback endpoint of kind.
	Callback(ctx context.Context, kind models.RequestKind, cb models.DecryptionCallback) error
}
