package service

import "context"

// OracleService is the decryption oracle's work loop body.
type OracleService interface {
	// ProcessBatch handles up to one batch of pending requests and returns
	// how many callbacks were accepted. Failures of single requests are
	// logged and retried on later batches until the attempt limit.
	ProcessBatch(ctx context.Context) (int, error)
}

// Decryptor decrypts a single ciphertext. *fhe.Decryptor implements it.
type Decryptor interface {
	Decrypt(raw []byte) (uint64, error)
}

// ProofSigner attests a decryption result. *attestation.Signer implements it.
type ProofSigner interface {
	Sign(requestID int64, cleartexts []byte) ([]byte, error)
}
