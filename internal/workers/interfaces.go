// Package workers runs the periodic background jobs of the contract host and
// the decryption oracle.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
