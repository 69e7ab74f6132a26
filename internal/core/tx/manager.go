// Package tx provides the Unit-of-Work contract.
// It decouples domain services from the storage implementation: services
// bound transactions through this interface, repositories never do.
package tx

import (
	"context"
	"errors"
)

// ErrNestedScope is returned when a Unit-of-Work scope is opened inside an
// already-open scope. Nesting is not supported: a logical service call owns
// exactly one transaction, so a nested open is a programming error.
var ErrNestedScope = errors.New("tx: unit-of-work scope already open")

// Manager defines the contract for Unit-of-Work scopes.
//
// A scope maps to exactly one backing transaction. If fn returns an error
// the transaction is rolled back before the error propagates; if fn returns
// nil the transaction is committed. The session is released unconditionally
// on scope exit.
type Manager interface {
	// Do executes fn within a read-write transaction scope.
	Do(ctx context.Context, fn func(ctx context.Context) error) error

	// ReadOnly executes fn in a read-only transaction scope.
	// Attempts to modify data will fail.
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
