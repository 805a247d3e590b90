// Package docstore keeps the reservation list and the restaurant configuration as two
// whole JSON documents, rewritten in full on every mutation, over a pluggable backend.
package docstore

import (
	"context"
	"errors"
)

const (
	DocReservations = "reservations"
	DocConfig       = "config"
)

var ErrDocumentMissing = errors.New("document missing")

// Backend reads and writes opaque documents by name. Read returns ErrDocumentMissing
// for a name that was never written.
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
	Name() string
}

// TxBackend is implemented by backends that can exclude writers from other processes.
// fn must only use the Backend it is given.
type TxBackend interface {
	Backend
	InTx(ctx context.Context, fn func(ctx context.Context, tx Backend) error) error
}
