package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by FindOne and Increment when no document matches.
var ErrNotFound = errors.New("document not found")

// Document is the opaque shape the store works with. The adapter is
// collection-agnostic; typed mapping happens in the repository layer.
type Document map[string]any

// TimeLayout is fixed-width UTC so lexicographic order on stored timestamps
// equals chronological order.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// Now returns the current time formatted for storage.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}

// IsValidID reports whether s has the shape of a public document id. Route
// handlers use it to surface a 400 before querying; the store itself treats
// malformed ids as matching nothing.
func IsValidID(s string) bool {
	return primitive.IsValidObjectID(s)
}

// Op is a query operator.
type Op string

const (
	// OpEq matches a field exactly.
	OpEq Op = "eq"
	// OpContainsFold matches a string field containing the value,
	// case-insensitively. The value is treated as a literal, never as a
	// pattern.
	OpContainsFold Op = "contains_fold"
	// OpIDEq matches the public id string against the store's internal
	// identifier. A malformed id matches nothing.
	OpIDEq Op = "id_eq"
)

// Condition is one field predicate of a query.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Query is a conjunction of conditions. An empty query matches everything.
type Query []Condition

func Eq(field string, value any) Condition {
	return Condition{Field: field, Op: OpEq, Value: value}
}

func ContainsFold(field, value string) Condition {
	return Condition{Field: field, Op: OpContainsFold, Value: value}
}

func IDEq(id string) Condition {
	return Condition{Field: "id", Op: OpIDEq, Value: id}
}

// Sort orders results by a single field.
type Sort struct {
	Field string
	Desc  bool
}

// FindOptions controls pagination and ordering. Zero Limit means no limit.
type FindOptions struct {
	Sort  Sort
	Skip  int64
	Limit int64
}

// Store is a generic document store parameterized by collection name.
// Every document it returns carries a non-empty string "id" and
// created_at/updated_at timestamps; the store's internal identifier never
// leaks out.
type Store interface {
	// Create stamps created_at == updated_at, assigns an id and persists.
	Create(ctx context.Context, collection string, doc Document) (Document, error)

	Find(ctx context.Context, collection string, q Query, opts FindOptions) ([]Document, error)

	// FindOne returns ErrNotFound when nothing matches.
	FindOne(ctx context.Context, collection string, q Query) (Document, error)

	// FindOrCreate atomically returns the first match or inserts defaults.
	// Used to keep singleton collections at exactly one document.
	FindOrCreate(ctx context.Context, collection string, q Query, defaults Document) (Document, error)

	// Update patches the first matching document, refreshing updated_at.
	// The patch may not rename or clear the id. Returns the modified count.
	Update(ctx context.Context, collection string, q Query, patch Document) (int64, error)

	// Increment atomically adds delta to a numeric field of the first
	// matching document and returns the post-update document.
	Increment(ctx context.Context, collection string, q Query, field string, delta int64) (Document, error)

	// Delete removes matching documents and returns the removed count.
	Delete(ctx context.Context, collection string, q Query) (int64, error)

	// Ping reports whether the underlying store is reachable.
	Ping(ctx context.Context) error

	// Collections lists the collection names present in the store.
	Collections(ctx context.Context) ([]string, error)
}
