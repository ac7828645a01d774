package testutil

import (
	"errors"
)

const DatabaseError = "database error occurred"

// OperationResult wraps a generic return value with its error for table
// driven tests.
type OperationResult[T any] struct {
	Data T
	Err  error
}

// GetMockRepoError returns a generic typed error result for a database call.
func GetMockRepoError[T any]() *OperationResult[T] {
	return NewErrorResult[T](DatabaseError)
}

func NewErrorResult[T any](err string) *OperationResult[T] {
	return &OperationResult[T]{
		Data: *new(T),
		Err:  errors.New(err),
	}
}

// NewSuccessResult wraps a generic value into an OperationResult.
func NewSuccessResult[T any](data T) *OperationResult[T] {
	return &OperationResult[T]{
		Data: data,
		Err:  nil,
	}
}
