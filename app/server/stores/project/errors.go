package project

import (
	"errors"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("project not found")

// ValidationError 写入被数据库拒绝（约束、类型等），Message 为数据库原始信息
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(err error) *ValidationError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &ValidationError{Message: pgErr.Message, Err: err}
	}
	return &ValidationError{Message: err.Error(), Err: err}
}
