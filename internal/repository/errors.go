package repository

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrInvalidValue  = errors.New("invalid value")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgInvalidText         = "22P02"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// mapError translates driver errors into the repository sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrAlreadyExists
		case pgForeignKeyViolation: // a referenced row does not exist
			return ErrNotFound
		case pgInvalidText: // malformed uuid key
			return ErrNotFound
		case pgNotNullViolation, pgCheckViolation:
			return errors.Wrap(ErrInvalidValue, pgErr.ColumnName)
		}
	}
	return err
}
