package service

import (
	"context"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/yakoovad/orgstructure/internal/db"
	"github.com/yakoovad/orgstructure/internal/repository"
	"github.com/yakoovad/orgstructure/pkg/logger"
	"go.uber.org/zap"
)

// Entity is a resource that can be written as a full set of columns.
type Entity interface {
	Fields() map[string]any
}

// Patch is a partial update. NaturalKey returns the key the client sent, if any.
type Patch interface {
	Fields() map[string]any
	NaturalKey() *string
}

// EntityService implements create, read, update and delete for one table.
type EntityService[E Entity, P Patch] struct {
	tx        db.Transactor
	validator Validator
	repo      repository.Repository[E]

	name       string
	parent     string
	generateID bool
}

// NewEntityService builds a service for records displayed to users as name,
// for example "Business entity".
func NewEntityService[E Entity, P Patch](tx db.Transactor, v Validator, name string) *EntityService[E, P] {
	return &EntityService[E, P]{
		tx:        tx,
		validator: v,
		name:      name,
	}
}

func (s *EntityService[E, P]) WithRepo(r repository.Repository[E]) *EntityService[E, P] {
	s.repo = r
	return s
}

// WithGeneratedID makes Create assign a random uuid to the id column.
func (s *EntityService[E, P]) WithGeneratedID() *EntityService[E, P] {
	s.generateID = true
	return s
}

// WithParent names the record a foreign key of this table points to. A missing
// parent is reported as "<parent> not found".
func (s *EntityService[E, P]) WithParent(parent string) *EntityService[E, P] {
	s.parent = parent
	return s
}

func (s *EntityService[E, P]) Name() string {
	return s.name
}

func (s *EntityService[E, P]) notFound() *Error {
	return NewError(ErrorCodeNotFound, s.name+" not found")
}

// alreadyExists names the natural key only for tables keyed by one.
func (s *EntityService[E, P]) alreadyExists() *Error {
	if s.generateID {
		return NewError(ErrorCodeAlreadyExists, s.name+" already exists")
	}
	return NewError(ErrorCodeAlreadyExists, s.name+" Code already exists")
}

func (s *EntityService[E, P]) invalidValue() *Error {
	return NewError(ErrorCodeValidationFailed, s.name+" has a missing or invalid field")
}

func (s *EntityService[E, P]) parentNotFound() *Error {
	if s.parent == "" {
		return NewError(ErrorCodeNotFound, "referenced record not found")
	}
	return NewError(ErrorCodeNotFound, s.parent+" not found")
}

func (s *EntityService[E, P]) Create(ctx context.Context, in E) (*E, *Error) {
	l := logger.FromContext(ctx).With(zap.String("resource", s.name))
	l.Debug("creating record")

	if verr := validate(s.validator, in); verr != nil {
		l.Warn("invalid record", zap.String("reason", verr.Message))
		return nil, verr
	}

	fields := in.Fields()
	if s.generateID {
		fields["id"] = uuid.NewString()
	}

	created, err := s.repo.Create(ctx, fields)
	if errors.Is(err, repository.ErrAlreadyExists) {
		l.Warn("record already exists")
		return nil, s.alreadyExists()
	}
	if errors.Is(err, repository.ErrNotFound) {
		l.Warn("referenced record does not exist")
		return nil, s.parentNotFound()
	}
	if errors.Is(err, repository.ErrInvalidValue) {
		l.Warn("record rejected by the database", zap.Error(err))
		return nil, s.invalidValue()
	}
	if err != nil {
		l.Error("failed to create record", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create "+s.name)
	}

	l.Debug("record created")
	return created, nil
}

func (s *EntityService[E, P]) Get(ctx context.Context, key string) (*E, *Error) {
	l := logger.FromContext(ctx).With(zap.String("resource", s.name), zap.String("key", key))
	l.Debug("getting record")

	item, err := s.repo.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		l.Warn("record not found")
		return nil, s.notFound()
	}
	if err != nil {
		l.Error("failed to get record", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get "+s.name)
	}
	return item, nil
}

// List returns every record matching filter (column = value), ordered by key.
func (s *EntityService[E, P]) List(ctx context.Context, filter map[string]any) ([]*E, *Error) {
	l := logger.FromContext(ctx).With(zap.String("resource", s.name))
	l.Debug("listing records", zap.Any("filter", filter))

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		l.Error("failed to list records", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list "+s.name)
	}
	return items, nil
}

// Update applies patch to the record stored under key. The natural key is
// immutable; sending it unchanged is allowed.
func (s *EntityService[E, P]) Update(ctx context.Context, key string, patch P) (*E, *Error) {
	l := logger.FromContext(ctx).With(zap.String("resource", s.name), zap.String("key", key))
	l.Debug("updating record")

	var updated *E
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		_, err := s.repo.Get(txCtx, key)
		if errors.Is(err, repository.ErrNotFound) {
			l.Warn("record not found")
			return s.notFound()
		}
		if err != nil {
			l.Error("failed to load record", zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to update "+s.name)
		}

		if verr := validate(s.validator, patch); verr != nil {
			l.Warn("invalid patch", zap.String("reason", verr.Message))
			return verr
		}

		if nk := patch.NaturalKey(); nk != nil && *nk != key {
			l.Warn("attempt to change natural key", zap.String("new_key", *nk))
			return NewError(ErrorCodeValidationFailed, s.name+" Code cannot be changed")
		}

		fields := patch.Fields()
		if len(fields) == 0 {
			return NewError(ErrorCodeValidationFailed, "At least one field must be provided for update")
		}

		updated, err = s.repo.Patch(txCtx, key, fields)
		if errors.Is(err, repository.ErrNotFound) {
			l.Warn("referenced record does not exist")
			return s.parentNotFound()
		}
		if errors.Is(err, repository.ErrInvalidValue) {
			l.Warn("patch rejected by the database", zap.Error(err))
			return s.invalidValue()
		}
		if err != nil {
			l.Error("failed to patch record", zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to update "+s.name)
		}
		return nil
	})
	if err != nil {
		return nil, asError(err, "failed to update "+s.name)
	}

	l.Debug("record updated")
	return updated, nil
}

func (s *EntityService[E, P]) Delete(ctx context.Context, key string) *Error {
	l := logger.FromContext(ctx).With(zap.String("resource", s.name), zap.String("key", key))
	l.Debug("deleting record")

	err := s.repo.Delete(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		l.Warn("record not found")
		return s.notFound()
	}
	if err != nil {
		l.Error("failed to delete record", zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete "+s.name)
	}

	l.Debug("record deleted")
	return nil
}
