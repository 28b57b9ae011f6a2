package service

import (
	"context"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/yakoovad/orgstructure/internal/db"
	"github.com/yakoovad/orgstructure/internal/model"
	"github.com/yakoovad/orgstructure/internal/repository"
	"github.com/yakoovad/orgstructure/pkg/logger"
	"go.uber.org/zap"
	"strings"
)

// PairRecord is a stored assignment row.
type PairRecord interface {
	Key() string
	MemberCodes() []string
}

// KeyChecker reports whether a record with the given key exists.
type KeyChecker interface {
	Exists(ctx context.Context, key string) (bool, error)
}

// Ref ties a pair column to the table it references.
type Ref struct {
	Column string
	Name   string
	Table  KeyChecker
}

// PairService manages the assignment rows of one owner table. Rows are
// identified by their full (owner, members...) tuple.
type PairService[P PairRecord, A model.Assignment] struct {
	tx        db.Transactor
	validator Validator
	pairs     repository.Repository[P]

	name    string
	owner   Ref
	members []Ref
}

// NewPairService builds a service for pairs displayed to users as name, for
// example "Unit pair". Members are listed in the order A.Codes returns them.
func NewPairService[P PairRecord, A model.Assignment](tx db.Transactor, v Validator, name string, owner Ref, members ...Ref) *PairService[P, A] {
	return &PairService[P, A]{
		tx:        tx,
		validator: v,
		name:      name,
		owner:     owner,
		members:   members,
	}
}

func (s *PairService[P, A]) WithRepo(r repository.Repository[P]) *PairService[P, A] {
	s.pairs = r
	return s
}

func (s *PairService[P, A]) Name() string {
	return s.name
}

func (s *PairService[P, A]) tuple(ownerCode string, codes []string) map[string]any {
	t := map[string]any{s.owner.Column: ownerCode}
	for i, m := range s.members {
		t[m.Column] = codes[i]
	}
	return t
}

func tupleKey(codes []string) string {
	return strings.Join(codes, "\x00")
}

func (s *PairService[P, A]) checkRef(ctx context.Context, l *zap.Logger, ref Ref, code string) *Error {
	ok, err := ref.Table.Exists(ctx, code)
	if err != nil {
		l.Error("failed to check reference", zap.String("ref", ref.Name), zap.String("code", code), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to check "+ref.Name)
	}
	if !ok {
		l.Warn("reference not found", zap.String("ref", ref.Name), zap.String("code", code))
		return NewError(ErrorCodeNotFound, ref.Name+" not found")
	}
	return nil
}

func (s *PairService[P, A]) checkMembers(ctx context.Context, l *zap.Logger, codes []string) *Error {
	for i, m := range s.members {
		if serr := s.checkRef(ctx, l, m, codes[i]); serr != nil {
			return serr
		}
	}
	return nil
}

func (s *PairService[P, A]) findTuple(ctx context.Context, ownerCode string, codes []string) (*P, error) {
	return s.pairs.FindFirst(ctx, s.tuple(ownerCode, codes))
}

// Assign links the owner to the members in a. Assigning an existing tuple
// returns the stored pair unchanged.
func (s *PairService[P, A]) Assign(ctx context.Context, ownerCode string, a A) (*P, *Error) {
	l := logger.FromContext(ctx).With(zap.String("pair", s.name), zap.String("owner", ownerCode))
	l.Debug("assigning", zap.Strings("codes", a.Codes()))

	if verr := validate(s.validator, a); verr != nil {
		l.Warn("invalid assignment", zap.String("reason", verr.Message))
		return nil, verr
	}
	if serr := s.checkRef(ctx, l, s.owner, ownerCode); serr != nil {
		return nil, serr
	}
	codes := a.Codes()
	if serr := s.checkMembers(ctx, l, codes); serr != nil {
		return nil, serr
	}

	existing, err := s.findTuple(ctx, ownerCode, codes)
	if err == nil {
		l.Debug("assignment already present", zap.String("id", (*existing).Key()))
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		l.Error("failed to look up assignment", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to assign "+s.name)
	}

	fields := s.tuple(ownerCode, codes)
	fields["id"] = uuid.NewString()

	created, err := s.pairs.Create(ctx, fields)
	if errors.Is(err, repository.ErrAlreadyExists) {
		// a concurrent request inserted the same tuple
		existing, err = s.findTuple(ctx, ownerCode, codes)
		if err == nil {
			return existing, nil
		}
	}
	if errors.Is(err, repository.ErrNotFound) {
		l.Warn("referenced record disappeared during assignment")
		return nil, NewError(ErrorCodeNotFound, "referenced record not found")
	}
	if err != nil {
		l.Error("failed to create assignment", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to assign "+s.name)
	}

	l.Debug("assignment created", zap.String("id", (*created).Key()))
	return created, nil
}

// Update moves the pair identified by change.From to the tuple change.To.
func (s *PairService[P, A]) Update(ctx context.Context, ownerCode string, change model.AssignmentChange[A]) (*P, *Error) {
	l := logger.FromContext(ctx).With(zap.String("pair", s.name), zap.String("owner", ownerCode))
	l.Debug("updating assignment", zap.Strings("from", change.From.Codes()), zap.Strings("to", change.To.Codes()))

	if verr := validate(s.validator, change); verr != nil {
		l.Warn("invalid assignment change", zap.String("reason", verr.Message))
		return nil, verr
	}

	var updated *P
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if serr := s.checkRef(txCtx, l, s.owner, ownerCode); serr != nil {
			return serr
		}

		current, err := s.findTuple(txCtx, ownerCode, change.From.Codes())
		if errors.Is(err, repository.ErrNotFound) {
			l.Warn("assignment to update not found")
			return NewError(ErrorCodeNotFound, s.name+" not found")
		}
		if err != nil {
			l.Error("failed to look up assignment", zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to update "+s.name)
		}

		to := change.To.Codes()
		if tupleKey(to) == tupleKey(change.From.Codes()) {
			updated = current
			return nil
		}
		if serr := s.checkMembers(txCtx, l, to); serr != nil {
			return serr
		}

		_, err = s.findTuple(txCtx, ownerCode, to)
		if err == nil {
			l.Warn("target assignment already exists")
			return NewError(ErrorCodeAlreadyExists, s.name+" already exists")
		}
		if !errors.Is(err, repository.ErrNotFound) {
			l.Error("failed to look up target assignment", zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to update "+s.name)
		}

		fields := s.tuple(ownerCode, to)
		delete(fields, s.owner.Column)

		updated, err = s.pairs.Patch(txCtx, (*current).Key(), fields)
		if errors.Is(err, repository.ErrAlreadyExists) {
			return NewError(ErrorCodeAlreadyExists, s.name+" already exists")
		}
		if err != nil {
			l.Error("failed to patch assignment", zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to update "+s.name)
		}
		return nil
	})
	if err != nil {
		return nil, asError(err, "failed to update "+s.name)
	}

	l.Debug("assignment updated", zap.String("id", (*updated).Key()))
	return updated, nil
}

// ListByOwner returns the pairs of one owner.
func (s *PairService[P, A]) ListByOwner(ctx context.Context, ownerCode string) ([]*P, *Error) {
	l := logger.FromContext(ctx).With(zap.String("pair", s.name), zap.String("owner", ownerCode))
	l.Debug("listing assignments of owner")

	if serr := s.checkRef(ctx, l, s.owner, ownerCode); serr != nil {
		return nil, serr
	}

	items, err := s.pairs.List(ctx, map[string]any{s.owner.Column: ownerCode})
	if err != nil {
		l.Error("failed to list assignments", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list "+s.name)
	}
	return items, nil
}

func (s *PairService[P, A]) ListAll(ctx context.Context) ([]*P, *Error) {
	l := logger.FromContext(ctx).With(zap.String("pair", s.name))
	l.Debug("listing all assignments")

	items, err := s.pairs.List(ctx, nil)
	if err != nil {
		l.Error("failed to list assignments", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list "+s.name)
	}
	return items, nil
}

// Delete removes the pair matching the exact (owner, a) tuple.
func (s *PairService[P, A]) Delete(ctx context.Context, ownerCode string, a A) *Error {
	l := logger.FromContext(ctx).With(zap.String("pair", s.name), zap.String("owner", ownerCode))
	l.Debug("deleting assignment", zap.Strings("codes", a.Codes()))

	if verr := validate(s.validator, a); verr != nil {
		l.Warn("invalid assignment", zap.String("reason", verr.Message))
		return verr
	}

	existing, err := s.findTuple(ctx, ownerCode, a.Codes())
	if errors.Is(err, repository.ErrNotFound) {
		l.Warn("assignment not found")
		return NewError(ErrorCodeNotFound, s.name+" not found")
	}
	if err != nil {
		l.Error("failed to look up assignment", zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete "+s.name)
	}

	err = s.pairs.Delete(ctx, (*existing).Key())
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, s.name+" not found")
	}
	if err != nil {
		l.Error("failed to delete assignment", zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete "+s.name)
	}

	l.Debug("assignment deleted", zap.String("id", (*existing).Key()))
	return nil
}

// Upsert adds every pair of set the owner does not have yet and touches
// updated_at on the ones it has. Pairs missing from set are kept. Entries with
// invalid or unknown codes are skipped; when nothing valid remains the owner's
// pairs are returned unchanged.
func (s *PairService[P, A]) Upsert(ctx context.Context, ownerCode string, set []A) ([]*P, *Error) {
	l := logger.FromContext(ctx).With(zap.String("pair", s.name), zap.String("owner", ownerCode))
	l.Debug("upserting assignments", zap.Int("count", len(set)))

	if serr := s.checkRef(ctx, l, s.owner, ownerCode); serr != nil {
		return nil, serr
	}

	wanted := make(map[string][]string, len(set))
	order := make([]string, 0, len(set))
	for i, a := range set {
		if verr := validate(s.validator, a); verr != nil {
			l.Warn("skipping invalid assignment", zap.Int("index", i), zap.String("reason", verr.Message))
			continue
		}
		codes := a.Codes()
		if serr := s.checkMembers(ctx, l, codes); serr != nil {
			if serr.Code != ErrorCodeNotFound {
				return nil, serr
			}
			l.Warn("skipping assignment with unknown reference", zap.Int("index", i), zap.String("reason", serr.Message))
			continue
		}
		k := tupleKey(codes)
		if _, dup := wanted[k]; !dup {
			order = append(order, k)
		}
		wanted[k] = codes
	}

	if len(wanted) == 0 {
		l.Debug("no valid assignments supplied, keeping current ones")
		return s.ListByOwner(ctx, ownerCode)
	}

	var result []*P
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.pairs.List(txCtx, map[string]any{s.owner.Column: ownerCode})
		if err != nil {
			l.Error("failed to list assignments", zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to update "+s.name)
		}

		have := make(map[string]string, len(current))
		for _, p := range current {
			have[tupleKey((*p).MemberCodes())] = (*p).Key()
		}

		for _, k := range order {
			if id, ok := have[k]; ok {
				if _, err = s.pairs.Patch(txCtx, id, map[string]any{}); err != nil {
					l.Error("failed to touch assignment", zap.String("id", id), zap.Error(err))
					return NewError(ErrorCodeUnspecified, "failed to update "+s.name)
				}
				continue
			}
			fields := s.tuple(ownerCode, wanted[k])
			fields["id"] = uuid.NewString()
			if _, err = s.pairs.Create(txCtx, fields); err != nil {
				l.Error("failed to create assignment", zap.Error(err))
				return NewError(ErrorCodeUnspecified, "failed to update "+s.name)
			}
		}

		result, err = s.pairs.List(txCtx, map[string]any{s.owner.Column: ownerCode})
		if err != nil {
			l.Error("failed to list assignments", zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to update "+s.name)
		}
		return nil
	})
	if err != nil {
		return nil, asError(err, "failed to update "+s.name)
	}

	l.Debug("assignments upserted", zap.Int("count", len(result)))
	return result, nil
}
