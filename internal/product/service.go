package product

import (
	"context"
	"errors"

	"github.com/MikeMC777/commerce-api/internal/apperr"
	"github.com/MikeMC777/commerce-api/internal/validation"
)

// TxManager runs fn in one transaction carried by the ctx it receives.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	repo  Repository
	tx    TxManager
	cache Cache
}

func NewService(repo Repository, tx TxManager, cache Cache) *Service {
	if cache == nil {
		cache = NopCache{}
	}
	return &Service{repo: repo, tx: tx, cache: cache}
}

func (s *Service) FindByID(ctx context.Context, id int64) (*Product, error) {
	if p, ok := s.cache.Get(ctx, id); ok {
		return p, nil
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	s.cache.Set(ctx, p)
	return p, nil
}

// FindAll lists products whose name contains name, page being zero-based.
func (s *Service) FindAll(ctx context.Context, name string, page, size int) (Page[Min], error) {
	items, total, err := s.repo.Search(ctx, Query{Name: name, Limit: size, Offset: page * size})
	if err != nil {
		return Page[Min]{}, err
	}
	content := make([]Min, 0, len(items))
	for _, p := range items {
		content = append(content, p.Min())
	}
	return NewPage(content, total, page, size), nil
}

func (s *Service) Insert(ctx context.Context, in Payload) (*Product, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var out *Product
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		p := in.toProduct(0)
		if err := s.repo.Create(ctx, p); err != nil {
			return err
		}
		var err error
		out, err = s.repo.GetByID(ctx, p.ID)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// Update evicts the cached projection before and after the write.
func (s *Service) Update(ctx context.Context, id int64, in Payload) (*Product, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, id)
	defer s.cache.Invalidate(ctx, id)

	var out *Product
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, in.toProduct(id)); err != nil {
			return err
		}
		var err error
		out, err = s.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// Delete checks existence first so an absent id is NotFound even when the
// store would also report a reference.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("resource not found", ErrNotFound)
	}
	s.cache.Invalidate(ctx, id)
	defer s.cache.Invalidate(ctx, id)

	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	return nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperr.NotFound("resource not found", err)
	case errors.Is(err, ErrReferenced):
		return apperr.Conflict("referential integrity violation", err)
	case errors.Is(err, ErrUnknownCategory):
		return apperr.Validation(apperr.FieldMessage{FieldName: "categories", Message: "category does not exist"})
	default:
		return err
	}
}
