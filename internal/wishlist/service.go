package wishlist

import (
	"context"

	"github.com/davidcastanon/shopmart-backend/internal/products"
	"github.com/davidcastanon/shopmart-backend/pkg/errors"
)

// Service exposes per-user wishlist operations. Every method scopes by the
// caller's user id; no operation can observe another user's list.
type Service interface {
	// Add saves the product to the user's wishlist. Adding an already
	// saved product is a no-op that returns the existing entry.
	Add(ctx context.Context, userID, productID string) (*EntryDTO, error)
	// Remove deletes the product from the user's wishlist and reports
	// whether it was present.
	Remove(ctx context.Context, userID, productID string) (bool, error)
	// IsMember reports whether the product is on the user's wishlist.
	IsMember(ctx context.Context, userID, productID string) (bool, error)
	// List returns the user's membership rows, newest first.
	List(ctx context.Context, userID string) ([]EntryDTO, error)
	// ListWithProducts returns the user's wishlist joined with product
	// details, newest first.
	ListWithProducts(ctx context.Context, userID string) ([]EntryWithProductDTO, error)
}

type service struct {
	repo     *Repository
	products products.Service
}

// NewService builds a wishlist service. The product service is consulted on
// Add so entries can only reference products that exist.
func NewService(repo *Repository, catalog products.Service) (Service, error) {
	if repo == nil {
		return nil, errors.New(errors.CodeInternal, "wishlist repository is required")
	}
	if catalog == nil {
		return nil, errors.New(errors.CodeInternal, "product service is required")
	}
	return &service{repo: repo, products: catalog}, nil
}

func (s *service) Add(ctx context.Context, userID, productID string) (*EntryDTO, error) {
	if userID == "" {
		return nil, errors.New(errors.CodeUnauthorized, "user id is required")
	}
	if productID == "" {
		return nil, errors.New(errors.CodeValidation, "product id is required")
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New(errors.CodeNotFound, "product not found")
	}

	if err := s.repo.Insert(ctx, userID, productID); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "add wishlist entry")
	}

	// The insert may have hit the conflict path, so read the row back to
	// return the entry that actually exists.
	entry, err := s.repo.Find(ctx, userID, productID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "load wishlist entry")
	}
	if entry == nil {
		return nil, errors.New(errors.CodeInternal, "wishlist entry missing after insert")
	}

	dto := entryFromModel(entry)
	return &dto, nil
}

func (s *service) Remove(ctx context.Context, userID, productID string) (bool, error) {
	if userID == "" {
		return false, errors.New(errors.CodeUnauthorized, "user id is required")
	}
	if productID == "" {
		return false, errors.New(errors.CodeValidation, "product id is required")
	}

	removed, err := s.repo.Delete(ctx, userID, productID)
	if err != nil {
		return false, errors.Wrap(errors.CodeInternal, err, "remove wishlist entry")
	}
	return removed, nil
}

func (s *service) IsMember(ctx context.Context, userID, productID string) (bool, error) {
	entry, err := s.repo.Find(ctx, userID, productID)
	if err != nil {
		return false, errors.Wrap(errors.CodeInternal, err, "check wishlist entry")
	}
	return entry != nil, nil
}

func (s *service) List(ctx context.Context, userID string) ([]EntryDTO, error) {
	if userID == "" {
		return nil, errors.New(errors.CodeUnauthorized, "user id is required")
	}
	rows, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "list wishlist")
	}
	return entriesFromModels(rows), nil
}

func (s *service) ListWithProducts(ctx context.Context, userID string) ([]EntryWithProductDTO, error) {
	if userID == "" {
		return nil, errors.New(errors.CodeUnauthorized, "user id is required")
	}
	items, err := s.repo.ListWithProducts(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "list wishlist with products")
	}
	return items, nil
}
