package category

import (
	"context"

	"storecore/internal/core/apperror"
	"storecore/internal/core/tx"
	"storecore/internal/domain"
)

const entityName = "Category"

// Repository defines storage operations for categories.
type Repository interface {
	domain.CatalogRepository[*Category]

	// FindByName retrieves a live category by exact name.
	FindByName(ctx context.Context, name string) (*Category, error)

	// FindByCode retrieves a live category by exact code.
	FindByCode(ctx context.Context, code string) (*Category, error)
}

// Service provides category business logic.
type Service struct {
	*domain.CatalogService[*Category]
	repo Repository
}

// NewService creates the category service.
func NewService(repo Repository, txm tx.Manager) *Service {
	s := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Category]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: entityName,
		}),
		repo: repo,
	}

	s.Hooks().On(domain.BeforeCreate, func(ctx context.Context, c *Category) error {
		if err := s.ensureCodeFree(ctx, c.Code, c.ID); err != nil {
			return err
		}
		return s.ensureNameFree(ctx, c.Name, c.ID)
	})

	return s
}

func (s *Service) ensureCodeFree(ctx context.Context, code string, excludeID int64) error {
	existing, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return apperror.NewUniqueViolation(entityName, "code")
}

func (s *Service) ensureNameFree(ctx context.Context, name string, excludeID int64) error {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return apperror.NewUniqueViolation(entityName, "name")
}

// UpdateInput carries the full mutable field set of a category.
type UpdateInput struct {
	Code string
	Name string
}

// Update applies in to the category, re-checking uniqueness only for the
// fields that actually change.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Category, error) {
	return s.CatalogService.Update(ctx, id, func(ctx context.Context, c *Category) (bool, error) {
		changed := false
		if in.Code != c.Code {
			if err := s.ensureCodeFree(ctx, in.Code, c.ID); err != nil {
				return false, err
			}
			c.Code = in.Code
			changed = true
		}
		if in.Name != c.Name {
			if err := s.ensureNameFree(ctx, in.Name, c.ID); err != nil {
				return false, err
			}
			c.Name = in.Name
			changed = true
		}
		return changed, nil
	})
}
