package brand

import (
	"context"

	"storecore/internal/core/apperror"
	"storecore/internal/core/tx"
	"storecore/internal/domain"
)

const entityName = "Brand"

// Repository defines storage operations for brands.
type Repository interface {
	domain.CatalogRepository[*Brand]

	// FindByName retrieves a live brand by exact name.
	FindByName(ctx context.Context, name string) (*Brand, error)
}

// Service provides brand business logic.
type Service struct {
	*domain.CatalogService[*Brand]
	repo Repository
}

// NewService creates the brand service.
func NewService(repo Repository, txm tx.Manager) *Service {
	s := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Brand]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: entityName,
		}),
		repo: repo,
	}

	s.Hooks().On(domain.BeforeCreate, func(ctx context.Context, b *Brand) error {
		return s.ensureNameFree(ctx, b.Name, b.ID)
	})

	return s
}

// ensureNameFree fails when another live brand already carries name.
// excludeID lets an entity keep its own name.
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

// UpdateInput carries the full mutable field set of a brand.
type UpdateInput struct {
	Name        string
	Description *string
}

// Update applies in to the brand, re-checking name uniqueness only when the
// name actually changes.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Brand, error) {
	return s.CatalogService.Update(ctx, id, func(ctx context.Context, b *Brand) (bool, error) {
		changed := false
		if in.Name != b.Name {
			if err := s.ensureNameFree(ctx, in.Name, b.ID); err != nil {
				return false, err
			}
			b.Name = in.Name
			changed = true
		}
		if !domain.EqualPtr(in.Description, b.Description) {
			b.Description = in.Description
			changed = true
		}
		return changed, nil
	})
}
