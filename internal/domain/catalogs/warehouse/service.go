package warehouse

import (
	"context"

	"storecore/internal/core/apperror"
	"storecore/internal/core/tx"
	"storecore/internal/domain"
)

const entityName = "Warehouse"

// Repository defines storage operations for warehouses.
type Repository interface {
	domain.CatalogRepository[*Warehouse]

	// FindByName retrieves a live warehouse by exact name.
	FindByName(ctx context.Context, name string) (*Warehouse, error)
}

// Service provides warehouse business logic.
type Service struct {
	*domain.CatalogService[*Warehouse]
	repo Repository
}

// NewService creates the warehouse service.
func NewService(repo Repository, txm tx.Manager) *Service {
	s := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Warehouse]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: entityName,
		}),
		repo: repo,
	}

	s.Hooks().On(domain.BeforeCreate, func(ctx context.Context, w *Warehouse) error {
		return s.ensureNameFree(ctx, w.Name, w.ID)
	})

	return s
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

// UpdateInput carries the full mutable field set of a warehouse.
type UpdateInput struct {
	Name   string
	City   *string
	Mobile *string
	Email  *string
	Zip    *string
}

// Update applies in to the warehouse, re-checking name uniqueness only when
// the name actually changes.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Warehouse, error) {
	return s.CatalogService.Update(ctx, id, func(ctx context.Context, w *Warehouse) (bool, error) {
		changed := false
		if in.Name != w.Name {
			if err := s.ensureNameFree(ctx, in.Name, w.ID); err != nil {
				return false, err
			}
			w.Name = in.Name
			changed = true
		}
		if !domain.EqualPtr(in.City, w.City) {
			w.City = in.City
			changed = true
		}
		if !domain.EqualPtr(in.Mobile, w.Mobile) {
			w.Mobile = in.Mobile
			changed = true
		}
		if !domain.EqualPtr(in.Email, w.Email) {
			w.Email = in.Email
			changed = true
		}
		if !domain.EqualPtr(in.Zip, w.Zip) {
			w.Zip = in.Zip
			changed = true
		}
		return changed, nil
	})
}
