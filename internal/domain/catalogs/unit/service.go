package unit

import (
	"context"

	"github.com/shopspring/decimal"

	"storecore/internal/core/apperror"
	"storecore/internal/core/tx"
	"storecore/internal/domain"
)

const entityName = "Unit"

// Repository defines storage operations for units.
type Repository interface {
	domain.CatalogRepository[*Unit]

	// FindByName retrieves a live unit by exact name.
	FindByName(ctx context.Context, name string) (*Unit, error)
}

// Service provides unit business logic.
type Service struct {
	*domain.CatalogService[*Unit]
	repo Repository
}

// NewService creates the unit service.
func NewService(repo Repository, txm tx.Manager) *Service {
	s := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Unit]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: entityName,
		}),
		repo: repo,
	}

	s.Hooks().On(domain.BeforeCreate, func(ctx context.Context, u *Unit) error {
		return s.ensureNameFree(ctx, u.Name, u.ID)
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

// UpdateInput carries the full mutable field set of a unit.
type UpdateInput struct {
	Name          string
	ShortName     string
	Operator      Operator
	OperatorValue decimal.Decimal
}

// Update applies in to the unit, re-checking name uniqueness only when the
// name actually changes.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Unit, error) {
	return s.CatalogService.Update(ctx, id, func(ctx context.Context, u *Unit) (bool, error) {
		changed := false
		if in.Name != u.Name {
			if err := s.ensureNameFree(ctx, in.Name, u.ID); err != nil {
				return false, err
			}
			u.Name = in.Name
			changed = true
		}
		if in.ShortName != u.ShortName {
			u.ShortName = in.ShortName
			changed = true
		}
		if in.Operator != u.Operator {
			u.Operator = in.Operator
			changed = true
		}
		if !in.OperatorValue.Equal(u.OperatorValue) {
			u.OperatorValue = in.OperatorValue
			changed = true
		}
		return changed, nil
	})
}
