package domain

import (
	"context"
	"fmt"
	"time"

	"storecore/internal/core/apperror"
	"storecore/internal/core/tx"
	"storecore/pkg/logger"
)

// CatalogService provides the business logic shared by catalog entities:
// lifecycle stamping, transaction scoping, lifecycle hooks and error
// normalization. Per-entity services embed it and register their own
// uniqueness and integrity hooks.
type CatalogService[T Record] struct {
	repo  CatalogRepository[T]
	txm   tx.Manager
	hooks *HookRegistry[T]

	// entityName for error messages
	entityName string

	now func() time.Time
}

// CatalogServiceConfig configures the catalog service.
type CatalogServiceConfig[T Record] struct {
	Repo       CatalogRepository[T]
	TxManager  tx.Manager
	EntityName string

	// Now overrides the clock (tests); defaults to time.Now.
	Now func() time.Time
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T Record](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &CatalogService[T]{
		repo:       cfg.Repo,
		txm:        cfg.TxManager,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
		now:        now,
	}
}

// Hooks returns the hook registry for external registration.
func (s *CatalogService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// Repo exposes the repository to embedding services.
func (s *CatalogService[T]) Repo() CatalogRepository[T] {
	return s.repo
}

// Now returns the service clock reading.
func (s *CatalogService[T]) Now() time.Time {
	return s.now()
}

// EntityName returns the name used in error messages.
func (s *CatalogService[T]) EntityName() string {
	return s.entityName
}

func (s *CatalogService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	// If entity already returns structured AppError, keep it.
	if _, ok := apperror.AsAppError(err); ok {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *CatalogService[T]) normalizeGetErr(err error, id any) error {
	if err == nil {
		return nil
	}
	// Ensure not-found is mapped to the correct entity name.
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, id)
	}
	if _, ok := apperror.AsAppError(err); ok {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("id", id)
}

// Create validates, runs before-create hooks and inserts the entity within
// one transaction scope. The entity gets CreatedAt stamped and carries the
// store-assigned id on return.
func (s *CatalogService[T]) Create(ctx context.Context, e T) error {
	if err := e.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	err := s.txm.Do(ctx, func(ctx context.Context) error {
		// Uniqueness hooks run inside the scope so their reads see the
		// same snapshot the insert writes into.
		if err := s.hooks.Run(ctx, BeforeCreate, e); err != nil {
			return err
		}
		e.StampCreated(s.now())
		if err := s.repo.Create(ctx, e); err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, AfterCreate, e); err != nil {
		// Entity is already committed, hook failures only get logged.
		logger.Warn(ctx, "after-create hook failed", "entity", s.entityName, "error", err)
	}

	return nil
}

// FindByID retrieves a live entity by id.
func (s *CatalogService[T]) FindByID(ctx context.Context, id int64) (T, error) {
	var found T
	err := s.txm.ReadOnly(ctx, func(ctx context.Context) error {
		e, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return s.normalizeGetErr(err, id)
		}
		found = e
		return nil
	})
	return found, err
}

// FindAll retrieves one page of live entities.
func (s *CatalogService[T]) FindAll(ctx context.Context, q ListQuery) (ListResult[T], error) {
	var result ListResult[T]
	err := s.txm.ReadOnly(ctx, func(ctx context.Context) error {
		r, err := s.repo.List(ctx, q.Normalize())
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	return result, err
}

// Update resolves the live entity and applies mutate to it within one
// transaction scope. mutate reports whether anything actually changed; the
// row is written, and UpdatedAt stamped, only on a real change. An
// unchanged entity is returned as-is without touching storage.
func (s *CatalogService[T]) Update(ctx context.Context, id int64, mutate func(ctx context.Context, e T) (bool, error)) (T, error) {
	var updated T
	err := s.txm.Do(ctx, func(ctx context.Context) error {
		e, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return s.normalizeGetErr(err, id)
		}

		changed, err := mutate(ctx, e)
		if err != nil {
			return err
		}
		if !changed {
			updated = e
			return nil
		}

		if err := e.Validate(ctx); err != nil {
			return s.normalizeValidationErr(err)
		}
		if err := s.hooks.Run(ctx, BeforeUpdate, e); err != nil {
			return err
		}

		e.Touch(s.now())
		if err := s.repo.Update(ctx, e); err != nil {
			return fmt.Errorf("update %s: %w", s.entityName, err)
		}
		updated = e
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	if err := s.hooks.Run(ctx, AfterUpdate, updated); err != nil {
		logger.Warn(ctx, "after-update hook failed", "entity", s.entityName, "error", err)
	}

	return updated, nil
}

// Delete soft-deletes a live entity.
func (s *CatalogService[T]) Delete(ctx context.Context, id int64) error {
	var deleted T
	err := s.txm.Do(ctx, func(ctx context.Context) error {
		e, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return s.normalizeGetErr(err, id)
		}
		if err := s.hooks.Run(ctx, BeforeDelete, e); err != nil {
			return err
		}
		if err := s.repo.SoftDelete(ctx, id, s.now()); err != nil {
			return fmt.Errorf("delete %s: %w", s.entityName, err)
		}
		deleted = e
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, AfterDelete, deleted); err != nil {
		logger.Warn(ctx, "after-delete hook failed", "entity", s.entityName, "error", err)
	}

	return nil
}

// DeleteAllByIDs soft-deletes every live entity among ids within a single
// scope. Absent ids never fail the operation; they are reported back in
// NotExistedIDs in request order.
func (s *CatalogService[T]) DeleteAllByIDs(ctx context.Context, ids []int64) (BulkDeleteResult, error) {
	result := BulkDeleteResult{
		DeletedIDs:        []int64{},
		NotExistedIDs:     []int64{},
		AlreadyDeletedIDs: []int64{},
	}

	err := s.txm.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindAllByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("find %s batch: %w", s.entityName, err)
		}

		alive := make(map[int64]struct{}, len(existing))
		for _, e := range existing {
			alive[e.EntityID()] = struct{}{}
		}

		existingIDs := make([]int64, 0, len(existing))
		for _, id := range ids {
			if _, ok := alive[id]; ok {
				existingIDs = append(existingIDs, id)
			} else {
				result.NotExistedIDs = append(result.NotExistedIDs, id)
			}
		}

		if len(existingIDs) == 0 {
			return nil
		}

		deleted, err := s.repo.SoftDeleteAll(ctx, existingIDs, s.now())
		if err != nil {
			return fmt.Errorf("delete %s batch: %w", s.entityName, err)
		}
		result.DeletedIDs = append(result.DeletedIDs, deleted...)
		return nil
	})
	if err != nil {
		return BulkDeleteResult{}, err
	}

	return result, nil
}
