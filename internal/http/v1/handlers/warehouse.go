package handlers

import (
	"github.com/gin-gonic/gin"

	"storecore/internal/domain/catalogs/warehouse"
	"storecore/internal/http/v1/dto"
)

// WarehouseHandler serves warehouse CRUD endpoints.
type WarehouseHandler struct {
	*BaseHandler
	svc *warehouse.Service
}

// NewWarehouseHandler creates a new warehouse handler.
func NewWarehouseHandler(svc *warehouse.Service) *WarehouseHandler {
	return &WarehouseHandler{BaseHandler: NewBaseHandler(), svc: svc}
}

// Register mounts warehouse routes on the group.
func (h *WarehouseHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/delete-all-by-ids", h.DeleteAll)
}

// List returns one page of warehouses.
func (h *WarehouseHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	result, err := h.svc.FindAll(c.Request.Context(), req.ToQuery())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(result, dto.FromWarehouse))
}

// Get returns one warehouse by id.
func (h *WarehouseHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	w, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromWarehouse(w))
}

// Create inserts a new warehouse.
func (h *WarehouseHandler) Create(c *gin.Context) {
	var req dto.CreateWarehouseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	w := &warehouse.Warehouse{
		Name:   req.Name,
		City:   req.City,
		Mobile: req.Mobile,
		Email:  req.Email,
		Zip:    req.Zip,
	}
	if err := h.svc.Create(c.Request.Context(), w); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromWarehouse(w))
}

// Update applies the full field set carried in the body.
func (h *WarehouseHandler) Update(c *gin.Context) {
	var req dto.UpdateWarehouseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	w, err := h.svc.Update(c.Request.Context(), req.ID, warehouse.UpdateInput{
		Name:   req.Name,
		City:   req.City,
		Mobile: req.Mobile,
		Email:  req.Email,
		Zip:    req.Zip,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromWarehouse(w))
}

// Delete soft-deletes one warehouse.
func (h *WarehouseHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.SuccessResponse{Success: true})
}

// DeleteAll soft-deletes a batch of warehouses, reporting absent ids.
func (h *WarehouseHandler) DeleteAll(c *gin.Context) {
	var req dto.DeleteAllRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.svc.DeleteAllByIDs(c.Request.Context(), req.IDs)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewBulkDeleteResponse(result))
}
