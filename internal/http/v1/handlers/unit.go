package handlers

import (
	"github.com/gin-gonic/gin"

	"storecore/internal/domain/catalogs/unit"
	"storecore/internal/http/v1/dto"
)

// UnitHandler serves unit CRUD endpoints.
type UnitHandler struct {
	*BaseHandler
	svc *unit.Service
}

// NewUnitHandler creates a new unit handler.
func NewUnitHandler(svc *unit.Service) *UnitHandler {
	return &UnitHandler{BaseHandler: NewBaseHandler(), svc: svc}
}

// Register mounts unit routes on the group.
func (h *UnitHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/delete-all-by-ids", h.DeleteAll)
}

// List returns one page of units.
func (h *UnitHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	result, err := h.svc.FindAll(c.Request.Context(), req.ToQuery())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(result, dto.FromUnit))
}

// Get returns one unit by id.
func (h *UnitHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	u, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUnit(u))
}

// Create inserts a new unit.
func (h *UnitHandler) Create(c *gin.Context) {
	var req dto.CreateUnitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	u := &unit.Unit{
		Name:          req.Name,
		ShortName:     req.ShortName,
		Operator:      unit.Operator(req.Operator),
		OperatorValue: req.OperatorValue,
	}
	if err := h.svc.Create(c.Request.Context(), u); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromUnit(u))
}

// Update applies the full field set carried in the body.
func (h *UnitHandler) Update(c *gin.Context) {
	var req dto.UpdateUnitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	u, err := h.svc.Update(c.Request.Context(), req.ID, unit.UpdateInput{
		Name:          req.Name,
		ShortName:     req.ShortName,
		Operator:      unit.Operator(req.Operator),
		OperatorValue: req.OperatorValue,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromUnit(u))
}

// Delete soft-deletes one unit.
func (h *UnitHandler) Delete(c *gin.Context) {
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

// DeleteAll soft-deletes a batch of units, reporting absent ids.
func (h *UnitHandler) DeleteAll(c *gin.Context) {
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
