package handlers

import (
	"github.com/gin-gonic/gin"

	"storecore/internal/domain/catalogs/brand"
	"storecore/internal/http/v1/dto"
)

// BrandHandler serves brand CRUD endpoints.
type BrandHandler struct {
	*BaseHandler
	svc *brand.Service
}

// NewBrandHandler creates a new brand handler.
func NewBrandHandler(svc *brand.Service) *BrandHandler {
	return &BrandHandler{BaseHandler: NewBaseHandler(), svc: svc}
}

// Register mounts brand routes on the group.
func (h *BrandHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/delete-all-by-ids", h.DeleteAll)
}

// List returns one page of brands.
func (h *BrandHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	result, err := h.svc.FindAll(c.Request.Context(), req.ToQuery())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(result, dto.FromBrand))
}

// Get returns one brand by id.
func (h *BrandHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	b, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBrand(b))
}

// Create inserts a new brand.
func (h *BrandHandler) Create(c *gin.Context) {
	var req dto.CreateBrandRequest
	if !h.BindJSON(c, &req) {
		return
	}

	b := &brand.Brand{Name: req.Name, Description: req.Description}
	if err := h.svc.Create(c.Request.Context(), b); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromBrand(b))
}

// Update applies the full field set carried in the body.
func (h *BrandHandler) Update(c *gin.Context) {
	var req dto.UpdateBrandRequest
	if !h.BindJSON(c, &req) {
		return
	}

	b, err := h.svc.Update(c.Request.Context(), req.ID, brand.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBrand(b))
}

// Delete soft-deletes one brand.
func (h *BrandHandler) Delete(c *gin.Context) {
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

// DeleteAll soft-deletes a batch of brands, reporting absent ids.
func (h *BrandHandler) DeleteAll(c *gin.Context) {
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
