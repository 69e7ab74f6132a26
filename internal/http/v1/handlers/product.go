package handlers

import (
	"github.com/gin-gonic/gin"

	"storecore/internal/domain/catalogs/product"
	"storecore/internal/http/v1/dto"
)

// ProductHandler serves product CRUD endpoints.
type ProductHandler struct {
	*BaseHandler
	svc *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(svc *product.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: NewBaseHandler(), svc: svc}
}

// Register mounts product routes on the group.
func (h *ProductHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/delete-all-by-ids", h.DeleteAll)
}

// List returns one page of products.
func (h *ProductHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	result, err := h.svc.FindAll(c.Request.Context(), req.ToQuery())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(result, dto.FromProduct))
}

// Get returns one product by id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	p, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromProduct(p))
}

// Create inserts a new product with its variants.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p := req.ToProduct()
	if err := h.svc.Create(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromProduct(p))
}

// Update applies the full field set carried in the body.
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.svc.Update(c.Request.Context(), req.ID, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromProduct(p))
}

// Delete soft-deletes one product and its variants.
func (h *ProductHandler) Delete(c *gin.Context) {
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

// DeleteAll soft-deletes a batch of products, reporting absent ids.
func (h *ProductHandler) DeleteAll(c *gin.Context) {
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
