package handlers

import (
	"github.com/gin-gonic/gin"

	"storecore/internal/domain/catalogs/category"
	"storecore/internal/http/v1/dto"
)

// CategoryHandler serves category CRUD endpoints.
type CategoryHandler struct {
	*BaseHandler
	svc *category.Service
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(svc *category.Service) *CategoryHandler {
	return &CategoryHandler{BaseHandler: NewBaseHandler(), svc: svc}
}

// Register mounts category routes on the group.
func (h *CategoryHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/delete-all-by-ids", h.DeleteAll)
}

// List returns one page of categories.
func (h *CategoryHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	result, err := h.svc.FindAll(c.Request.Context(), req.ToQuery())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(result, dto.FromCategory))
}

// Get returns one category by id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	cat, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCategory(cat))
}

// Create inserts a new category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cat := &category.Category{Code: req.Code, Name: req.Name}
	if err := h.svc.Create(c.Request.Context(), cat); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromCategory(cat))
}

// Update applies the full field set carried in the body.
func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cat, err := h.svc.Update(c.Request.Context(), req.ID, category.UpdateInput{
		Code: req.Code,
		Name: req.Name,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCategory(cat))
}

// Delete soft-deletes one category.
func (h *CategoryHandler) Delete(c *gin.Context) {
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

// DeleteAll soft-deletes a batch of categories, reporting absent ids.
func (h *CategoryHandler) DeleteAll(c *gin.Context) {
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
