package products

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/xyz-asif/modacart/internal/pkg/query"
	"github.com/xyz-asif/modacart/internal/pkg/response"
	errs "github.com/xyz-asif/modacart/pkg/errors"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List products
// @Description List products with filter, select and pagination query params
// @Tags products
// @Produce json
// @Param select query string false "Comma-separated projection fields"
// @Success 200 {object} response.APIResponse{data=response.ListData}
// @Failure 400 {object} response.APIResponse
// @Router /products [get]
func (h *Handler) List(c *gin.Context) {
	count, err := h.repo.Count(c.Request.Context())
	if err != nil {
		response.BadRequest(c, "Error when fetching all products", "DATABASE_ERROR")
		return
	}
	if count == 0 {
		response.Success(c, nil, "There are no products to fetch")
		return
	}

	q, err := query.Translate(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, err.Error(), "MALFORMED_FILTER")
		return
	}

	products, total, err := h.repo.List(c.Request.Context(), q)
	if err != nil {
		response.BadRequest(c, "Error when fetching all products", "DATABASE_ERROR")
		return
	}

	response.Paginated(c, products, total, q.Limit, q.Page)
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRequest true "Product data"
// @Success 201 {object} response.APIResponse{data=Product}
// @Failure 400 {object} response.APIResponse
// @Router /products [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreate(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	product := &Product{
		Name:          req.Name,
		Slug:          slug.Make(req.Name),
		Description:   req.Description,
		AverageRating: req.AverageRating,
		Category:      req.Category,
		Section:       req.Section,
		ProductCost:   req.ProductCost,
		Photo:         req.Photo,
	}

	if err := h.repo.Create(c.Request.Context(), product); err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			response.BadRequest(c, "A product with this name already exists", "DUPLICATE_NAME")
			return
		}
		response.DatabaseError(c, "Failed to create product")
		return
	}

	response.Created(c, product, "")
}

// Seed godoc
// @Summary Batch-insert products
// @Description Insert many products; incomplete records are rejected and reported back
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []Candidate true "Candidate products"
// @Success 201 {object} response.APIResponse{data=BatchResult}
// @Failure 400 {object} response.APIResponse
// @Router /products/productseeder [post]
func (h *Handler) Seed(c *gin.Context) {
	var candidates []Candidate
	if err := c.ShouldBindJSON(&candidates); err != nil {
		response.BindJSONError(c, err)
		return
	}

	products, rejected := splitCandidates(candidates)
	if len(products) == 0 {
		response.Success(c, BatchResult{Rejected: rejected}, "No complete products to add")
		return
	}

	inserted, err := h.repo.InsertMany(c.Request.Context(), products)
	if err != nil {
		response.BadRequest(c, "Error when uploading many products", "DATABASE_ERROR")
		return
	}

	response.Created(c, BatchResult{Inserted: inserted, Rejected: rejected}, "Products added to the database")
}

// Update godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body UpdateRequest true "Fields to update"
// @Success 200 {object} response.APIResponse{data=Product}
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /products/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdate(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
		updates["slug"] = slug.Make(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.AverageRating != nil {
		updates["averageRating"] = *req.AverageRating
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Section != nil {
		updates["section"] = *req.Section
	}
	if req.ProductCost != nil {
		updates["productCost"] = *req.ProductCost
	}
	if req.Photo != nil {
		updates["photo"] = *req.Photo
	}

	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, updates); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrInvalidID):
			response.NotFound(c, "Product does not exist")
		case errors.Is(err, errs.ErrDuplicate):
			response.BadRequest(c, "A product with this name already exists", "DUPLICATE_NAME")
		default:
			response.DatabaseError(c, "Failed to update product")
		}
		return
	}

	product, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		response.DatabaseError(c, "Failed to retrieve updated product")
		return
	}

	response.Success(c, product, "Product updated")
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /products/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrInvalidID) {
			response.BadRequest(c, "Product does not exist", "NOT_FOUND")
			return
		}
		response.DatabaseError(c, "Failed to delete product")
		return
	}

	response.Success(c, nil, "Product deleted")
}

// BulkDelete godoc
// @Summary Bulk delete products
// @Description Delete every product matching the query filter
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /products [delete]
func (h *Handler) BulkDelete(c *gin.Context) {
	q, err := query.Translate(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, err.Error(), "MALFORMED_FILTER")
		return
	}

	deleted, err := h.repo.DeleteByFilter(c.Request.Context(), q.Filter)
	if err != nil {
		response.BadRequest(c, "Error when removing products", "DATABASE_ERROR")
		return
	}

	response.Success(c, gin.H{"deleted": deleted}, "Products removed")
}

// Get godoc
// @Summary Fetch one product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.APIResponse{data=Product}
// @Failure 400 {object} response.APIResponse
// @Router /products/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	product, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Product does not exist", "NOT_FOUND")
		return
	}

	response.Success(c, product, "")
}
