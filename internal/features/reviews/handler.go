package reviews

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/modacart/internal/features/users"
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
// @Summary List reviews
// @Description List reviews with filter, select and pagination query params
// @Tags reviews
// @Produce json
// @Param select query string false "Comma-separated projection fields"
// @Success 200 {object} response.APIResponse{data=response.ListData}
// @Failure 400 {object} response.APIResponse
// @Router /reviews [get]
func (h *Handler) List(c *gin.Context) {
	count, err := h.repo.Count(c.Request.Context())
	if err != nil {
		response.BadRequest(c, "Error when fetching all reviews", "DATABASE_ERROR")
		return
	}
	if count == 0 {
		response.Success(c, nil, "There are no reviews to fetch")
		return
	}

	q, err := query.Translate(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, err.Error(), "MALFORMED_FILTER")
		return
	}

	reviews, total, err := h.repo.List(c.Request.Context(), q)
	if err != nil {
		response.BadRequest(c, "Error when fetching all reviews", "DATABASE_ERROR")
		return
	}

	response.Paginated(c, reviews, total, q.Limit, q.Page)
}

// Create godoc
// @Summary Create reviews
// @Description Create a single review, or, for an admin posting an array of at least two items, a batch. The owner is always the authenticated user.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRequest true "Review data (or an array for admin batches)"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /reviews [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("userID")
	role := c.GetString("role")

	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		response.Unauthorized(c, "Not authorized to access this route")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	// An array payload is an admin batch; everyone else creates one at a time
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '[' {
		h.createBatch(c, trimmed, owner, role)
		return
	}

	var req CreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}
	if req.Product == "" || req.Title == "" || req.Comment == "" {
		response.ValidationFailed(c, "please add product, title and comment")
		return
	}
	if err := ValidateCreate(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	productID, _ := primitive.ObjectIDFromHex(req.Product)
	review := &Review{
		User:           owner,
		Product:        productID,
		Rating:         req.Rating,
		Title:          req.Title,
		Comment:        req.Comment,
		ProfilePicture: req.ProfilePicture,
	}

	if err := h.repo.Create(c.Request.Context(), review); err != nil {
		response.DatabaseError(c, "Failed to create review")
		return
	}

	response.Created(c, review, "")
}

func (h *Handler) createBatch(c *gin.Context, body []byte, owner primitive.ObjectID, role string) {
	if role != users.RoleAdmin {
		response.Forbidden(c, "Only admins can batch-create reviews", "FORBIDDEN")
		return
	}

	var candidates []Candidate
	if err := json.Unmarshal(body, &candidates); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}
	if len(candidates) < 2 {
		response.BadRequest(c, "A batch needs at least 2 reviews", "BATCH_TOO_SMALL")
		return
	}

	inserts, rejected := splitCandidates(candidates, owner)

	inserted := 0
	if len(inserts) > 0 {
		var err error
		inserted, err = h.repo.InsertMany(c.Request.Context(), inserts)
		if err != nil {
			response.DatabaseError(c, "Failed to create reviews")
			return
		}
	}

	response.Created(c, BatchResult{Inserted: inserted, Rejected: rejected}, "Reviews added to the database")
}

// Update godoc
// @Summary Update a review
// @Description Update a review; only the owner or an admin may do this. Ownership and creation time cannot be changed.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body UpdateRequest true "Fields to update"
// @Success 200 {object} response.APIResponse{data=Review}
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /reviews/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	userID := c.GetString("userID")
	role := c.GetString("role")

	review, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrInvalidID) {
			response.BadRequest(c, "Review does not exist", "NOT_FOUND")
			return
		}
		response.DatabaseError(c, "Failed to fetch review")
		return
	}

	if !canModify(review, userID, role) {
		response.Forbidden(c, "User "+userID+" is not authorized to update this review", "FORBIDDEN")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	updates, err := buildUpdate(&req)
	if err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, updates); err != nil {
		response.DatabaseError(c, "Failed to update review")
		return
	}

	updated, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		response.DatabaseError(c, "Failed to retrieve updated review")
		return
	}

	response.Success(c, updated, "Review updated")
}

// Delete godoc
// @Summary Delete a review
// @Description Delete a review; only the owner or an admin may do this
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /reviews/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	userID := c.GetString("userID")
	role := c.GetString("role")

	review, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrInvalidID) {
			response.BadRequest(c, "Review does not exist", "NOT_FOUND")
			return
		}
		response.DatabaseError(c, "Failed to fetch review")
		return
	}

	if !canModify(review, userID, role) {
		response.Forbidden(c, "User "+userID+" is not authorized to delete this review", "FORBIDDEN")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.DatabaseError(c, "Failed to delete review")
		return
	}

	response.Success(c, nil, "Review deleted")
}

// BulkDelete godoc
// @Summary Bulk delete reviews
// @Description Delete every review matching the query filter
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /reviews [delete]
func (h *Handler) BulkDelete(c *gin.Context) {
	q, err := query.Translate(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, err.Error(), "MALFORMED_FILTER")
		return
	}

	deleted, err := h.repo.DeleteByFilter(c.Request.Context(), q.Filter)
	if err != nil {
		response.BadRequest(c, "Error when removing reviews", "DATABASE_ERROR")
		return
	}

	response.Success(c, gin.H{"deleted": deleted}, "Reviews removed")
}

// Get godoc
// @Summary Fetch one review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.APIResponse{data=Review}
// @Failure 400 {object} response.APIResponse
// @Router /reviews/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	review, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Review does not exist", "NOT_FOUND")
		return
	}

	response.Success(c, review, "")
}
