package accounts

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/xyz-asif/modacart/internal/pkg/query"
	"github.com/xyz-asif/modacart/internal/pkg/response"
	errs "github.com/xyz-asif/modacart/pkg/errors"
)

// Retention windows for the purge endpoint. The scan window is wider than
// the delete window: records between 3 and 7 days old are only removed
// once something older than 7 days exists.
// TODO: align the scan and delete cutoffs (7d vs 3d).
const (
	purgeScanAge   = 7 * 24 * time.Hour
	purgeDeleteAge = 3 * 24 * time.Hour
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List accounts
// @Description List scraped accounts with filter, select and pagination query params
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param select query string false "Comma-separated projection fields"
// @Success 200 {object} response.APIResponse{data=response.ListData}
// @Failure 400 {object} response.APIResponse
// @Router /accounts [get]
func (h *Handler) List(c *gin.Context) {
	count, err := h.repo.Count(c.Request.Context())
	if err != nil {
		response.BadRequest(c, "Error when fetching all accounts", "DATABASE_ERROR")
		return
	}
	if count == 0 {
		response.Success(c, nil, "There are no accounts to fetch")
		return
	}

	q, err := query.Translate(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, err.Error(), "MALFORMED_FILTER")
		return
	}

	accounts, total, err := h.repo.List(c.Request.Context(), q)
	if err != nil {
		response.BadRequest(c, "Error when fetching all accounts", "DATABASE_ERROR")
		return
	}

	response.Paginated(c, accounts, total, q.Limit, q.Page)
}

// BatchCreate godoc
// @Summary Batch-insert accounts
// @Description Insert many scraped accounts, skipping incomplete records and existing usernames
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body []Candidate true "Candidate accounts"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /accounts [post]
func (h *Handler) BatchCreate(c *gin.Context) {
	var candidates []Candidate
	if err := c.ShouldBindJSON(&candidates); err != nil {
		response.BindJSONError(c, err)
		return
	}

	accounts := normalizeCandidates(candidates)
	if len(accounts) == 0 {
		response.Success(c, nil, "No complete records to add")
		return
	}

	usernames := make([]string, len(accounts))
	for i, account := range accounts {
		usernames[i] = account.Username
	}

	existing, err := h.repo.ExistingUsernames(c.Request.Context(), usernames)
	if err != nil {
		response.BadRequest(c, "Error when uploading many accounts", "DATABASE_ERROR")
		return
	}

	fresh := dropExisting(accounts, existing)
	if len(fresh) == 0 {
		response.Success(c, nil, "No new records to add")
		return
	}

	inserted, err := h.repo.InsertMany(c.Request.Context(), fresh)
	if err != nil {
		response.BadRequest(c, "Error when uploading many accounts", "DATABASE_ERROR")
		return
	}

	response.Created(c, gin.H{"inserted": inserted}, "Many records added to the database")
}

// Update godoc
// @Summary Update an account
// @Description Partially update an account; a stored removeItem flag deletes it instead
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /accounts/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	account, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrInvalidID) {
			response.BadRequest(c, "Account does not exist", "NOT_FOUND")
			return
		}
		response.BadRequest(c, "Error when updating an account", "DATABASE_ERROR")
		return
	}

	// The soft flag wins over the submitted update
	if account.RemoveItem {
		if err := h.repo.Delete(c.Request.Context(), id); err != nil {
			response.BadRequest(c, "Error when updating an account", "DATABASE_ERROR")
			return
		}
		response.Success(c, nil, "Account Deleted")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	updates := bson.M{}
	if req.Followers != nil {
		updates["followers"] = *req.Followers
	}
	if req.Following != nil {
		updates["following"] = *req.Following
	}
	if req.ProfilePicture != nil {
		updates["profilePicture"] = *req.ProfilePicture
	}
	if req.AccountsOrigin != nil {
		updates["accountsOrigin"] = *req.AccountsOrigin
	}
	if req.RemoveItem != nil {
		updates["removeItem"] = *req.RemoveItem
	}
	if req.KeepItem != nil {
		updates["keepItem"] = *req.KeepItem
	}
	if req.ImageURL != nil {
		updates["imageUrl"] = req.ImageURL
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}

	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, updates); err != nil {
		response.BadRequest(c, "Error when updating an account", "DATABASE_ERROR")
		return
	}

	response.Success(c, nil, "Account updated")
}

// KeptNames godoc
// @Summary Usernames of kept accounts
// @Description List the usernames of all accounts flagged keepItem
// @Tags accounts
// @Produce json
// @Success 200 {object} response.APIResponse{data=[]string}
// @Router /accounts/keepAccounts/names [get]
func (h *Handler) KeptNames(c *gin.Context) {
	names, err := h.repo.KeptUsernames(c.Request.Context())
	if err != nil {
		response.BadRequest(c, "Error when fetching names kept accounts", "DATABASE_ERROR")
		return
	}

	response.Success(c, names, "")
}

// PurgeOld godoc
// @Summary Purge old accounts
// @Description Delete stale scraped accounts past the retention window
// @Tags accounts
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /accounts/oldRecords [delete]
func (h *Handler) PurgeOld(c *gin.Context) {
	stale, err := h.repo.CountOlderThan(c.Request.Context(), time.Now().Add(-purgeScanAge))
	if err != nil {
		response.BadRequest(c, "Error when removing old accounts", "DATABASE_ERROR")
		return
	}

	if stale == 0 {
		response.Success(c, nil, "There are no old accounts")
		return
	}

	if _, err := h.repo.DeleteOlderThan(c.Request.Context(), time.Now().Add(-purgeDeleteAge)); err != nil {
		response.BadRequest(c, "Error when removing old accounts", "DATABASE_ERROR")
		return
	}

	response.Success(c, nil, "All old accounts are removed")
}

// Delete godoc
// @Summary Delete one account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /accounts/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.BadRequest(c, "Failed to remove the account", "DATABASE_ERROR")
		return
	}

	response.Success(c, nil, "Account removed")
}

// BulkDelete godoc
// @Summary Bulk delete accounts
// @Description Delete every account matching the query filter
// @Tags accounts
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /accounts [delete]
func (h *Handler) BulkDelete(c *gin.Context) {
	q, err := query.Translate(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, err.Error(), "MALFORMED_FILTER")
		return
	}

	deleted, err := h.repo.DeleteByFilter(c.Request.Context(), q.Filter)
	if err != nil {
		response.BadRequest(c, "Error when removing accounts", "DATABASE_ERROR")
		return
	}

	response.Success(c, gin.H{"deleted": deleted}, "All removed accounts are removed")
}

// Get godoc
// @Summary Fetch one account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} response.APIResponse{data=Account}
// @Failure 400 {object} response.APIResponse
// @Router /accounts/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	account, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Failed to get a single account", "NOT_FOUND")
		return
	}

	response.Success(c, account, "")
}

// Preview godoc
// @Summary Preview a profile URL
// @Description Fetch page metadata for a scraped profile URL
// @Tags accounts
// @Produce json
// @Param url query string true "Profile URL"
// @Success 200 {object} response.APIResponse{data=ProfilePreview}
// @Failure 400 {object} response.APIResponse
// @Router /accounts/preview [get]
func (h *Handler) Preview(c *gin.Context) {
	targetURL := c.Query("url")
	if targetURL == "" {
		response.BadRequest(c, "URL is required", "MISSING_PARAM")
		return
	}

	preview, err := FetchProfilePreview(c.Request.Context(), targetURL)
	if err != nil {
		response.BadRequest(c, "Failed to fetch profile metadata", "SCRAPE_FAILED")
		return
	}

	response.Success(c, preview, "")
}
