package users

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/xyz-asif/modacart/internal/config"
	"github.com/xyz-asif/modacart/internal/pkg/response"
	"github.com/xyz-asif/modacart/internal/pkg/token"
	errs "github.com/xyz-asif/modacart/pkg/errors"
)

type Handler struct {
	repo *Repository
	cfg  *config.Config
}

func NewHandler(repo *Repository, cfg *config.Config) *Handler {
	return &Handler{repo: repo, cfg: cfg}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account and issue an auth token as cookie and body
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User registration data"
// @Success 201 {object} response.APIResponse{data=TokenResponse}
// @Failure 400 {object} response.APIResponse
// @Router /user/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Please provide all fields", "INVALID_JSON")
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	user := &User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: string(hashed),
	}

	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			response.BadRequest(c, "Email already registered", "DUPLICATE_EMAIL")
			return
		}
		response.DatabaseError(c, "Failed to create user")
		return
	}

	h.sendTokenResponse(c, user, 201)
}

// Login godoc
// @Summary Login user
// @Description Authenticate with email and password
// @Tags user
// @Accept json
// @Produce json
// @Param request body LoginRequest true "User credentials"
// @Success 201 {object} response.APIResponse{data=TokenResponse}
// @Failure 401 {object} response.APIResponse
// @Router /user/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Please provide an email and the password", "INVALID_JSON")
		return
	}

	if err := ValidateLogin(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	user, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.DatabaseError(c, "Failed to look up user")
		return
	}
	if user == nil {
		response.Unauthorized(c, "Invalid credentials", "INVALID_CREDENTIALS")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid credentials", "INVALID_CREDENTIALS")
		return
	}

	h.sendTokenResponse(c, user, 201)
}

// Me godoc
// @Summary Current user profile
// @Description Profile of the authenticated user, password masked
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=User}
// @Failure 401 {object} response.APIResponse
// @Router /user/me [get]
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.repo.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.DatabaseError(c, "Failed to fetch user")
		return
	}

	response.Success(c, user.Masked(), "")
}

// UpdateDetails godoc
// @Summary Update profile details
// @Description Update name and email of the authenticated user
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /user/updatedetails [patch]
func (h *Handler) UpdateDetails(c *gin.Context) {
	userID := c.GetString("userID")

	var req UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateDetails(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	updates := bson.M{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}

	if err := h.repo.UpdateDetails(c.Request.Context(), userID, updates); err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicate):
			response.BadRequest(c, "Email already registered", "DUPLICATE_EMAIL")
		case errors.Is(err, errs.ErrNotFound):
			response.NotFound(c, "User not found")
		default:
			response.DatabaseError(c, "Failed to update user")
		}
		return
	}

	response.Success(c, nil, "Details updated")
}

// sendTokenResponse issues the JWT as both an HTTP-only cookie and the
// response body.
func (h *Handler) sendTokenResponse(c *gin.Context, user *User, statusCode int) {
	signed, err := token.Generate(user.ID.Hex(), user.Role, h.cfg)
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	token.SetCookie(c, signed, h.cfg)

	c.JSON(statusCode, response.APIResponse{
		Success:    true,
		StatusCode: statusCode,
		Data:       TokenResponse{Token: signed},
	})
}
