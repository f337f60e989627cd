package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coingate/internal/auth"
	"github.com/guttosm/coingate/internal/domain/dto"
	"github.com/guttosm/coingate/internal/logger"
)

// AuthHandler provides the login endpoint that exchanges credentials for a
// bearer token.
type AuthHandler struct {
	credentials *auth.CredentialStore
	tokens      *auth.TokenService
}

// NewAuthHandler constructs an AuthHandler.
//
// Parameters:
//   - credentials (*auth.CredentialStore): The statically configured credential pair.
//   - tokens (*auth.TokenService): The token issuer.
//
// Returns:
//   - *AuthHandler: A handler ready to be registered with the router.
func NewAuthHandler(credentials *auth.CredentialStore, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{credentials: credentials, tokens: tokens}
}

// Login handles POST /auth/login requests.
//
// Login godoc
// @Summary      Login and get access token
// @Description  Authenticate with username and password to receive a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LoginRequest   true  "Login credentials"
// @Success      200      {object}  dto.TokenResponse  "Success"
// @Failure      401      {object}  dto.ErrorResponse  "Invalid credentials"
// @Failure      422      {object}  dto.ErrorResponse  "Malformed request body"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("Invalid request body", err))
		return
	}

	if !h.credentials.Authenticate(req.Username, req.Password) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Incorrect username or password", nil))
		return
	}

	token, err := h.tokens.Issue(req.Username)
	if err != nil {
		logger.L().Error().Err(err).Msg("token issuance failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
