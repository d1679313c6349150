package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	userusecases "sips/internal/application/user/usecases"
	"sips/internal/infrastructure/auth"
	"sips/internal/interfaces/dto"
	"sips/internal/shared/config"
	"sips/internal/shared/logger"
	"sips/internal/shared/utils"
)

const (
	oauthStateCookie    = "oauth_state"
	oauthVerifierCookie = "oauth_verifier"
	oauthCookieMaxAge   = 600
)

// AuthHandler implements the Google OAuth sign-in flow. The PKCE verifier and
// CSRF state travel in short-lived HttpOnly cookies between the redirect and
// the callback.
type AuthHandler struct {
	oauthClient    *auth.GoogleOAuthClient
	signInUseCase  *userusecases.SignInUseCase
	profileUseCase *userusecases.GetProfileUseCase
	jwtService     *auth.JWTService
	cookieConfig   config.CookieConfig
	logger         logger.Interface
}

func NewAuthHandler(
	oauthClient *auth.GoogleOAuthClient,
	signInUseCase *userusecases.SignInUseCase,
	profileUseCase *userusecases.GetProfileUseCase,
	jwtService *auth.JWTService,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		oauthClient:    oauthClient,
		signInUseCase:  signInUseCase,
		profileUseCase: profileUseCase,
		jwtService:     jwtService,
		cookieConfig:   cookieConfig,
		logger:         logger,
	}
}

// GoogleLogin handles GET /auth/oauth/google. It redirects the browser to
// Google's consent page.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state, err := generateState()
	if err != nil {
		h.logger.Errorw("failed to generate oauth state", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to start sign-in")
		return
	}

	authURL, codeVerifier, err := h.oauthClient.GetAuthURL(state)
	if err != nil {
		h.logger.Errorw("failed to build auth url", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to start sign-in")
		return
	}

	h.setFlowCookie(c, oauthStateCookie, state)
	h.setFlowCookie(c, oauthVerifierCookie, codeVerifier)

	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// GoogleCallback handles GET /auth/oauth/google/callback. It exchanges the
// authorization code, signs the user in, and sets the session cookie.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "sign-in was cancelled or denied")
		return
	}

	state := c.Query("state")
	expectedState := utils.GetTokenFromCookie(c, oauthStateCookie)
	if state == "" || state != expectedState {
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid oauth state")
		return
	}

	codeVerifier := utils.GetTokenFromCookie(c, oauthVerifierCookie)
	h.clearFlowCookie(c, oauthStateCookie)
	h.clearFlowCookie(c, oauthVerifierCookie)

	code := c.Query("code")
	if code == "" || codeVerifier == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing authorization code")
		return
	}

	ctx := c.Request.Context()

	accessToken, err := h.oauthClient.ExchangeCode(ctx, code, codeVerifier)
	if err != nil {
		h.logger.Warnw("failed to exchange authorization code", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "failed to complete sign-in")
		return
	}

	info, err := h.oauthClient.GetUserInfo(ctx, accessToken)
	if err != nil {
		h.logger.Warnw("failed to fetch user info", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "failed to complete sign-in")
		return
	}

	result, err := h.signInUseCase.Execute(ctx, userusecases.SignInCommand{
		OpenID:      fmt.Sprintf("%s:%s", info.Provider, info.ProviderID),
		Name:        info.Name,
		Email:       info.Email,
		LoginMethod: info.Provider,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, result.SessionToken, h.jwtService.SessionMaxAge())

	utils.SuccessResponse(c, http.StatusOK, "signed in successfully", gin.H{
		"user":        dto.NewUserResponse(result.User),
		"is_new_user": result.IsNewUser,
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	u, err := h.profileUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewUserResponse(u))
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "signed out successfully", nil)
}

func (h *AuthHandler) setFlowCookie(c *gin.Context, name, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, oauthCookieMaxAge, "/", h.cookieConfig.Domain, h.cookieConfig.Secure, true)
}

func (h *AuthHandler) clearFlowCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", h.cookieConfig.Domain, h.cookieConfig.Secure, true)
}

func generateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
