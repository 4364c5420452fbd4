package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/khushikhattar/ShortSecure/internal/identity"
	"github.com/khushikhattar/ShortSecure/internal/middleware"
	"go.uber.org/zap"
)

// AuthHandler handles registration and the session lifecycle endpoints.
type AuthHandler struct {
	directory *identity.Directory
	sessions  *identity.SessionService
	logger    *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(directory *identity.Directory, sessions *identity.SessionService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		directory: directory,
		sessions:  sessions,
		logger:    logger,
	}
}

func accountPayload(account *identity.Account) AccountPayload {
	return AccountPayload{
		ID:       account.ID.String(),
		Name:     account.Name,
		Username: account.Username,
		Email:    account.Email,
		Avatar:   account.Avatar,
	}
}

func (h *AuthHandler) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	if req.Body.Password != req.Body.ConfirmPassword {
		return nil, huma.Error422UnprocessableEntity("validation errors", &huma.ErrorDetail{
			Location: "body.confirmpassword",
			Message:  "passwords don't match",
		})
	}

	params := identity.RegisterParams{
		Name:     req.Body.Name,
		Email:    req.Body.Email,
		Address:  req.Body.Address,
		Username: req.Body.Username,
		Password: req.Body.Password,
	}
	if req.Body.Avatar != "" {
		params.Avatar = &req.Body.Avatar
	}

	account, err := h.directory.Register(ctx, params)
	if err != nil {
		if errors.Is(err, identity.ErrAlreadyExists) {
			return nil, huma.Error409Conflict("user with email or username already exists")
		}

		h.logger.Error("failed to register account", zap.Error(err))

		return nil, huma.Error500InternalServerError("error in creating the user")
	}

	resp := &RegisterResponse{}
	resp.Body.Message = "user registered successfully"
	resp.Body.User = accountPayload(account)

	return resp, nil
}

func (h *AuthHandler) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	identifier := req.Body.Username
	if identifier == "" {
		identifier = req.Body.Email
	}

	if identifier == "" {
		return nil, huma.Error422UnprocessableEntity("validation errors", &huma.ErrorDetail{
			Location: "body",
			Message:  "either username or email is required",
		})
	}

	pair, account, err := h.sessions.Login(ctx, identifier, req.Body.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("invalid credentials")
		}

		h.logger.Error("login failed", zap.Error(err))

		return nil, huma.Error500InternalServerError("login failed")
	}

	resp := &LoginResponse{SetCookies: credentialCookies(pair)}
	resp.Body.Message = "user logged in successfully"
	resp.Body.User = accountPayload(account)
	resp.Body.Token = pair.AccessToken

	return resp, nil
}

func (h *AuthHandler) Refresh(ctx context.Context, req *RefreshRequest) (*RefreshResponse, error) {
	if req.RefreshToken == "" {
		return nil, huma.Error401Unauthorized("no refresh token provided")
	}

	pair, err := h.sessions.Refresh(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidToken) {
			return nil, huma.Error403Forbidden("refresh token expired or invalid")
		}

		h.logger.Error("token refresh failed", zap.Error(err))

		return nil, huma.Error500InternalServerError("token refresh failed")
	}

	resp := &RefreshResponse{SetCookies: credentialCookies(pair)}
	resp.Body.Message = "token refreshed"
	resp.Body.AccessToken = pair.AccessToken

	return resp, nil
}

func (h *AuthHandler) Logout(ctx context.Context, req *LogoutRequest) (*LogoutResponse, error) {
	resp := &LogoutResponse{SetCookies: clearedCredentialCookies()}

	if req.RefreshToken == "" {
		resp.Body.Message = "no refresh token found, cookies cleared"

		return resp, nil
	}

	if err := h.sessions.Logout(ctx, req.RefreshToken); err != nil {
		h.logger.Error("logout failed", zap.Error(err))

		return nil, huma.Error500InternalServerError("logout failed")
	}

	resp.Body.Message = "logged out from current device"

	return resp, nil
}

func (h *AuthHandler) LogoutAll(ctx context.Context, req *LogoutRequest) (*LogoutResponse, error) {
	resp := &LogoutResponse{SetCookies: clearedCredentialCookies()}

	if req.RefreshToken == "" {
		resp.Body.Message = "no refresh token found, cookies cleared"

		return resp, nil
	}

	err := h.sessions.LogoutAll(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidToken) {
			resp.Body.Message = "session not found, cookies cleared"

			return resp, nil
		}

		h.logger.Error("logout-all failed", zap.Error(err))

		return nil, huma.Error500InternalServerError("logout failed")
	}

	resp.Body.Message = "logged out from all devices"

	return resp, nil
}

func (h *AuthHandler) Me(ctx context.Context, _ *struct{}) (*MeResponse, error) {
	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("not authenticated")
	}

	account, err := h.directory.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return nil, huma.Error401Unauthorized("invalid token or session expired")
		}

		h.logger.Error("failed to load account", zap.Error(err))

		return nil, huma.Error500InternalServerError("server error")
	}

	resp := &MeResponse{}
	resp.Body.User = accountPayload(account)

	return resp, nil
}
