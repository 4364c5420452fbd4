package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/khushikhattar/ShortSecure/internal/identity"
	"github.com/khushikhattar/ShortSecure/internal/middleware"
	"go.uber.org/zap"
)

// UserHandler handles authenticated profile management endpoints.
type UserHandler struct {
	directory *identity.Directory
	urls      *URLHandler
	logger    *zap.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(directory *identity.Directory, urls *URLHandler, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		directory: directory,
		urls:      urls,
		logger:    logger,
	}
}

func (h *UserHandler) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("not authenticated")
	}

	update := identity.ProfileUpdate{}
	if req.Body.NewName != "" {
		update.Name = &req.Body.NewName
	}

	if req.Body.NewUsername != "" {
		update.Username = &req.Body.NewUsername
	}

	if req.Body.NewEmail != "" {
		update.Email = &req.Body.NewEmail
	}

	if req.Body.NewAvatar != "" {
		update.Avatar = &req.Body.NewAvatar
	}

	if update.Empty() {
		return nil, huma.Error400BadRequest("no fields provided to update")
	}

	account, err := h.directory.UpdateProfile(ctx, accountID, update)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrAlreadyExists):
			return nil, huma.Error409Conflict("username or email already exists")
		case errors.Is(err, identity.ErrNotFound):
			return nil, huma.Error404NotFound("user not found")
		}

		h.logger.Error("failed to update profile", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to update user")
	}

	resp := &UpdateProfileResponse{}
	resp.Body.Message = "user updated successfully"
	resp.Body.User = accountPayload(account)

	return resp, nil
}

func (h *UserHandler) UpdatePassword(ctx context.Context, req *UpdatePasswordRequest) (*MessageResponse, error) {
	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("not authenticated")
	}

	err := h.directory.ChangePassword(ctx, accountID, req.Body.OldPassword, req.Body.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidCredentials):
			return nil, huma.Error400BadRequest("invalid current password")
		case errors.Is(err, identity.ErrNotFound):
			return nil, huma.Error404NotFound("user not found")
		}

		h.logger.Error("failed to change password", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to change password")
	}

	resp := &MessageResponse{}
	resp.Body.Message = "password changed successfully"

	return resp, nil
}

// ListURLs returns the caller's aliases; same behavior as GET /url/my.
func (h *UserHandler) ListURLs(ctx context.Context, req *struct{}) (*ListURLsResponse, error) {
	return h.urls.My(ctx, req)
}
