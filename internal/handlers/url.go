package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/khushikhattar/ShortSecure/internal/middleware"
	"github.com/khushikhattar/ShortSecure/internal/shortener"
	"go.uber.org/zap"
)

// URLHandler handles alias creation, resolution, and statistics.
type URLHandler struct {
	registry *shortener.Service
	logger   *zap.Logger
}

// NewURLHandler creates a new URL handler.
func NewURLHandler(registry *shortener.Service, logger *zap.Logger) *URLHandler {
	return &URLHandler{
		registry: registry,
		logger:   logger,
	}
}

func urlPayload(url *shortener.ShortURL) URLPayload {
	return URLPayload{
		ShortURL:  string(url.Code),
		LongURL:   url.LongURL,
		Clicks:    url.Clicks,
		CreatedAt: url.CreatedAt,
	}
}

func (h *URLHandler) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	params := shortener.CreateParams{
		LongURL: req.Body.LongURL,
		Slug:    req.Body.Slug,
	}

	if accountID, ok := middleware.AccountIDFromContext(ctx); ok {
		params.OwnerID = &accountID
	}

	shortURL, err := h.registry.Create(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrInvalidURL):
			return nil, huma.Error422UnprocessableEntity("validation errors", &huma.ErrorDetail{
				Location: "body.long_url",
				Message:  "invalid URL format",
			})
		case errors.Is(err, shortener.ErrInvalidSlug):
			return nil, huma.Error422UnprocessableEntity("validation errors", &huma.ErrorDetail{
				Location: "body.slug",
				Message:  "invalid slug format",
			})
		case errors.Is(err, shortener.ErrAliasTaken):
			return nil, huma.Error409Conflict("alias already in use")
		case errors.Is(err, shortener.ErrExhausted):
			h.logger.Error("alias generation exhausted", zap.Error(err))

			return nil, huma.Error500InternalServerError("could not allocate a unique alias")
		}

		h.logger.Error("failed to create short url", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to save url")
	}

	resp := &ShortenResponse{}
	resp.Body.Message = "short URL created"
	resp.Body.ShortURL = string(shortURL.Code)
	resp.Body.LongURL = shortURL.LongURL
	resp.Body.Clicks = shortURL.Clicks

	return resp, nil
}

func (h *URLHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	longURL, err := h.registry.Resolve(ctx, shortener.Code(req.ShortURL))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short url not found")
		}

		h.logger.Error("failed to resolve short url", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to resolve url")
	}

	resp := &RedirectResponse{Status: http.StatusFound}
	resp.Headers.Location = longURL

	return resp, nil
}

func (h *URLHandler) Stats(ctx context.Context, req *StatsRequest) (*StatsResponse, error) {
	shortURL, err := h.registry.Stats(ctx, shortener.Code(req.Slug))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("short url not found")
		}

		h.logger.Error("failed to load short url stats", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to load stats")
	}

	return &StatsResponse{Body: urlPayload(shortURL)}, nil
}

func (h *URLHandler) My(ctx context.Context, _ *struct{}) (*ListURLsResponse, error) {
	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("not authenticated")
	}

	urls, err := h.registry.ListOwnedBy(ctx, accountID)
	if err != nil {
		h.logger.Error("failed to list urls", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to list urls")
	}

	resp := &ListURLsResponse{}
	resp.Body.URLs = make([]URLPayload, 0, len(urls))

	for i := range urls {
		resp.Body.URLs = append(resp.Body.URLs, urlPayload(&urls[i]))
	}

	return resp, nil
}
