package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/generation"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/models"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/validator"
	"github.com/povarna/generative-ai-agents/jewelry-agent/web"
	"github.com/rs/zerolog"
)

const (
	Version = "1.0.0"

	msgMissingPrompt = "Missing 'prompt' in request"
	msgInvalidBody   = "Invalid JSON body"
	msgFailed2D      = "Failed to generate 2D image"
)

type Handler struct {
	service   *generation.Service
	validator *validator.DesignValidator
	keys      models.KeyStatus
	home      *web.Homepage
	logger    *zerolog.Logger
}

func NewHandler(
	service *generation.Service,
	validator *validator.DesignValidator,
	keys models.KeyStatus,
	home *web.Homepage,
	logger *zerolog.Logger,
) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
		keys:      keys,
		home:      home,
		logger:    logger,
	}
}

// POST /generate-2d
func (h *Handler) Generate2D(req *restful.Request, resp *restful.Response) {
	var genRequest models.GenerationRequest
	if err := req.ReadEntity(&genRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.WriteError(resp, http.StatusBadRequest, msgInvalidBody)
		return
	}

	result, err := h.service.Generate2D(req.Request.Context(), genRequest)
	if err != nil {
		h.write2DError(resp, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /generate-3d
func (h *Handler) Generate3D(req *restful.Request, resp *restful.Response) {
	var genRequest models.GenerationRequest
	if err := req.ReadEntity(&genRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.WriteError(resp, http.StatusBadRequest, msgInvalidBody)
		return
	}

	result, err := h.service.Generate3D(req.Request.Context(), genRequest)
	if err != nil {
		h.write3DError(resp, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// The upstream JSON body is relayed as-is. A body that isn't JSON is
// reported as a generic failure.
func (h *Handler) write2DError(resp *restful.Response, err error) {
	var blocked *generation.BlockedPromptError
	var upstream *generation.UpstreamError

	switch {
	case errors.Is(err, generation.ErrEmptyPrompt):
		middleware.WriteError(resp, http.StatusBadRequest, msgMissingPrompt)
	case errors.As(err, &blocked):
		middleware.WriteError(resp, http.StatusBadRequest, blocked.Reason)
	case errors.As(err, &upstream) && json.Valid(upstream.Body):
		h.logger.Error().
			Int("status", upstream.StatusCode).
			RawJSON("body", upstream.Body).
			Msg("Stability AI Error")
		resp.Header().Set("Content-Type", restful.MIME_JSON)
		resp.WriteHeader(upstream.StatusCode)
		if _, werr := resp.Write(upstream.Body); werr != nil {
			h.logger.Warn().Err(werr).Msg("Failed to relay upstream body")
		}
	default:
		h.logger.Error().Err(err).Msg("2D Generation Error")
		middleware.WriteError(resp, http.StatusInternalServerError, msgFailed2D)
	}
}

func (h *Handler) write3DError(resp *restful.Response, err error) {
	var blocked *generation.BlockedPromptError
	var upstream *generation.UpstreamError

	switch {
	case errors.Is(err, generation.ErrEmptyPrompt):
		middleware.WriteError(resp, http.StatusBadRequest, msgMissingPrompt)
	case errors.As(err, &blocked):
		middleware.WriteError(resp, http.StatusBadRequest, blocked.Reason)
	case errors.As(err, &upstream):
		h.logger.Error().
			Int("status", upstream.StatusCode).
			Str("body", string(upstream.Body)).
			Msg("Meshy API Error")
		middleware.WriteError(resp, upstream.StatusCode, string(upstream.Body))
	default:
		h.logger.Error().Err(err).Msg("3D Generation Error")
		middleware.WriteError(resp, http.StatusInternalServerError, err.Error())
	}
}

// ServiceError renders router failures such as 415 or 404 in the JSON error
// envelope. The generation routes keep their own failure contract.
func (h *Handler) ServiceError(serviceErr restful.ServiceError, req *restful.Request, resp *restful.Response) {
	method, path := req.Request.Method, req.Request.URL.Path

	h.logger.Warn().
		Int("status", serviceErr.Code).
		Str("method", method).
		Str("path", path).
		Str("reason", serviceErr.Message).
		Msg("Request rejected by router")

	var err error
	switch {
	case method == http.MethodPost && path == "/generate-2d":
		err = middleware.WriteRawError(resp, http.StatusInternalServerError, middleware.ErrorResponse{Error: msgFailed2D})
	case method == http.MethodPost && path == "/generate-3d":
		err = middleware.WriteRawError(resp, http.StatusInternalServerError, middleware.ErrorResponse{Error: serviceErr.Message})
	default:
		err = middleware.WriteRawError(resp, serviceErr.Code, middleware.ErrorResponse{Error: serviceErr.Message, Code: serviceErr.Code})
	}
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to write error response")
	}
}

// GET /verify-keys
func (h *Handler) VerifyKeys(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, h.keys)
}

// GET /
func (h *Handler) Home(req *restful.Request, resp *restful.Response) {
	resp.Header().Set("Content-Type", "text/html; charset=utf-8")
	resp.WriteHeader(http.StatusOK)
	if err := h.home.Render(resp); err != nil {
		h.logger.Error().Err(err).Msg("Failed to render homepage")
	}
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// GET /api/v1/constraints
func (h *Handler) ListConstraints(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, ConstraintsResponse{
		Categories: h.validator.Catalog().All(),
	})
}

// GET /api/v1/constraints/{category}
func (h *Handler) GetConstraints(req *restful.Request, resp *restful.Response) {
	category := req.PathParameter("category")

	set, ok := h.validator.Catalog().Lookup(category)
	if !ok {
		middleware.HandleError(resp, fmt.Errorf("%w: %q", validator.ErrUnknownCategory, category), http.StatusNotFound)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, CategoryConstraintsResponse{
		Category:    category,
		Constraints: set,
	})
}

// POST /api/v1/validate
func (h *Handler) Validate(req *restful.Request, resp *restful.Response) {
	var validateRequest ValidateRequest
	if err := req.ReadEntity(&validateRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, middleware.ErrInvalidBody, http.StatusBadRequest)
		return
	}

	if err := validateRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	var overrides models.DesignConstraints
	if validateRequest.Constraints != nil {
		overrides = *validateRequest.Constraints
	}
	result, err := h.validator.ValidateOverride(validateRequest.Category, validateRequest.Attributes, overrides)

	switch {
	case errors.Is(err, validator.ErrMissingField):
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	case errors.Is(err, validator.ErrUnknownCategory):
		middleware.HandleError(resp, err, http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error().Err(err).Msg("Validation failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Str("category", validateRequest.Category).
		Bool("valid", result.Valid).
		Int("errors", len(result.Errors)).
		Msg("Design validated")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}
