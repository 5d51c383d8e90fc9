package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/feeding-service/internal/domain/dto"
	"github.com/guttosm/feeding-service/internal/domain/model"
	"github.com/guttosm/feeding-service/internal/i18n"
	"github.com/guttosm/feeding-service/internal/middleware"
	"github.com/guttosm/feeding-service/internal/repository"
	"github.com/guttosm/feeding-service/internal/service"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100

	defaultTargetsCacheSize = 1024
	defaultTargetsCacheTTL  = 30 * time.Second
)

// FeedingTargetsHandler serves the per-dog feeding target routes.
// Active targets are read through a small expiring LRU that is refreshed on save.
type FeedingTargetsHandler struct {
	calculator     service.FeedingCalculator
	targets        service.FeedingTargetsService
	loggingService service.LoggingService
	active         *expirable.LRU[string, repository.FeedingTarget]
}

// FeedingTargetsHandlerOption configures a FeedingTargetsHandler.
type FeedingTargetsHandlerOption func(*feedingTargetsHandlerConfig)

type feedingTargetsHandlerConfig struct {
	cacheSize int
	cacheTTL  time.Duration
}

// WithActiveTargetCache sizes the active target cache. A size below zero disables it.
func WithActiveTargetCache(size int, ttl time.Duration) FeedingTargetsHandlerOption {
	return func(cfg *feedingTargetsHandlerConfig) {
		if size != 0 {
			cfg.cacheSize = size
		}
		if ttl > 0 {
			cfg.cacheTTL = ttl
		}
	}
}

// NewFeedingTargetsHandler creates a FeedingTargetsHandler. loggingService may be nil.
// A nil targets service makes every route answer 503.
func NewFeedingTargetsHandler(
	calculator service.FeedingCalculator,
	targets service.FeedingTargetsService,
	loggingService service.LoggingService,
	opts ...FeedingTargetsHandlerOption,
) *FeedingTargetsHandler {
	cfg := feedingTargetsHandlerConfig{cacheSize: defaultTargetsCacheSize, cacheTTL: defaultTargetsCacheTTL}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &FeedingTargetsHandler{
		calculator:     calculator,
		targets:        targets,
		loggingService: loggingService,
	}
	if cfg.cacheSize > 0 {
		h.active = expirable.NewLRU[string, repository.FeedingTarget](cfg.cacheSize, nil, cfg.cacheTTL)
	}
	return h
}

// SaveFeedingTarget handles PUT /api/dogs/{dog_id}/feeding-target.
//
// @Summary      Save a dog's feeding target
// @Description  Computes a plan from the dog profile (as POST /api/feeding/plan does) and stores its kcal and gram values as the dog's new active target. The previous target is kept as history. Retries carrying the same Idempotency-Key replay the first response.
// @Tags         Feeding targets
// @Accept       json
// @Produce      json
// @Param        dog_id path string true "Dog ID"
// @Param        Idempotency-Key header string false "Key that makes retries of this save safe"
// @Param        request body dto.FeedingPlanRequest true "Dog profile"
// @Success      200 {object} dto.SuccessResponse{data=repository.FeedingTarget} "Saved target"
// @Failure      400 {object} dto.ErrorResponse "Invalid profile"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      503 {object} dto.ErrorResponse "Persistence not configured or unavailable"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Security     BearerAuth
// @Router       /api/dogs/{dog_id}/feeding-target [put]
func (h *FeedingTargetsHandler) SaveFeedingTarget(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.targets == nil {
		builder.ServiceError(service.ErrRepositoryNotConfigured)
		return
	}
	dogID := strings.TrimSpace(c.Param("dog_id"))

	req, err := BindJSON[dto.FeedingPlanRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	profile, err := req.ToProfile()
	if err != nil {
		builder.ServiceError(err)
		return
	}

	plan, err := h.calculator.Plan(profile, h.calculator.Now())
	if err != nil {
		builder.ServiceError(err)
		return
	}

	target, err := h.targets.Save(c.Request.Context(), dogID, profile, plan, middleware.GetUserID(c))
	if err != nil {
		middleware.AuditLogError(h.loggingService, c, model.ActionSaveFeedingTarget, "Feeding target not saved", err,
			map[string]interface{}{"dog_id": dogID})
		builder.ServiceError(err)
		return
	}

	if h.active != nil {
		h.active.Add(target.DogID, *target)
	}

	middleware.AuditLog(h.loggingService, c, model.ActionSaveFeedingTarget, "Feeding target saved", map[string]interface{}{
		"dog_id":        target.DogID,
		"version":       target.Version,
		"stage":         target.Stage,
		"kcal_per_day":  target.KcalPerDay,
		"grams_per_day": target.GramsPerDay,
	})
	builder.SuccessOK(target)
}

// GetFeedingTarget handles GET /api/dogs/{dog_id}/feeding-target.
//
// @Summary      Get a dog's active feeding target
// @Tags         Feeding targets
// @Produce      json
// @Param        dog_id path string true "Dog ID"
// @Success      200 {object} dto.SuccessResponse{data=repository.FeedingTarget} "Active target"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      404 {object} dto.ErrorResponse "Dog has no feeding target"
// @Failure      503 {object} dto.ErrorResponse "Persistence not configured or unavailable"
// @Security     BearerAuth
// @Router       /api/dogs/{dog_id}/feeding-target [get]
func (h *FeedingTargetsHandler) GetFeedingTarget(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.targets == nil {
		builder.ServiceError(service.ErrRepositoryNotConfigured)
		return
	}
	dogID := strings.TrimSpace(c.Param("dog_id"))

	if h.active != nil {
		if target, ok := h.active.Get(dogID); ok {
			builder.SuccessOK(target)
			return
		}
	}

	target, err := h.targets.GetActive(c.Request.Context(), dogID)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	if h.active != nil {
		h.active.Add(target.DogID, *target)
	}
	builder.SuccessOK(target)
}

// ListFeedingTargets handles GET /api/dogs/{dog_id}/feeding-target/history.
//
// @Summary      List a dog's feeding targets
// @Description  Returns saved targets newest first.
// @Tags         Feeding targets
// @Produce      json
// @Param        dog_id path string true "Dog ID"
// @Param        limit query int false "Maximum number of targets (1-100, default 10)"
// @Success      200 {object} dto.SuccessResponse{data=[]repository.FeedingTarget} "Targets"
// @Failure      400 {object} dto.ErrorResponse "Invalid limit"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      503 {object} dto.ErrorResponse "Persistence not configured or unavailable"
// @Security     BearerAuth
// @Router       /api/dogs/{dog_id}/feeding-target/history [get]
func (h *FeedingTargetsHandler) ListFeedingTargets(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.targets == nil {
		builder.ServiceError(service.ErrRepositoryNotConfigured)
		return
	}
	dogID := strings.TrimSpace(c.Param("dog_id"))

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			builder.ValidationError(dto.ErrInvalidLimit)
			return
		}
		limit = n
	}

	targets, err := h.targets.History(c.Request.Context(), dogID, limit)
	if err != nil {
		builder.ServiceError(err)
		return
	}
	if targets == nil {
		targets = []repository.FeedingTarget{}
	}

	builder.SuccessOK(targets)
}
