package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/feeding-service/internal/circuitbreaker"
	"github.com/guttosm/feeding-service/internal/domain/dto"
	"github.com/guttosm/feeding-service/internal/i18n"
	"github.com/guttosm/feeding-service/internal/middleware"
	"github.com/guttosm/feeding-service/internal/repository"
	"github.com/guttosm/feeding-service/internal/service"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// BindJSON decodes the request body into a new T.
func BindJSON[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ResponseBuilder writes the success and error envelopes.
// Envelopes come from a sync.Pool; gin serializes synchronously so they are
// returned to the pool right after writing.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error sends an error envelope whose message is messageKey translated for the caller.
// err, when set, is attached to the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.write(statusCode, messageKey, nil, err)
}

// ValidationError sends a 400 naming the rejected field.
func (b *ResponseBuilder) ValidationError(verr *dto.ValidationError) {
	message := i18n.GetTranslator().Translate(verr.Key, i18n.GetLocale(b.c))
	b.write(http.StatusBadRequest, verr.Key, map[string]string{verr.Field: message}, verr)
}

// ServiceError maps errors returned by the services to a status code and message.
// Input errors become 400s, missing targets 404, an unavailable database 503,
// an expired request deadline 504 and everything else 500.
func (b *ResponseBuilder) ServiceError(err error) {
	if verr := dto.ValidationErrorFor(err); verr != nil {
		b.ValidationError(verr)
		return
	}

	switch {
	case errors.Is(err, service.ErrDogIDRequired):
		b.ValidationError(dto.ErrInvalidDogID)
	case errors.Is(err, repository.ErrFeedingTargetNotFound):
		b.Error(http.StatusNotFound, i18n.ErrKeyFeedingTargetNotFound, nil)
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		b.Error(http.StatusServiceUnavailable, i18n.ErrKeyPersistenceUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func (b *ResponseBuilder) write(statusCode int, messageKey string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}
