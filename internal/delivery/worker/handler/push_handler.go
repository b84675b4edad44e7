// Package handler processes Pub/Sub push deliveries of sync jobs.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"reviewhub/config"
	deliverycontext "reviewhub/internal/delivery/context"
	"reviewhub/internal/domain/constants"
	"reviewhub/internal/domain/entity"
	domainerrors "reviewhub/internal/domain/errors"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"
	"reviewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// classify marks everything but domain errors as retryable. A domain error
// (unknown location, unsupported platform) fails the same way on every attempt.
func classify(err error) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	_, ok := errors.AsType[*retryableError](err)

	return ok
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler runs sync jobs delivered by Pub/Sub push
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	validateToken  tokenValidator
	logger         *slog.Logger
	reviewUC       usecase.ReviewUsecase
	listingUC      usecase.ListingUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	ReviewUC  usecase.ReviewUsecase
	ListingUC usecase.ListingUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushAudience:   audience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		reviewUC:       params.ReviewUC,
		listingUC:      params.ListingUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Retryable failures answer
// 503 so Pub/Sub redelivers; everything else is acknowledged with 200.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var job service.SyncJob
	if err := json.Unmarshal(data, &job); err != nil {
		h.logger.Error("[Worker] Failed to parse sync job", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > job field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &job)

	ctx, reqLogger := deliverycontext.WithRequest(ctx, requestID, h.logger.With(
		slog.String("job_id", job.JobID),
		slog.String("tenant_id", job.TenantID),
		slog.String("location_id", job.LocationID),
	))

	reqLogger.Info("[Worker] Processing sync job",
		slog.String("kind", string(job.Kind)),
		slog.String("platform", job.Platform),
	)

	if err := h.runJob(ctx, &job); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Sync job failed",
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Sync job completed")

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, job, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, job *service.SyncJob) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if job.RequestID != "" {
		return job.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) runJob(ctx context.Context, job *service.SyncJob) error {
	tenantID, err := uuid.Parse(job.TenantID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid tenant_id")
	}
	locationID, err := uuid.Parse(job.LocationID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid location_id")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	switch job.Kind {
	case service.SyncJobReviews:
		// review sync always covers every platform of the location
		counts, err := h.reviewUC.SyncReviewsForLocation(ctx, tenantID, locationID)
		if err != nil {
			return classify(err)
		}
		logger.Info("[Worker] Reviews synced", slog.Any("counts", counts), slog.Int("total", counts.Total()))

	case service.SyncJobListings:
		if job.Platform == "" {
			results, err := h.listingUC.SyncAllListings(ctx, tenantID, locationID)
			if err != nil {
				return classify(err)
			}
			logger.Info("[Worker] Listings synced", slog.String("summary", results.Summary().String()))

			return nil
		}

		platform, ok := entity.ParsePlatform(job.Platform)
		if !ok {
			return domainerrors.ErrUnsupportedPlatform.WithDetails(job.Platform)
		}
		if _, err := h.listingUC.SyncListing(ctx, tenantID, locationID, platform); err != nil {
			return classify(err)
		}

	default:
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown job kind %q", job.Kind))
	}

	return nil
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected
	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
