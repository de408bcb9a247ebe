package handler

import (
	"errors"
	"net/http"

	"github.com/ATorresTatis/power-pushwoosh/internal/service"
	"github.com/ATorresTatis/power-pushwoosh/pushwoosh"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("handler",
	fx.Provide(
		NewNotificationHandler,
	),
)

type Notification struct {
	services  service.NotificationProvider
	registrar service.DeviceRegistrar
	logger    *zap.Logger
}

type NotificationParams struct {
	fx.In

	Services  service.NotificationProvider
	Registrar service.DeviceRegistrar
	Logger    *zap.Logger
}

func NewNotificationHandler(params NotificationParams) *Notification {
	return &Notification{
		services:  params.Services,
		registrar: params.Registrar,
		logger:    params.Logger,
	}
}

// SendMessageHandler pushes one notification for the application named in the
// path. The body addresses either raw device tokens or registered recipients,
// never both.
func (n *Notification) SendMessageHandler(c *gin.Context) {
	ctx := c.Request.Context()
	application := c.Param("application")
	requestID := uuid.NewString()

	var req SendMessageRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, GetRequestError(err))
		return
	}

	if (len(req.Devices) == 0) == (len(req.Recipients) == 0) {
		c.JSON(http.StatusUnprocessableEntity, GetRequestError(
			errors.New("exactly one of devices or recipients must be set"),
		))
		return
	}

	n.logger.Info("dispatching notification",
		zap.String("request_id", requestID),
		zap.String("application", application),
		zap.Int("devices", len(req.Devices)),
		zap.Int("recipients", len(req.Recipients)),
	)

	result, err := func() (pushwoosh.Response, error) {
		if len(req.Devices) > 0 {
			return n.services.SendToDevices(ctx, application, req.Content, req.Devices)
		}
		return n.services.SendToRecipients(ctx, application, req.Content, req.Recipients)
	}()
	if err != nil {
		n.logger.Warn("notification dispatch failed",
			zap.String("request_id", requestID),
			zap.String("application", application),
			zap.Error(err),
		)
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": requestID,
		"result":     result,
	})
}

// RegisterDeviceHandler stores a recipient to device token binding for the
// application named in the path.
func (n *Notification) RegisterDeviceHandler(c *gin.Context) {
	ctx := c.Request.Context()
	application := c.Param("application")
	requestID := uuid.NewString()

	var req RegisterDeviceRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, GetRequestError(err))
		return
	}

	if err := n.registrar.RegisterDevice(ctx, application, req.Recipient, req.Token); err != nil {
		n.logger.Warn("device registration failed",
			zap.String("request_id", requestID),
			zap.String("application", application),
			zap.Error(err),
		)
		status, body := mapServiceError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"request_id": requestID,
		"message":    "device registered",
	})
}

// mapServiceError translates service failures to the response envelope.
// Upstream failures surface as 502 so callers can tell them from local ones.
func mapServiceError(err error) (int, error) {
	var (
		transportErr *pushwoosh.TransportError
		decodeErr    *pushwoosh.DecodeError
	)

	switch {
	case errors.Is(err, service.ErrUnknownApplication):
		return http.StatusNotFound, GetUnknownApplicationError(err)
	case errors.Is(err, pushwoosh.ErrInvalidArgument):
		return http.StatusUnprocessableEntity, GetRequestError(err)
	case errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, gobreaker.ErrTooManyRequests),
		errors.As(err, &transportErr),
		errors.As(err, &decodeErr):
		return http.StatusBadGateway, GetUpstreamError(err)
	default:
		return http.StatusInternalServerError, GetInternalError(err)
	}
}
