package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ATorresTatis/power-pushwoosh/internal/metrics"
	"github.com/ATorresTatis/power-pushwoosh/internal/repository"
	"github.com/ATorresTatis/power-pushwoosh/pushwoosh"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var Module = fx.Module("service",
	fx.Provide(
		fx.Annotate(
			NewNotificationService,
			fx.As(new(NotificationProvider)),
			fx.As(new(DeviceRegistrar)),
		),
		NewConfig,
		NewSessions,
		NewCircuitBreakerRegistry,
		NewCircuitBreakerRegistryConfig,
	),
)

// ErrUnknownApplication reports an application alias absent from the
// configured session map.
var ErrUnknownApplication = errors.New("unknown application alias")

//go:generate mockgen -package mockservice -destination ./mock/mockservice.go . NotificationProvider,DeviceRegistrar
type NotificationProvider interface {
	SendToDevices(ctx context.Context, application string, content string, devices []string) (pushwoosh.Response, error)
	SendToRecipients(ctx context.Context, application string, content string, recipients []string) (pushwoosh.Response, error)
}

type DeviceRegistrar interface {
	RegisterDevice(ctx context.Context, application string, recipient string, token string) error
}

var (
	_ NotificationProvider = (*NotificationService)(nil)
	_ DeviceRegistrar      = (*NotificationService)(nil)
)

type NotificationService struct {
	sessions               Sessions
	sender                 pushwoosh.MessageSender
	cacheProvider          repository.CacheProvider
	persistentProvider     repository.PersistentProvider
	circuitBreakerRegistry *CircuitBreakerRegistry
	metricsCollector       *metrics.OutboundCollector
}

type NotificationServiceParams struct {
	fx.In

	Sessions               Sessions
	Sender                 pushwoosh.MessageSender
	CacheProvider          repository.CacheProvider
	PersistentProvider     repository.PersistentProvider
	CircuitBreakerRegistry *CircuitBreakerRegistry
	MetricsCollector       *metrics.OutboundCollector
}

func NewNotificationService(params NotificationServiceParams) *NotificationService {
	return &NotificationService{
		sessions:               params.Sessions,
		sender:                 params.Sender,
		cacheProvider:          params.CacheProvider,
		persistentProvider:     params.PersistentProvider,
		circuitBreakerRegistry: params.CircuitBreakerRegistry,
		metricsCollector:       params.MetricsCollector,
	}
}

// SendToDevices delivers content to raw device tokens. Validation of content
// and tokens happens in the pushwoosh client, the single validation point.
func (s *NotificationService) SendToDevices(ctx context.Context, application string, content string, devices []string) (pushwoosh.Response, error) {
	session, ok := s.sessions[application]
	if !ok {
		return nil, ErrUnknownApplication
	}

	return s.send(ctx, application, session, content, devices)
}

// SendToRecipients resolves the registered device tokens of each recipient
// and delivers content to all of them in one createMessage call. Recipients
// without registered devices contribute nothing to the token list.
func (s *NotificationService) SendToRecipients(ctx context.Context, application string, content string, recipients []string) (pushwoosh.Response, error) {
	session, ok := s.sessions[application]
	if !ok {
		return nil, ErrUnknownApplication
	}

	devices, err := s.resolveDeviceTokens(ctx, application, recipients)
	if err != nil {
		return nil, err
	}

	return s.send(ctx, application, session, content, devices)
}

func (s *NotificationService) RegisterDevice(ctx context.Context, application string, recipient string, token string) error {
	if _, ok := s.sessions[application]; !ok {
		return ErrUnknownApplication
	}
	if recipient == "" {
		return fmt.Errorf("recipient must not be empty: %w", pushwoosh.ErrInvalidArgument)
	}
	if token == "" {
		return fmt.Errorf("device token must not be empty: %w", pushwoosh.ErrInvalidArgument)
	}

	deviceToken := repository.DeviceToken{
		Application: application,
		Recipient:   recipient,
		Token:       token,
	}
	if err := s.persistentProvider.Register(ctx, &deviceToken); err != nil {
		return err
	}

	s.cacheProvider.Del(application, recipient)
	return nil
}

func (s *NotificationService) send(ctx context.Context, application string, session *pushwoosh.Session, content string, devices []string) (pushwoosh.Response, error) {
	circuitBreaker := s.circuitBreakerRegistry.GetOrCreate(application)

	cbState := circuitBreaker.State().String()
	s.metricsCollector.RecordCircuitBreakerState(ctx, application, cbState)

	response, err := circuitBreaker.Execute(func() (pushwoosh.Response, error) {
		return s.sender.SendMessage(ctx, session, content, devices)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		// The client records only attempts it made. A refused send never
		// reaches it.
		s.metricsCollector.RecordRefusal(ctx, application, err)
	}

	return response, err
}

// resolveDeviceTokens looks up every recipient concurrently and merges the
// results preserving recipient order. Duplicate tokens are permitted.
func (s *NotificationService) resolveDeviceTokens(ctx context.Context, application string, recipients []string) ([]string, error) {
	g, ctx := errgroup.WithContext(ctx)

	tokensPerRecipient := make([][]string, len(recipients))
	for i, recipient := range recipients {
		g.Go(func() error {
			tokens, err := s.getDeviceTokens(ctx, application, recipient)
			if err != nil {
				return err
			}
			tokensPerRecipient[i] = tokens
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var devices []string
	for _, tokens := range tokensPerRecipient {
		devices = append(devices, tokens...)
	}
	return devices, nil
}

func (s *NotificationService) getDeviceTokens(ctx context.Context, application string, recipient string) ([]string, error) {
	var (
		tokens []repository.DeviceToken
		err    error
	)

	tokens, err = s.cacheProvider.Get(application, recipient)
	if err != nil {
		tokens, err = s.persistentProvider.FindByRecipient(ctx, application, recipient)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		s.cacheProvider.Set(application, recipient, tokens)
	}

	devices := make([]string, 0, len(tokens))
	for _, token := range tokens {
		devices = append(devices, token.Token)
	}
	return devices, nil
}
