package usecase

import (
	"context"
	"fmt"

	"room-booking/pkg/signature"

	"go.uber.org/zap"
)

// Puller updates the deployed checkout.
type Puller interface {
	Pull(ctx context.Context) error
}

type DeployService interface {
	// Deploy verifies the webhook signature over body and, if valid, pulls.
	Deploy(ctx context.Context, signatureHeader string, body []byte) error
}

type deployService struct {
	secret string
	puller Puller
	log    *zap.Logger
}

func NewDeployService(secret string, puller Puller, log *zap.Logger) DeployService {
	return &deployService{
		secret: secret,
		puller: puller,
		log:    log.With(zap.String("service", "deploy")),
	}
}

func (s *deployService) Deploy(ctx context.Context, signatureHeader string, body []byte) error {
	if s.secret == "" {
		s.log.Warn("Webhook secret not configured, rejecting request")
		return ErrInvalidSignature
	}

	if !signature.Verify(signatureHeader, body, s.secret) {
		s.log.Warn("Webhook signature mismatch", zap.Int("body_bytes", len(body)))
		return ErrInvalidSignature
	}

	if err := s.puller.Pull(ctx); err != nil {
		s.log.Error("Repository pull failed", zap.Error(err))
		return fmt.Errorf("deploy: %w", err)
	}

	s.log.Info("Deployment pulled")
	return nil
}
