package usecase

import (
	"context"
	"time"

	credentialDomain "github.com/allisson/credstore/internal/credential/domain"
	"github.com/allisson/credstore/internal/metrics"
)

// credentialUseCaseWithMetrics decorates CredentialUseCase with metrics
// instrumentation.
type credentialUseCaseWithMetrics struct {
	next    CredentialUseCase
	metrics metrics.BusinessMetrics
}

// NewCredentialUseCaseWithMetrics wraps a CredentialUseCase with metrics
// recording.
func NewCredentialUseCaseWithMetrics(next CredentialUseCase, m metrics.BusinessMetrics) CredentialUseCase {
	return &credentialUseCaseWithMetrics{next: next, metrics: m}
}

func (c *credentialUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.metrics.RecordOperation(ctx, "credentials", operation, status)
	c.metrics.RecordDuration(ctx, "credentials", operation, time.Since(start), status)
}

// Save records metrics for credential save operations.
func (c *credentialUseCaseWithMetrics) Save(
	ctx context.Context,
	identifier string,
	secret []byte,
	keyTag string,
) error {
	start := time.Now()
	err := c.next.Save(ctx, identifier, secret, keyTag)
	c.record(ctx, "credential_save", start, err)
	return err
}

// Load records metrics for credential load operations.
func (c *credentialUseCaseWithMetrics) Load(
	ctx context.Context,
	keyTag string,
) (*credentialDomain.Credential, error) {
	start := time.Now()
	credential, err := c.next.Load(ctx, keyTag)
	c.record(ctx, "credential_load", start, err)
	return credential, err
}

// Delete records metrics for credential delete operations.
func (c *credentialUseCaseWithMetrics) Delete(ctx context.Context) error {
	start := time.Now()
	err := c.next.Delete(ctx)
	c.record(ctx, "credential_delete", start, err)
	return err
}
