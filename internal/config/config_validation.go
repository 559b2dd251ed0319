// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-bug-triage/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if err := cfg.Classifier.validate(); err != nil {
		return err
	}

	if cfg.Workers.AuditMaxDeliveries < 1 || cfg.Workers.AuditPollTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (c Classifier) validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: bad endpoint %q", ErrInvalidClassifierConfigs, c.Endpoint)
	}

	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be positive", ErrInvalidClassifierConfigs)
	}

	if c.PerAttemptTimeout <= 0 || c.RetryInterval < 0 || c.RateLimitRetryInterval < 0 {
		return fmt.Errorf("%w: bad timing", ErrInvalidClassifierConfigs)
	}

	if _, ok := models.ParseSeverity(c.DefaultSeverity); !ok {
		return fmt.Errorf("%w: unknown default severity %q", ErrInvalidClassifierConfigs, c.DefaultSeverity)
	}

	return nil
}

// Severity returns the configured fallback severity. validate guarantees
// the label is known; High is returned otherwise.
func (c Classifier) Severity() models.Severity {
	if s, ok := models.ParseSeverity(c.DefaultSeverity); ok {
		return s
	}
	return models.SeverityHigh
}
