package adapter

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-bug-triage/internal/clock"
	"github.com/MKhiriev/go-bug-triage/internal/config"
	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/MKhiriev/go-bug-triage/models"
)

type classifyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type httpClassifier struct {
	client   *utils.HTTPClient
	endpoint string
	cfg      config.Classifier
	fallback models.Severity
	clock    clock.Clock

	logger *logger.Logger
}

// NewHTTPClassifier constructs the REST implementation of [SeverityClassifier].
// Waits between attempts go through clk so tests can observe them.
//
// Returns an error if cfg.Endpoint is not an absolute URL or MaxAttempts is
// lower than one.
func NewHTTPClassifier(cfg config.Classifier, clk clock.Clock, logger *logger.Logger) (SeverityClassifier, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid classifier endpoint %q", cfg.Endpoint)
	}
	if cfg.MaxAttempts < 1 {
		return nil, fmt.Errorf("classifier max attempts must be positive, got %d", cfg.MaxAttempts)
	}
	if clk == nil {
		clk = clock.Real()
	}

	return &httpClassifier{
		client:   utils.NewHTTPClient(),
		endpoint: u.String(),
		cfg:      cfg,
		fallback: cfg.Severity(),
		clock:    clk,
		logger:   logger,
	}, nil
}

// Classify implements [SeverityClassifier].
func (c *httpClassifier) Classify(ctx context.Context, title, description string) models.Severity {
	return c.ClassifyWithReport(ctx, title, description).Severity
}

// ClassifyWithReport implements [SeverityClassifier]. It runs up to
// MaxAttempts attempts, waiting RetryInterval (RateLimitRetryInterval after a
// 429) between retryable failures. A fatal outcome, exhaustion or a done ctx
// ends the loop with the default severity.
func (c *httpClassifier) ClassifyWithReport(ctx context.Context, title, description string) ClassificationReport {
	started := c.clock.Now()
	report := ClassificationReport{}

	finish := func(outcome AttemptOutcome) ClassificationReport {
		report.Outcome = outcome.Kind
		report.LastErr = outcome.Err
		report.Elapsed = c.clock.Now().Sub(started)
		if outcome.Kind == OutcomeSuccess {
			report.Severity = outcome.Severity
		} else {
			report.Severity = c.fallback
			report.FellBack = true
		}

		event := c.logger.Info()
		if report.FellBack {
			event = c.logger.Warn().Err(report.LastErr)
		}
		event.
			Int("attempts", report.Attempts).
			Str("outcome", string(report.Outcome)).
			Str("severity", report.Severity.String()).
			Bool("fell_back", report.FellBack).
			Dur("elapsed", report.Elapsed).
			Msg("classification finished")

		return report
	}

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return finish(cancelled(fmt.Errorf("%w: %w", ErrClassifierCancelled, ctx.Err())))
		}

		report.Attempts = attempt
		outcome := c.attempt(ctx, title, description)

		c.logger.Debug().
			Int("attempt", attempt).
			Str("outcome", string(outcome.Kind)).
			Err(outcome.Err).
			Dur("elapsed", c.clock.Now().Sub(started)).
			Msg("classifier attempt")

		if outcome.Kind != OutcomeRetryable || attempt == c.cfg.MaxAttempts {
			return finish(outcome)
		}

		wait := c.cfg.RetryInterval
		if outcome.RateLimited {
			wait = c.cfg.RateLimitRetryInterval
		}

		c.logger.Info().
			Int("attempt", attempt).
			Dur("wait", wait).
			Err(outcome.Err).
			Msg("classifier attempt failed, retrying")

		report.Waits = append(report.Waits, wait)
		select {
		case <-ctx.Done():
			return finish(cancelled(fmt.Errorf("%w: %w", ErrClassifierCancelled, ctx.Err())))
		case <-c.clock.After(wait):
		}
	}

	// unreachable with MaxAttempts >= 1
	return finish(fatal(ErrClassifierUnavailable))
}

func (c *httpClassifier) attempt(ctx context.Context, title, description string) AttemptOutcome {
	attemptCtx, cancel := context.WithTimeout(ctx, c.perAttemptTimeout())
	defer cancel()

	resp, err := c.client.R().
		SetContext(attemptCtx).
		SetBody(classifyRequest{Title: title, Description: description}).
		Post(c.endpoint)
	if err != nil {
		return mapTransportError(ctx, err)
	}

	return mapResponse(resp)
}

func (c *httpClassifier) perAttemptTimeout() time.Duration {
	if c.cfg.PerAttemptTimeout <= 0 {
		return 45 * time.Second
	}
	return c.cfg.PerAttemptTimeout
}
