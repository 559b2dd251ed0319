package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bug-triage/internal/adapter"
	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/store"
	"github.com/MKhiriev/go-bug-triage/internal/validators"
	"github.com/MKhiriev/go-bug-triage/models"
)

// bugService is the bug submission orchestrator.
//
// SubmitBug runs validate -> membership guard -> classify -> persist ->
// audit. Only the first, second and fourth steps can fail the request: the
// classifier always yields a severity and audit failures are logged.
type bugService struct {
	bugRepository store.BugRepository
	guard         MembershipGuard
	classifier    adapter.SeverityClassifier
	audit         AuditService
	validator     validators.Validator

	logger *logger.Logger
}

func NewBugService(
	bugRepository store.BugRepository,
	guard MembershipGuard,
	classifier adapter.SeverityClassifier,
	audit AuditService,
	logger *logger.Logger,
) BugService {
	return &bugService{
		bugRepository: bugRepository,
		guard:         guard,
		classifier:    classifier,
		audit:         audit,
		validator:     validators.NewTriageValidator(),
		logger:        logger,
	}
}

// SubmitBug files a bug against dashboardID on behalf of userID.
//
// Returns the stored bug (status OPEN) or:
//   - ErrInvalidDataProvided wrapping ErrValidationNoTitle,
//     ErrValidationNoDescription or ErrValidationNoDashboardID.
//   - ErrForbidden if userID is not a member of the dashboard.
//   - A wrapped storage error if the membership check or the insert fails.
func (s *bugService) SubmitBug(ctx context.Context, userID, dashboardID, title, description string) (models.Bug, error) {
	log := logger.FromContext(ctx)

	req := models.SubmitBugRequest{
		UserID:      userID,
		DashboardID: strings.TrimSpace(dashboardID),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("bug report rejected by validation")
		return models.Bug{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.guard.Require(ctx, req.DashboardID, userID); err != nil {
		return models.Bug{}, err
	}

	report := s.classifier.ClassifyWithReport(ctx, req.Title, req.Description)
	log.Info().
		Str("dashboard_id", req.DashboardID).
		Str("severity", report.Severity.String()).
		Int("attempts", report.Attempts).
		Str("outcome", string(report.Outcome)).
		Bool("fell_back", report.FellBack).
		Dur("elapsed", report.Elapsed).
		Msg("bug classified")

	// the classification is done; a client that went away must not lose it
	persistCtx := context.WithoutCancel(ctx)

	bug, err := s.bugRepository.CreateBug(persistCtx, models.Bug{
		Title:       req.Title,
		Description: req.Description,
		Severity:    report.Severity,
		DashboardID: req.DashboardID,
	})
	if err != nil {
		log.Err(err).Str("dashboard_id", req.DashboardID).Msg("bug persistence failed")
		return models.Bug{}, fmt.Errorf("bug persistence failed: %w", err)
	}

	message := fmt.Sprintf(`Bug "%s" reported with %s severity`, bug.Title, bug.Severity)
	if err = s.audit.Record(persistCtx, bug.DashboardID, message, models.ActivityBugCreated); err != nil {
		log.Warn().Err(err).Str("bug_id", bug.BugID).Msg("bug activity was not recorded")
	}

	return bug, nil
}

func (s *bugService) ListBugs(ctx context.Context, userID, dashboardID string) ([]models.Bug, error) {
	if err := s.guard.Require(ctx, dashboardID, userID); err != nil {
		return nil, err
	}

	bugs, err := s.bugRepository.ListBugsByDashboard(ctx, dashboardID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("dashboard_id", dashboardID).Msg("listing bugs failed")
		return nil, fmt.Errorf("listing bugs failed: %w", err)
	}

	return bugs, nil
}

// ResolveBug moves an OPEN bug to RESOLVED. Only members of the bug's
// dashboard may resolve it.
func (s *bugService) ResolveBug(ctx context.Context, userID, bugID string) (models.Bug, error) {
	log := logger.FromContext(ctx)

	bug, err := s.bugRepository.FindBugByID(ctx, bugID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Bug{}, fmt.Errorf("%w: %w", ErrBugNotFound, err)
	}
	if err != nil {
		log.Err(err).Str("bug_id", bugID).Msg("bug lookup failed")
		return models.Bug{}, fmt.Errorf("bug lookup failed: %w", err)
	}

	if err = s.guard.Require(ctx, bug.DashboardID, userID); err != nil {
		return models.Bug{}, err
	}

	if bug.Status == models.BugStatusResolved {
		return models.Bug{}, ErrBugAlreadyResolved
	}

	err = s.bugRepository.ResolveBug(ctx, bugID)
	if errors.Is(err, store.ErrBugAlreadyResolved) {
		return models.Bug{}, fmt.Errorf("%w: %w", ErrBugAlreadyResolved, err)
	}
	if err != nil {
		log.Err(err).Str("bug_id", bugID).Msg("bug resolve failed")
		return models.Bug{}, fmt.Errorf("bug resolve failed: %w", err)
	}
	bug.Status = models.BugStatusResolved

	message := fmt.Sprintf(`Bug "%s" marked as resolved`, bug.Title)
	if err = s.audit.Record(context.WithoutCancel(ctx), bug.DashboardID, message, models.ActivityBugResolved); err != nil {
		log.Warn().Err(err).Str("bug_id", bug.BugID).Msg("bug activity was not recorded")
	}

	return bug, nil
}
