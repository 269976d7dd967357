package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"boxertrucks/internal/domain/entities"
	"boxertrucks/internal/domain/pricing"
	"boxertrucks/internal/usecase/interfaces"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidJobID      = errors.New("invalid job id")
	ErrInvalidJobInput   = errors.New("invalid job input")
	ErrMainDriverInvalid = errors.New("main driver not found, inactive, or without an eligible vehicle")
	ErrHelpersInvalid    = errors.New("one or more helpers not found or inactive")
	ErrJobNotAssignable  = errors.New("job can no longer be assigned")
	ErrJobNotStartable   = errors.New("job must be assigned or approved before starting")
	ErrJobNotInProgress  = errors.New("job must be in progress before completing")
	ErrJobMissingStart   = errors.New("job has no start time")
	ErrJobNotCancellable = errors.New("job is already in a terminal state")
)

// IJobUseCase exposes the job lifecycle: creation against a quote, worker
// assignment with committed pay, the start/complete clock transitions, and
// cancellation.

type IJobUseCase interface {
	Create(ctx context.Context, cmd CreateJobCommand) (entities.Job, error)
	Assign(ctx context.Context, jobID, mainDriverID string, helperIDs []string) error
	Start(ctx context.Context, jobID string) error
	Complete(ctx context.Context, jobID string) error
	Cancel(ctx context.Context, jobID string) error
	GetDetails(ctx context.Context, jobID string) (JobDetails, error)
}

// CreateJobCommand carries the customer-facing fields of a new job.
type CreateJobCommand struct {
	QuoteID          string
	CustomerName     string
	CustomerPhone    string
	PickupAddress    string
	DropoffAddress   string
	ScheduledStartAt *time.Time
}

// JobDetails is a full job snapshot with its assignment list and resolved
// driver names.
type JobDetails struct {
	Job         entities.Job
	Assignments []AssignmentDetails
}

type AssignmentDetails struct {
	entities.JobAssignment
	DriverName string
}

type JobUseCase struct {
	jobs        interfaces.IJobRepository
	quotes      interfaces.IQuoteRepository
	drivers     interfaces.IDriverRepository
	assignments interfaces.IJobAssignmentRepository
	rates       pricing.Rates
	time        interfaces.ITimeProvider
	log         *slog.Logger
	locks       *jobLocks
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(
	jobs interfaces.IJobRepository,
	quotes interfaces.IQuoteRepository,
	drivers interfaces.IDriverRepository,
	assignments interfaces.IJobAssignmentRepository,
	rates pricing.Rates,
	timeProvider interfaces.ITimeProvider,
	log *slog.Logger,
) *JobUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &JobUseCase{
		jobs:        jobs,
		quotes:      quotes,
		drivers:     drivers,
		assignments: assignments,
		rates:       rates,
		time:        timeProvider,
		log:         log,
		locks:       newJobLocks(),
	}
}

func (u *JobUseCase) Create(ctx context.Context, cmd CreateJobCommand) (entities.Job, error) {
	cmd.QuoteID = strings.TrimSpace(cmd.QuoteID)
	cmd.CustomerName = strings.TrimSpace(cmd.CustomerName)
	cmd.CustomerPhone = strings.TrimSpace(cmd.CustomerPhone)
	cmd.PickupAddress = strings.TrimSpace(cmd.PickupAddress)
	cmd.DropoffAddress = strings.TrimSpace(cmd.DropoffAddress)

	if cmd.QuoteID == "" || cmd.CustomerName == "" || cmd.CustomerPhone == "" ||
		cmd.PickupAddress == "" || cmd.DropoffAddress == "" {
		return entities.Job{}, ErrInvalidJobInput
	}

	quote, err := u.quotes.GetByID(ctx, cmd.QuoteID)
	if err != nil {
		return entities.Job{}, err
	}
	if quote.ID == "" {
		return entities.Job{}, ErrQuoteNotFound
	}

	job := entities.Job{
		ID:               uuid.NewString(),
		QuoteID:          cmd.QuoteID,
		CustomerName:     cmd.CustomerName,
		CustomerPhone:    cmd.CustomerPhone,
		PickupAddress:    cmd.PickupAddress,
		DropoffAddress:   cmd.DropoffAddress,
		ScheduledStartAt: cmd.ScheduledStartAt,
		Status:           entities.JobStatusPendingApproval,
		CreatedAt:        u.time.Now(),
	}

	created, err := u.jobs.Create(ctx, job)
	if err != nil {
		return entities.Job{}, err
	}

	u.log.Info("job created", "job_id", created.ID, "quote_id", created.QuoteID)
	return created, nil
}

// Assign replaces the job's worker set and commits the pay/price range.
// Nothing is written unless the whole worker set resolves.
func (u *JobUseCase) Assign(ctx context.Context, jobID, mainDriverID string, helperIDs []string) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ErrInvalidJobID
	}

	release := u.locks.acquire(jobID)
	defer release()

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.ID == "" {
		return ErrJobNotFound
	}
	if !job.CanAssign() {
		return ErrJobNotAssignable
	}

	quote, err := u.quotes.GetByID(ctx, job.QuoteID)
	if err != nil {
		return err
	}
	if quote.ID == "" {
		return ErrQuoteNotFound
	}

	main, err := u.drivers.GetByID(ctx, mainDriverID)
	if err != nil {
		return err
	}
	if main.ID == "" || !main.IsActive || !main.VehicleType.EligibleForMainDriver() {
		return ErrMainDriverInvalid
	}

	resolvedHelperIDs := dedupeHelperIDs(helperIDs, mainDriverID)
	helpers, err := u.drivers.ListActiveByIDs(ctx, resolvedHelperIDs)
	if err != nil {
		return err
	}
	if len(helpers) != len(resolvedHelperIDs) {
		return ErrHelpersInvalid
	}

	helperDriverIDs := make([]string, len(helpers))
	for i, h := range helpers {
		helperDriverIDs[i] = h.ID
	}

	plan := pricing.PlanAssignments(u.rates, quote, main.ID, helperDriverIDs)

	now := u.time.Now()
	rows := make([]entities.JobAssignment, len(plan.Assignments))
	for i, p := range plan.Assignments {
		rows[i] = entities.JobAssignment{
			ID:         uuid.NewString(),
			JobID:      jobID,
			DriverID:   p.DriverID,
			Role:       p.Role,
			HourlyRate: p.HourlyRate,
			MilesRate:  p.MilesRate,
			HoursLow:   p.HoursLow,
			HoursHigh:  p.HoursHigh,
			MilesPay:   p.MilesPay,
			PayLow:     p.PayLow,
			PayHigh:    p.PayHigh,
			CreatedAt:  now,
		}
	}

	if err := u.assignments.ReplaceForJob(ctx, jobID, rows); err != nil {
		return err
	}

	job.CustomerTotalLow = plan.CustomerTotalLow
	job.CustomerTotalHigh = plan.CustomerTotalHigh
	job.PlatformFeeLow = plan.PlatformFeeLow
	job.PlatformFeeHigh = plan.PlatformFeeHigh
	job.Status = entities.JobStatusAssigned

	if _, err := u.jobs.Update(ctx, job); err != nil {
		return err
	}

	u.log.Info("job assigned",
		"job_id", jobID,
		"main_driver_id", main.ID,
		"helper_count", len(helpers),
		"customer_total_low", plan.CustomerTotalLow,
		"customer_total_high", plan.CustomerTotalHigh,
	)
	return nil
}

func (u *JobUseCase) Start(ctx context.Context, jobID string) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ErrInvalidJobID
	}

	release := u.locks.acquire(jobID)
	defer release()

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.ID == "" {
		return ErrJobNotFound
	}
	if !job.CanStart() {
		return ErrJobNotStartable
	}

	now := u.time.Now()
	job.StartedAt = &now
	job.Status = entities.JobStatusInProgress

	if _, err := u.jobs.Update(ctx, job); err != nil {
		return err
	}

	u.log.Info("job started", "job_id", jobID)
	return nil
}

// Complete settles the job against actual elapsed time. With no assignments
// on file the job is still marked completed, but the financial snapshot is
// left untouched.
func (u *JobUseCase) Complete(ctx context.Context, jobID string) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ErrInvalidJobID
	}

	release := u.locks.acquire(jobID)
	defer release()

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.ID == "" {
		return ErrJobNotFound
	}
	if !job.CanComplete() {
		return ErrJobNotInProgress
	}
	if job.StartedAt == nil {
		return ErrJobMissingStart
	}

	now := u.time.Now()
	job.CompletedAt = &now
	job.Status = entities.JobStatusCompleted

	quote, err := u.quotes.GetByID(ctx, job.QuoteID)
	if err != nil {
		return err
	}
	if quote.ID == "" {
		return ErrQuoteNotFound
	}

	assignments, err := u.assignments.ListByJobID(ctx, jobID)
	if err != nil {
		return err
	}
	if len(assignments) == 0 {
		if _, err := u.jobs.Update(ctx, job); err != nil {
			return err
		}
		u.log.Warn("job completed without assignments", "job_id", jobID)
		return nil
	}

	settlement := pricing.SettleCompletion(u.rates, quote, assignments, now.Sub(*job.StartedAt))

	if err := u.assignments.UpdateMany(ctx, settlement.Assignments); err != nil {
		return err
	}

	job.CustomerTotalLow = settlement.CustomerTotal
	job.CustomerTotalHigh = settlement.CustomerTotal
	job.PlatformFeeLow = settlement.PlatformFee
	job.PlatformFeeHigh = settlement.PlatformFee

	if _, err := u.jobs.Update(ctx, job); err != nil {
		return err
	}

	u.log.Info("job completed",
		"job_id", jobID,
		"actual_hours", settlement.ActualHours,
		"customer_total", settlement.CustomerTotal,
		"platform_fee", settlement.PlatformFee,
	)
	return nil
}

func (u *JobUseCase) Cancel(ctx context.Context, jobID string) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ErrInvalidJobID
	}

	release := u.locks.acquire(jobID)
	defer release()

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.ID == "" {
		return ErrJobNotFound
	}
	if !job.CanCancel() {
		return ErrJobNotCancellable
	}

	job.Status = entities.JobStatusCancelled

	if _, err := u.jobs.Update(ctx, job); err != nil {
		return err
	}

	u.log.Info("job cancelled", "job_id", jobID)
	return nil
}

func (u *JobUseCase) GetDetails(ctx context.Context, jobID string) (JobDetails, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return JobDetails{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return JobDetails{}, err
	}
	if job.ID == "" {
		return JobDetails{}, ErrJobNotFound
	}

	assignments, err := u.assignments.ListByJobID(ctx, jobID)
	if err != nil {
		return JobDetails{}, err
	}

	driverIDs := make([]string, 0, len(assignments))
	seen := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		if !seen[a.DriverID] {
			seen[a.DriverID] = true
			driverIDs = append(driverIDs, a.DriverID)
		}
	}

	names := make(map[string]string, len(driverIDs))
	if len(driverIDs) > 0 {
		drivers, err := u.drivers.ListByIDs(ctx, driverIDs)
		if err != nil {
			return JobDetails{}, err
		}
		for _, d := range drivers {
			names[d.ID] = d.FullName
		}
	}

	details := JobDetails{Job: job, Assignments: make([]AssignmentDetails, len(assignments))}
	for i, a := range assignments {
		details.Assignments[i] = AssignmentDetails{JobAssignment: a, DriverName: names[a.DriverID]}
	}
	return details, nil
}

// dedupeHelperIDs drops duplicates, blanks, and the main driver id if it was
// mistakenly included in the helper list.
func dedupeHelperIDs(helperIDs []string, mainDriverID string) []string {
	out := make([]string, 0, len(helperIDs))
	seen := make(map[string]bool, len(helperIDs))
	for _, id := range helperIDs {
		id = strings.TrimSpace(id)
		if id == "" || id == mainDriverID || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
