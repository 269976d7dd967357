package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"boxertrucks/internal/domain/entities"
	"boxertrucks/internal/domain/pricing"
	mock_interfaces "boxertrucks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type jobUseCaseMocks struct {
	jobs        *mock_interfaces.MockIJobRepository
	quotes      *mock_interfaces.MockIQuoteRepository
	drivers     *mock_interfaces.MockIDriverRepository
	assignments *mock_interfaces.MockIJobAssignmentRepository
	clock       *mock_interfaces.MockITimeProvider
}

func newJobUseCaseForTest(t *testing.T) (*JobUseCase, jobUseCaseMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := jobUseCaseMocks{
		jobs:        mock_interfaces.NewMockIJobRepository(ctrl),
		quotes:      mock_interfaces.NewMockIQuoteRepository(ctrl),
		drivers:     mock_interfaces.NewMockIDriverRepository(ctrl),
		assignments: mock_interfaces.NewMockIJobAssignmentRepository(ctrl),
		clock:       mock_interfaces.NewMockITimeProvider(ctrl),
	}
	uc := NewJobUseCase(m.jobs, m.quotes, m.drivers, m.assignments, pricing.DefaultRates(), m.clock, nil)
	return uc, m
}

func TestJobUseCase_Create(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("missing fields", func(t *testing.T) {
		uc, _ := newJobUseCaseForTest(t)
		_, err := uc.Create(context.Background(), CreateJobCommand{QuoteID: "q-1", CustomerName: "  "})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.Create(context.Background(), validCreateJobCommand())
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)
		m.clock.EXPECT().Now().Return(now)
		m.jobs.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" || j.QuoteID != "q-1" {
					t.Fatalf("unexpected job: %+v", j)
				}
				if j.Status != entities.JobStatusPendingApproval {
					t.Fatalf("unexpected status: %s", j.Status)
				}
				return j, nil
			},
		)

		job, err := uc.Create(context.Background(), validCreateJobCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.CustomerName != "Maria Lima" {
			t.Fatalf("unexpected customer: %q", job.CustomerName)
		}
	})
}

func validCreateJobCommand() CreateJobCommand {
	return CreateJobCommand{
		QuoteID:        "q-1",
		CustomerName:   " Maria Lima ",
		CustomerPhone:  "555-0101",
		PickupAddress:  "100 Origin St",
		DropoffAddress: "200 Destination Ave",
	}
}

func TestJobUseCase_Assign(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	quote := entities.Quote{ID: "q-1", HomeSize: entities.HomeSizeTwoBedroom, Miles: 10}
	mainDriver := entities.Driver{ID: "drv-1", FullName: "Carlos", VehicleType: entities.VehicleTypeBoxTruck, IsActive: true}

	t.Run("invalid job id", func(t *testing.T) {
		uc, _ := newJobUseCaseForTest(t)
		if err := uc.Assign(context.Background(), "  ", "drv-1", nil); !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{}, nil)

		if err := uc.Assign(context.Background(), "j-1", "drv-1", nil); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("job already underway", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", Status: entities.JobStatusInProgress}, nil)

		if err := uc.Assign(context.Background(), "j-1", "drv-1", nil); !errors.Is(err, ErrJobNotAssignable) {
			t.Fatalf("expected ErrJobNotAssignable, got %v", err)
		}
	})

	t.Run("ineligible vehicle", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", QuoteID: "q-1", Status: entities.JobStatusPendingApproval}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		m.drivers.EXPECT().GetByID(gomock.Any(), "drv-1").Return(entities.Driver{ID: "drv-1", VehicleType: entities.VehicleTypeNone, IsActive: true}, nil)

		if err := uc.Assign(context.Background(), "j-1", "drv-1", nil); !errors.Is(err, ErrMainDriverInvalid) {
			t.Fatalf("expected ErrMainDriverInvalid, got %v", err)
		}
	})

	t.Run("inactive main driver", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", QuoteID: "q-1", Status: entities.JobStatusPendingApproval}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		m.drivers.EXPECT().GetByID(gomock.Any(), "drv-1").Return(entities.Driver{ID: "drv-1", VehicleType: entities.VehicleTypeBoxTruck, IsActive: false}, nil)

		if err := uc.Assign(context.Background(), "j-1", "drv-1", nil); !errors.Is(err, ErrMainDriverInvalid) {
			t.Fatalf("expected ErrMainDriverInvalid, got %v", err)
		}
	})

	t.Run("unresolvable helper", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", QuoteID: "q-1", Status: entities.JobStatusPendingApproval}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		m.drivers.EXPECT().GetByID(gomock.Any(), "drv-1").Return(mainDriver, nil)
		m.drivers.EXPECT().ListActiveByIDs(gomock.Any(), []string{"hlp-1", "hlp-2"}).Return([]entities.Driver{{ID: "hlp-1", IsActive: true}}, nil)

		if err := uc.Assign(context.Background(), "j-1", "drv-1", []string{"hlp-1", "hlp-2"}); !errors.Is(err, ErrHelpersInvalid) {
			t.Fatalf("expected ErrHelpersInvalid, got %v", err)
		}
	})

	t.Run("success writes rows and snapshot", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", QuoteID: "q-1", Status: entities.JobStatusPendingApproval}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		m.drivers.EXPECT().GetByID(gomock.Any(), "drv-1").Return(mainDriver, nil)
		// Duplicate and main-driver entries in the helper list are dropped.
		m.drivers.EXPECT().ListActiveByIDs(gomock.Any(), []string{"hlp-1"}).Return([]entities.Driver{{ID: "hlp-1", IsActive: true}}, nil)
		m.clock.EXPECT().Now().Return(now)

		m.assignments.EXPECT().ReplaceForJob(gomock.Any(), "j-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, rows []entities.JobAssignment) error {
				if len(rows) != 2 {
					t.Fatalf("expected 2 rows, got %d", len(rows))
				}
				if rows[0].Role != entities.AssignmentRoleMainDriver || rows[0].DriverID != "drv-1" {
					t.Fatalf("unexpected first row: %+v", rows[0])
				}
				if rows[0].ID == "" || rows[0].JobID != "j-1" || !rows[0].CreatedAt.Equal(now) {
					t.Fatalf("unexpected row identity: %+v", rows[0])
				}
				if rows[0].PayLow != 580 || rows[0].PayHigh != 692.5 {
					t.Fatalf("unexpected driver pay: %+v", rows[0])
				}
				if rows[1].Role != entities.AssignmentRoleHelper || rows[1].PayLow != 240 {
					t.Fatalf("unexpected helper row: %+v", rows[1])
				}
				return nil
			},
		)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusAssigned {
					t.Fatalf("unexpected status: %s", j.Status)
				}
				if j.CustomerTotalLow != 895 || j.CustomerTotalHigh != 1090 {
					t.Fatalf("unexpected totals: %+v", j)
				}
				if j.PlatformFeeLow != 75 || j.PlatformFeeHigh != 90 {
					t.Fatalf("unexpected fees: %+v", j)
				}
				return j, nil
			},
		)

		err := uc.Assign(context.Background(), "j-1", "drv-1", []string{"hlp-1", "hlp-1", "drv-1", " "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("re-assignment of an assigned job is allowed", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", QuoteID: "q-1", Status: entities.JobStatusAssigned}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		m.drivers.EXPECT().GetByID(gomock.Any(), "drv-1").Return(mainDriver, nil)
		m.drivers.EXPECT().ListActiveByIDs(gomock.Any(), []string{}).Return(nil, nil)
		m.clock.EXPECT().Now().Return(now)
		m.assignments.EXPECT().ReplaceForJob(gomock.Any(), "j-1", gomock.Any()).Return(nil)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
		)

		if err := uc.Assign(context.Background(), "j-1", "drv-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_Start(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("not startable", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", Status: entities.JobStatusPendingApproval}, nil)

		if err := uc.Start(context.Background(), "j-1"); !errors.Is(err, ErrJobNotStartable) {
			t.Fatalf("expected ErrJobNotStartable, got %v", err)
		}
	})

	t.Run("success stamps the clock", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", Status: entities.JobStatusAssigned}, nil)
		m.clock.EXPECT().Now().Return(now)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusInProgress {
					t.Fatalf("unexpected status: %s", j.Status)
				}
				if j.StartedAt == nil || !j.StartedAt.Equal(now) {
					t.Fatalf("expected started at %v, got %+v", now, j.StartedAt)
				}
				return j, nil
			},
		)

		if err := uc.Start(context.Background(), "j-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_Complete(t *testing.T) {
	startedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	completedAt := startedAt.Add(2*time.Hour + 10*time.Minute)
	quote := entities.Quote{ID: "q-1", HomeSize: entities.HomeSizeTwoBedroom, Miles: 10}

	inProgressJob := func() entities.Job {
		s := startedAt
		return entities.Job{ID: "j-1", QuoteID: "q-1", Status: entities.JobStatusInProgress, StartedAt: &s}
	}

	t.Run("not in progress", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", Status: entities.JobStatusAssigned}, nil)

		if err := uc.Complete(context.Background(), "j-1"); !errors.Is(err, ErrJobNotInProgress) {
			t.Fatalf("expected ErrJobNotInProgress, got %v", err)
		}
	})

	t.Run("missing start time", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", Status: entities.JobStatusInProgress}, nil)

		if err := uc.Complete(context.Background(), "j-1"); !errors.Is(err, ErrJobMissingStart) {
			t.Fatalf("expected ErrJobMissingStart, got %v", err)
		}
	})

	t.Run("no assignments still completes", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(inProgressJob(), nil)
		m.clock.EXPECT().Now().Return(completedAt)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		m.assignments.EXPECT().ListByJobID(gomock.Any(), "j-1").Return(nil, nil)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusCompleted || j.CompletedAt == nil {
					t.Fatalf("unexpected job: %+v", j)
				}
				if j.CustomerTotalLow != 0 {
					t.Fatalf("financial snapshot should be untouched: %+v", j)
				}
				return j, nil
			},
		)

		if err := uc.Complete(context.Background(), "j-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("settles assignments against elapsed time", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		existing := []entities.JobAssignment{
			{ID: "a-1", JobID: "j-1", DriverID: "drv-1", Role: entities.AssignmentRoleMainDriver, HoursLow: 4, HoursHigh: 5.5},
			{ID: "a-2", JobID: "j-1", DriverID: "hlp-1", Role: entities.AssignmentRoleHelper, HoursLow: 4, HoursHigh: 5.5},
		}

		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(inProgressJob(), nil)
		m.clock.EXPECT().Now().Return(completedAt)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(quote, nil)
		m.assignments.EXPECT().ListByJobID(gomock.Any(), "j-1").Return(existing, nil)
		m.assignments.EXPECT().UpdateMany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rows []entities.JobAssignment) error {
				if len(rows) != 2 {
					t.Fatalf("expected 2 rows, got %d", len(rows))
				}
				if rows[0].PayLow != 505 || rows[0].PayHigh != 505 {
					t.Fatalf("unexpected driver settlement: %+v", rows[0])
				}
				if rows[1].PayLow != 161.25 {
					t.Fatalf("unexpected helper settlement: %+v", rows[1])
				}
				if rows[0].HoursLow != 2.2 || rows[0].HoursHigh != 2.2 {
					t.Fatalf("expected hours collapsed to 2.2: %+v", rows[0])
				}
				return nil
			},
		)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.CustomerTotalLow != 725 || j.CustomerTotalHigh != 725 {
					t.Fatalf("unexpected totals: %+v", j)
				}
				if j.PlatformFeeLow != 58.75 || j.PlatformFeeHigh != 58.75 {
					t.Fatalf("unexpected fees: %+v", j)
				}
				if !j.CompletedAt.Equal(completedAt) {
					t.Fatalf("unexpected completed at: %v", j.CompletedAt)
				}
				return j, nil
			},
		)

		if err := uc.Complete(context.Background(), "j-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_Cancel(t *testing.T) {
	t.Run("terminal job", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", Status: entities.JobStatusCompleted}, nil)

		if err := uc.Cancel(context.Background(), "j-1"); !errors.Is(err, ErrJobNotCancellable) {
			t.Fatalf("expected ErrJobNotCancellable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", Status: entities.JobStatusInProgress}, nil)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Status != entities.JobStatusCancelled {
					t.Fatalf("unexpected status: %s", j.Status)
				}
				return j, nil
			},
		)

		if err := uc.Cancel(context.Background(), "j-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_GetDetails(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{}, nil)

		_, err := uc.GetDetails(context.Background(), "j-1")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("resolves driver names", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", Status: entities.JobStatusAssigned}, nil)
		m.assignments.EXPECT().ListByJobID(gomock.Any(), "j-1").Return([]entities.JobAssignment{
			{ID: "a-1", DriverID: "drv-1", Role: entities.AssignmentRoleMainDriver},
			{ID: "a-2", DriverID: "hlp-1", Role: entities.AssignmentRoleHelper},
		}, nil)
		m.drivers.EXPECT().ListByIDs(gomock.Any(), []string{"drv-1", "hlp-1"}).Return([]entities.Driver{
			{ID: "drv-1", FullName: "Carlos"},
			{ID: "hlp-1", FullName: "Ana"},
		}, nil)

		details, err := uc.GetDetails(context.Background(), "j-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(details.Assignments) != 2 {
			t.Fatalf("expected 2 assignments, got %d", len(details.Assignments))
		}
		if details.Assignments[0].DriverName != "Carlos" || details.Assignments[1].DriverName != "Ana" {
			t.Fatalf("unexpected names: %+v", details.Assignments)
		}
	})

	t.Run("no assignments", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "j-1").Return(entities.Job{ID: "j-1", Status: entities.JobStatusPendingApproval}, nil)
		m.assignments.EXPECT().ListByJobID(gomock.Any(), "j-1").Return(nil, nil)

		details, err := uc.GetDetails(context.Background(), "j-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(details.Assignments) != 0 {
			t.Fatalf("expected no assignments, got %+v", details.Assignments)
		}
	})
}
