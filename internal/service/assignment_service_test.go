package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/internal/service"

	mock_service "github.com/Hetwork/swachhsathi-cf/internal/service/mocks"
)

type assignmentMocks struct {
	reports *mock_service.MockReportStore
	workers *mock_service.MockWorkerStore
	ngos    *mock_service.MockNGOFinder
	queue   *mock_service.MockTriggerQueue
}

func newAssignment(ctrl *gomock.Controller) (service.AssignmentHandler, assignmentMocks) {
	m := assignmentMocks{
		reports: mock_service.NewMockReportStore(ctrl),
		workers: mock_service.NewMockWorkerStore(ctrl),
		ngos:    mock_service.NewMockNGOFinder(ctrl),
		queue:   mock_service.NewMockTriggerQueue(ctrl),
	}
	return service.NewAssignmentService(m.reports, m.workers, m.ngos, m.queue, discardLogger()), m
}

func locatedWorker(uid, ngoID string, lat, lng float64) *domain.Worker {
	return &domain.Worker{
		UID:             uid,
		Name:            "Worker " + uid,
		Role:            domain.RoleWorker,
		NGOID:           ngoID,
		IsActive:        true,
		CurrentLocation: &domain.Location{Latitude: lat, Longitude: lng},
	}
}

func TestHandleReportCreated_AssignsNearestWorker(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAssignment(ctrl)

	report := &domain.Report{
		ID:       uuid.New(),
		Location: &domain.Location{Latitude: 12.9716, Longitude: 77.5946},
		Category: domain.CategoryPlasticWaste,
		Status:   domain.ReportCreated,
		UserID:   "citizen-1",
	}

	near := locatedWorker("worker-a", "ngo-1", 12.99, 77.60)  // ~2 km
	far := locatedWorker("worker-b", "ngo-2", 13.0827, 80.27) // Chennai, ~290 km

	m.ngos.EXPECT().ByCategory(gomock.Any(), domain.CategoryPlasticWaste).Return([]string{"ngo-1", "ngo-2"}, nil).Times(1)
	m.workers.EXPECT().ListActiveByNGOs(gomock.Any(), []string{"ngo-1", "ngo-2"}).Return([]*domain.Worker{near, far}, nil).Times(1)
	m.reports.EXPECT().Assign(gomock.Any(), report.ID, "worker-a", "ngo-1", gomock.Any()).Return(nil).Times(1)
	m.reports.EXPECT().
		AppendStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.StatusHistory) error {
			if entry.ReportID != report.ID {
				t.Errorf("history for wrong report: %s", entry.ReportID)
			}
			if entry.Status != domain.ReportAssigned {
				t.Errorf("unexpected history status: %s", entry.Status)
			}
			if entry.WorkerID != "worker-a" {
				t.Errorf("unexpected history worker: %s", entry.WorkerID)
			}
			return nil
		}).
		Times(1)
	m.queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event domain.TriggerEvent) error {
			if event.Kind != domain.TriggerReportUpdated {
				t.Errorf("unexpected event kind: %s", event.Kind)
			}
			if event.Before == nil || event.Before.AssignedTo != "" {
				t.Errorf("before snapshot must be unassigned: %+v", event.Before)
			}
			if event.After == nil || event.After.AssignedTo != "worker-a" || event.After.NGOID != "ngo-1" {
				t.Errorf("after snapshot must carry the assignment: %+v", event.After)
			}
			if event.After.Status != domain.ReportAssigned {
				t.Errorf("after snapshot must be assigned: %s", event.After.Status)
			}
			return nil
		}).
		Times(1)

	if err := svc.HandleReportCreated(context.Background(), report); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestHandleReportCreated_SkipsWorkersWithoutLocation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAssignment(ctrl)

	report := &domain.Report{
		ID:       uuid.New(),
		Location: &domain.Location{Latitude: 12.97, Longitude: 77.59},
		Category: domain.CategoryGarbageCollection,
	}

	unlocated := &domain.Worker{UID: "worker-x", Role: domain.RoleWorker, NGOID: "ngo-1", IsActive: true}
	located := locatedWorker("worker-y", "ngo-1", 12.98, 77.58)

	m.ngos.EXPECT().ByCategory(gomock.Any(), domain.CategoryGarbageCollection).Return([]string{"ngo-1"}, nil).Times(1)
	m.workers.EXPECT().ListActiveByNGOs(gomock.Any(), []string{"ngo-1"}).Return([]*domain.Worker{unlocated, located}, nil).Times(1)
	m.reports.EXPECT().Assign(gomock.Any(), report.ID, "worker-y", "ngo-1", gomock.Any()).Return(nil).Times(1)
	m.reports.EXPECT().AppendStatus(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	if err := svc.HandleReportCreated(context.Background(), report); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestHandleReportCreated_NoLocation_NoOp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newAssignment(ctrl)

	report := &domain.Report{ID: uuid.New(), Category: domain.CategoryPlasticWaste}
	if err := svc.HandleReportCreated(context.Background(), report); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestHandleReportCreated_NoCategory_NoOp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newAssignment(ctrl)

	report := &domain.Report{ID: uuid.New(), Location: &domain.Location{Latitude: 1, Longitude: 1}}
	if err := svc.HandleReportCreated(context.Background(), report); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestHandleReportCreated_NoNGOForCategory_NoOp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAssignment(ctrl)

	report := &domain.Report{
		ID:       uuid.New(),
		Location: &domain.Location{Latitude: 1, Longitude: 1},
		Category: domain.CategoryDeadAnimals,
	}

	m.ngos.EXPECT().ByCategory(gomock.Any(), domain.CategoryDeadAnimals).Return([]string{}, nil).Times(1)

	if err := svc.HandleReportCreated(context.Background(), report); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestHandleReportCreated_NoLocatedWorker_NoOp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAssignment(ctrl)

	report := &domain.Report{
		ID:       uuid.New(),
		Location: &domain.Location{Latitude: 1, Longitude: 1},
		Category: domain.CategoryOrganicWaste,
	}

	unlocated := &domain.Worker{UID: "worker-x", Role: domain.RoleWorker, NGOID: "ngo-1", IsActive: true}

	m.ngos.EXPECT().ByCategory(gomock.Any(), domain.CategoryOrganicWaste).Return([]string{"ngo-1"}, nil).Times(1)
	m.workers.EXPECT().ListActiveByNGOs(gomock.Any(), []string{"ngo-1"}).Return([]*domain.Worker{unlocated}, nil).Times(1)

	if err := svc.HandleReportCreated(context.Background(), report); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestHandleReportCreated_NGOLookupErrorSurfaces(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAssignment(ctrl)

	report := &domain.Report{
		ID:       uuid.New(),
		Location: &domain.Location{Latitude: 1, Longitude: 1},
		Category: domain.CategoryPlasticWaste,
	}

	wantErr := errors.New("db down")
	m.ngos.EXPECT().ByCategory(gomock.Any(), domain.CategoryPlasticWaste).Return(nil, wantErr).Times(1)

	if err := svc.HandleReportCreated(context.Background(), report); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestHandleReportCreated_EnqueueFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAssignment(ctrl)

	report := &domain.Report{
		ID:       uuid.New(),
		Location: &domain.Location{Latitude: 12.97, Longitude: 77.59},
		Category: domain.CategoryPlasticWaste,
	}
	worker := locatedWorker("worker-a", "ngo-1", 12.98, 77.58)

	m.ngos.EXPECT().ByCategory(gomock.Any(), domain.CategoryPlasticWaste).Return([]string{"ngo-1"}, nil).Times(1)
	m.workers.EXPECT().ListActiveByNGOs(gomock.Any(), []string{"ngo-1"}).Return([]*domain.Worker{worker}, nil).Times(1)
	m.reports.EXPECT().Assign(gomock.Any(), report.ID, "worker-a", "ngo-1", gomock.Any()).Return(nil).Times(1)
	m.reports.EXPECT().AppendStatus(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	if err := svc.HandleReportCreated(context.Background(), report); err != nil {
		t.Fatalf("assignment must stand when only the event is lost: %v", err)
	}
}
