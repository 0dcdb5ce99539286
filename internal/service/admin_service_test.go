package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
	"github.com/Hetwork/swachhsathi-cf/internal/service"

	mock_service "github.com/Hetwork/swachhsathi-cf/internal/service/mocks"
)

func TestCreateNGO_ParsesCategories(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ngos := mock_service.NewMockNGOStore(ctrl)
	workers := mock_service.NewMockWorkerStore(ctrl)
	queue := mock_service.NewMockTriggerQueue(ctrl)

	var created *domain.NGO
	ngos.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ngo *domain.NGO) error {
			created = ngo
			return nil
		}).
		Times(1)

	svc := service.NewAdminService(ngos, workers, queue, discardLogger())

	req := domain.CreateNGORequest{
		Name:       "Green City",
		Categories: []string{"Plastic Waste", "Drain Cleaning"},
	}
	id, err := svc.CreateNGO(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created == nil || id != created.ID {
		t.Fatalf("returned id %q does not match stored NGO", id)
	}
	want := []domain.Category{domain.CategoryPlasticWaste, domain.CategoryDrainCleaning}
	if !reflect.DeepEqual(created.Categories, want) {
		t.Fatalf("unexpected categories: %v", created.Categories)
	}
}

func TestCreateWorker_EnqueuesCreatedEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ngos := mock_service.NewMockNGOStore(ctrl)
	workers := mock_service.NewMockWorkerStore(ctrl)
	queue := mock_service.NewMockTriggerQueue(ctrl)

	var created *domain.Worker
	workers.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w *domain.Worker) error {
			created = w
			if w.Role != domain.RoleWorker {
				t.Errorf("unexpected role: %s", w.Role)
			}
			if !w.IsActive {
				t.Errorf("new workers must start active")
			}
			return nil
		}).
		Times(1)
	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event domain.TriggerEvent) error {
			if event.Kind != domain.TriggerWorkerCreated {
				t.Errorf("unexpected event kind: %s", event.Kind)
			}
			if event.Worker == nil || event.Worker.FCMToken != "tok-1" {
				t.Errorf("event must carry the new worker: %+v", event.Worker)
			}
			return nil
		}).
		Times(1)

	svc := service.NewAdminService(ngos, workers, queue, discardLogger())

	uid, err := svc.CreateWorker(context.Background(), domain.CreateWorkerRequest{
		Name:     "Asha",
		NGOID:    "ngo-1",
		FCMToken: "tok-1",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created == nil || uid != created.UID {
		t.Fatalf("returned uid %q does not match stored worker", uid)
	}
}

func TestCreateWorker_StoreErrorSurfaces(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ngos := mock_service.NewMockNGOStore(ctrl)
	workers := mock_service.NewMockWorkerStore(ctrl)
	queue := mock_service.NewMockTriggerQueue(ctrl)

	wantErr := errors.New("db down")
	workers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(wantErr).Times(1)

	svc := service.NewAdminService(ngos, workers, queue, discardLogger())

	if _, err := svc.CreateWorker(context.Background(), domain.CreateWorkerRequest{Name: "Asha", NGOID: "ngo-1"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestSetWorkerActive_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ngos := mock_service.NewMockNGOStore(ctrl)
	workers := mock_service.NewMockWorkerStore(ctrl)
	queue := mock_service.NewMockTriggerQueue(ctrl)

	workers.EXPECT().SetActive(gomock.Any(), "w1", false).Return(nil).Times(1)

	svc := service.NewAdminService(ngos, workers, queue, discardLogger())

	if err := svc.SetWorkerActive(context.Background(), "w1", false); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
