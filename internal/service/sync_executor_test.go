package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-card-keeper/internal/adapter"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/mock"
	"github.com/MKhiriev/go-card-keeper/internal/service"
	"github.com/MKhiriev/go-card-keeper/models"
)

var testCred = models.SyncCredential{User: "user", Key: "key", Endpoint: "http://sync.test"}

func newTestExecutor(t *testing.T, cred models.SyncCredential) (*service.SyncExecutor, *mock.MockEngine, *service.Coordinator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	eng := mock.NewMockEngine(ctrl)
	coordinator := service.NewCoordinator(nil)

	return service.NewSyncExecutor(coordinator, eng, cred, logger.Nop()), eng, coordinator
}

func TestAttemptSync_DisabledWithoutCredential(t *testing.T) {
	executor, _, _ := newTestExecutor(t, models.SyncCredential{})

	outcome, err := executor.AttemptSync(context.Background(), service.AutoSync())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeDisabled, outcome.Code)
}

func TestAttemptSync_NoChangesClearsFlag(t *testing.T) {
	executor, eng, coordinator := newTestExecutor(t, testCred)
	coordinator.MarkDirty()

	eng.EXPECT().SyncStatus(gomock.Any(), gomock.Any(), testCred).Return(models.SyncStatusNoChanges, nil)

	outcome, err := executor.AttemptSync(context.Background(), service.AutoSync())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNoChanges, outcome.Code)
	assert.Equal(t, models.SyncStatusNoChanges, outcome.Status)
	assert.False(t, coordinator.Dirty())
}

func TestAttemptSync_IncrementalSuccess(t *testing.T) {
	executor, eng, coordinator := newTestExecutor(t, testCred)
	coordinator.MarkDirty()

	gomock.InOrder(
		eng.EXPECT().SyncStatus(gomock.Any(), gomock.Any(), testCred).Return(models.SyncStatusNormal, nil),
		eng.EXPECT().IncrementalSync(gomock.Any(), gomock.Any(), testCred).Return(true, nil),
	)

	outcome, err := executor.AttemptSync(context.Background(), service.AutoSync())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSynced, outcome.Code)
	assert.False(t, coordinator.Dirty(), "a completed sync must clear the mutation flag")
}

func TestAttemptSync_TransportFailuresKeepFlag(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantOutcome models.SyncOutcomeCode
	}{
		{name: "auth rejected", err: adapter.ErrSyncAuth, wantOutcome: models.OutcomeAuthError},
		{name: "network down", err: adapter.ErrSyncNetwork, wantOutcome: models.OutcomeNetworkError},
		{name: "server broken", err: adapter.ErrSyncServer, wantOutcome: models.OutcomeServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			executor, eng, coordinator := newTestExecutor(t, testCred)
			coordinator.MarkDirty()

			eng.EXPECT().SyncStatus(gomock.Any(), gomock.Any(), testCred).Return(models.SyncStatus(""), test.err)

			outcome, err := executor.AttemptSync(context.Background(), service.AutoSync())
			require.NoError(t, err)
			assert.Equal(t, test.wantOutcome, outcome.Code)
			assert.NotEmpty(t, outcome.Detail)
			assert.True(t, coordinator.Dirty(), "a failed sync must keep the mutation flag set")
		})
	}
}

func TestAttemptSync_IncrementalFailureKeepsFlag(t *testing.T) {
	executor, eng, coordinator := newTestExecutor(t, testCred)
	coordinator.MarkDirty()

	gomock.InOrder(
		eng.EXPECT().SyncStatus(gomock.Any(), gomock.Any(), testCred).Return(models.SyncStatusNormal, nil),
		eng.EXPECT().IncrementalSync(gomock.Any(), gomock.Any(), testCred).Return(false, adapter.ErrSyncNetwork),
	)

	outcome, err := executor.AttemptSync(context.Background(), service.AutoSync())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNetworkError, outcome.Code)
	assert.True(t, coordinator.Dirty())
}

func TestAttemptSync_FullSyncNeverAutoSelected(t *testing.T) {
	for _, status := range []models.SyncStatus{
		models.SyncStatusFullSync,
		models.SyncStatusFullDownload,
		models.SyncStatusFullUpload,
	} {
		t.Run(string(status), func(t *testing.T) {
			executor, eng, coordinator := newTestExecutor(t, testCred)
			coordinator.MarkDirty()

			// no FullUpload/FullDownload expectations: calling either fails the test
			eng.EXPECT().SyncStatus(gomock.Any(), gomock.Any(), testCred).Return(status, nil)

			outcome, err := executor.AttemptSync(context.Background(), service.AutoSync())
			require.NoError(t, err)
			assert.Equal(t, models.OutcomeFullSyncRequired, outcome.Code)
			assert.Equal(t, status, outcome.Status)
			assert.True(t, coordinator.Dirty())
		})
	}
}

func TestAttemptSync_ManualFullUpload(t *testing.T) {
	executor, eng, coordinator := newTestExecutor(t, testCred)
	coordinator.MarkDirty()

	gomock.InOrder(
		eng.EXPECT().SyncStatus(gomock.Any(), gomock.Any(), testCred).Return(models.SyncStatusFullSync, nil),
		eng.EXPECT().FullUpload(gomock.Any(), gomock.Any(), testCred).Return(nil),
	)

	outcome, err := executor.AttemptSync(context.Background(), service.ManualFullSync(models.SyncDirectionUpload))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSynced, outcome.Code)
	assert.False(t, coordinator.Dirty())
}

func TestAttemptSync_ManualFullDownload(t *testing.T) {
	executor, eng, coordinator := newTestExecutor(t, testCred)
	coordinator.MarkDirty()

	gomock.InOrder(
		eng.EXPECT().SyncStatus(gomock.Any(), gomock.Any(), testCred).Return(models.SyncStatusFullDownload, nil),
		eng.EXPECT().FullDownload(gomock.Any(), gomock.Any(), testCred).Return(nil),
	)

	outcome, err := executor.AttemptSync(context.Background(), service.ManualFullSync(models.SyncDirectionDownload))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSynced, outcome.Code)
	assert.False(t, coordinator.Dirty())
}

func TestAttemptSync_ManualFullWithoutDirection(t *testing.T) {
	executor, eng, coordinator := newTestExecutor(t, testCred)
	coordinator.MarkDirty()

	eng.EXPECT().SyncStatus(gomock.Any(), gomock.Any(), testCred).Return(models.SyncStatusFullSync, nil)

	outcome, err := executor.AttemptSync(context.Background(), service.ManualFullSync(""))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFullSyncRequired, outcome.Code)
	assert.True(t, coordinator.Dirty(), "refusing to pick a direction must not touch anything")
}

func TestAttemptSync_ManualFullWhenNotRequiredIsNoop(t *testing.T) {
	executor, eng, _ := newTestExecutor(t, testCred)

	// a normal status must not trigger a destructive full sync
	eng.EXPECT().SyncStatus(gomock.Any(), gomock.Any(), testCred).Return(models.SyncStatusNormal, nil)

	outcome, err := executor.AttemptSync(context.Background(), service.ManualFullSync(models.SyncDirectionUpload))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNoChanges, outcome.Code)
}

func TestAttemptSync_LocalFailureIsAnError(t *testing.T) {
	executor, eng, _ := newTestExecutor(t, testCred)

	localErr := errors.New("database is locked")
	eng.EXPECT().SyncStatus(gomock.Any(), gomock.Any(), testCred).Return(models.SyncStatus(""), localErr)

	_, err := executor.AttemptSync(context.Background(), service.AutoSync())
	assert.ErrorIs(t, err, localErr)
}
