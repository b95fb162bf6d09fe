package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"plughub/internal/model"
	"plughub/internal/ratelimit"
	"plughub/internal/repository/mock"
	"plughub/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestDownloadService_CheckAdmission_Allowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plugins := mock.NewMockPluginRepository(ctrl)
	events := mock.NewMockDownloadEventRepository(ctrl)
	svc := service.NewDownloadService(plugins, events, nil)
	now := time.Now().UTC()

	plugins.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&model.Plugin{ID: 42}, nil)
	events.EXPECT().
		CountSince(gomock.Any(), int64(42), ratelimit.KindUser, "u1", now.Add(-24*time.Hour)).
		Return(9, nil)

	verdict, err := svc.CheckAdmission(context.Background(), 42, strPtr("u1"), nil, now)
	require.NoError(t, err)
	require.False(t, verdict.Limited)
}

func TestDownloadService_CheckAdmission_Limited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plugins := mock.NewMockPluginRepository(ctrl)
	events := mock.NewMockDownloadEventRepository(ctrl)
	svc := service.NewDownloadService(plugins, events, nil)
	now := time.Now().UTC()

	plugins.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&model.Plugin{ID: 42}, nil)
	events.EXPECT().
		CountSince(gomock.Any(), int64(42), ratelimit.KindAnonymous, gomock.Any(), gomock.Any()).
		Return(5, nil)

	verdict, err := svc.CheckAdmission(context.Background(), 42, nil, strPtr("203.0.113.5"), now)
	require.NoError(t, err)
	require.True(t, verdict.Limited)
	require.Contains(t, verdict.Reason, "5")
	require.Contains(t, verdict.Reason, "24 hours")
}

func TestDownloadService_CheckAdmission_AnonymousKeyIsHashed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plugins := mock.NewMockPluginRepository(ctrl)
	events := mock.NewMockDownloadEventRepository(ctrl)
	svc := service.NewDownloadService(plugins, events, nil)
	raw := "203.0.113.5"
	wantKey := *ratelimit.AnonymizeAddress(&raw)

	plugins.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&model.Plugin{ID: 42}, nil)
	events.EXPECT().
		CountSince(gomock.Any(), int64(42), ratelimit.KindAnonymous, wantKey, gomock.Any()).
		Return(0, nil)

	_, err := svc.CheckAdmission(context.Background(), 42, nil, &raw, time.Now())
	require.NoError(t, err)
}

func TestDownloadService_CheckAdmission_UnknownPlugin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plugins := mock.NewMockPluginRepository(ctrl)
	events := mock.NewMockDownloadEventRepository(ctrl)
	svc := service.NewDownloadService(plugins, events, nil)

	plugins.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)

	_, err := svc.CheckAdmission(context.Background(), 42, strPtr("u1"), nil, time.Now())
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestDownloadService_CheckAdmission_UnresolvableNeverCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plugins := mock.NewMockPluginRepository(ctrl)
	events := mock.NewMockDownloadEventRepository(ctrl)
	svc := service.NewDownloadService(plugins, events, nil)

	// No CountSince expectation: the engine must not consult the store.
	plugins.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&model.Plugin{ID: 42}, nil)

	verdict, err := svc.CheckAdmission(context.Background(), 42, nil, nil, time.Now())
	require.NoError(t, err)
	require.False(t, verdict.Limited)
}

func TestDownloadService_CheckAdmission_StoreErrorIsNotAVerdict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plugins := mock.NewMockPluginRepository(ctrl)
	events := mock.NewMockDownloadEventRepository(ctrl)
	svc := service.NewDownloadService(plugins, events, nil)
	storeErr := errors.New("database is locked")

	plugins.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&model.Plugin{ID: 42}, nil)
	events.EXPECT().
		CountSince(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, storeErr)

	_, err := svc.CheckAdmission(context.Background(), 42, strPtr("u1"), nil, time.Now())
	require.ErrorIs(t, err, storeErr)
	require.NotErrorIs(t, err, service.ErrNotFound)
}

func TestDownloadService_RecordDownload_User(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plugins := mock.NewMockPluginRepository(ctrl)
	events := mock.NewMockDownloadEventRepository(ctrl)
	svc := service.NewDownloadService(plugins, events, nil)
	now := time.Now().UTC()

	events.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event model.DownloadEvent) (*model.DownloadEvent, error) {
			require.Equal(t, int64(42), event.PluginID)
			require.NotNil(t, event.UserID)
			require.Equal(t, "u1", *event.UserID)
			require.Nil(t, event.AddressKey)
			require.Equal(t, now, event.OccurredAt)
			return &event, nil
		})

	err := svc.RecordDownload(context.Background(), 42, strPtr("u1"), strPtr("203.0.113.5"), now)
	require.NoError(t, err)
}

func TestDownloadService_RecordDownload_AnonymousStoresKeyNotAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plugins := mock.NewMockPluginRepository(ctrl)
	events := mock.NewMockDownloadEventRepository(ctrl)
	svc := service.NewDownloadService(plugins, events, nil)
	raw := "203.0.113.5"
	wantKey := *ratelimit.AnonymizeAddress(&raw)

	events.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event model.DownloadEvent) (*model.DownloadEvent, error) {
			require.Nil(t, event.UserID)
			require.NotNil(t, event.AddressKey)
			require.Equal(t, wantKey, *event.AddressKey)
			return &event, nil
		})

	err := svc.RecordDownload(context.Background(), 42, nil, &raw, time.Now())
	require.NoError(t, err)
}

func TestDownloadService_RecordDownload_UnresolvableIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plugins := mock.NewMockPluginRepository(ctrl)
	events := mock.NewMockDownloadEventRepository(ctrl)
	svc := service.NewDownloadService(plugins, events, nil)

	err := svc.RecordDownload(context.Background(), 42, nil, nil, time.Now())
	require.NoError(t, err)
}

func TestDownloadService_PruneEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plugins := mock.NewMockPluginRepository(ctrl)
	events := mock.NewMockDownloadEventRepository(ctrl)
	svc := service.NewDownloadService(plugins, events, nil)

	events.EXPECT().
		DeleteOlderThan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			require.WithinDuration(t, time.Now().UTC().Add(-30*24*time.Hour), cutoff, time.Minute)
			return 7, nil
		})

	removed, err := svc.PruneEvents(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	require.Equal(t, int64(7), removed)
}
