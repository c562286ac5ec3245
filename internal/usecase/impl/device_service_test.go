package impl

import (
	"context"
	"testing"

	mockservice "tollgate/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeviceService(t *testing.T) (*mockservice.MockEntitlementBackend, *deviceService) {
	t.Helper()

	mockBackend := mockservice.NewMockEntitlementBackend(t)
	svc := NewDeviceService(DeviceServiceParams{
		Backend: mockBackend,
		Logger:  testLogger(),
	})

	return mockBackend, svc.(*deviceService)
}

func TestDeviceService_RegisterInstanceID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	mockBackend, svc := newTestDeviceService(t)
	mockBackend.EXPECT().RegisterDevice(ctx, userID, "instance-1").Return(nil).Once()

	require.NoError(t, svc.RegisterInstanceID(ctx, userID, "instance-1"))
}

func TestDeviceService_RegisterInstanceID_Empty(t *testing.T) {
	t.Parallel()

	_, svc := newTestDeviceService(t)

	err := svc.RegisterInstanceID(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, ErrInstanceIDRequired)
}

func TestDeviceService_RegisterInstanceID_BackendError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	mockBackend, svc := newTestDeviceService(t)
	mockBackend.EXPECT().RegisterDevice(ctx, userID, "instance-1").
		Return(errors.New("backend down")).Once()

	err := svc.RegisterInstanceID(ctx, userID, "instance-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register instance ID")
}

func TestDeviceService_UnregisterInstanceID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	mockBackend, svc := newTestDeviceService(t)
	mockBackend.EXPECT().UnregisterDevice(ctx, userID, "instance-1").Return(nil).Once()

	require.NoError(t, svc.UnregisterInstanceID(ctx, userID, "instance-1"))
}

func TestDeviceService_UnregisterInstanceID_Empty(t *testing.T) {
	t.Parallel()

	_, svc := newTestDeviceService(t)

	err := svc.UnregisterInstanceID(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, ErrInstanceIDRequired)
}
