package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tollgate/internal/delivery/http/middleware"
	"tollgate/internal/delivery/http/validator"
	mockusecase "tollgate/internal/mocks/usecase"
	"tollgate/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDeviceHandler(t *testing.T) (*mockusecase.MockDeviceUsecase, *DeviceHandler) {
	t.Helper()

	mockDevice := mockusecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{
		DeviceUC: mockDevice,
		Logger:   testLogger(),
	})

	return mockDevice, h
}

func deviceContext(t *testing.T, userID uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	return c, rec
}

func TestRegisterInstanceID(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	mockDevice, h := newTestDeviceHandler(t)
	mockDevice.EXPECT().
		RegisterInstanceID(mock.Anything, userID, "instance-1").
		Return(nil).Once()

	c, rec := deviceContext(t, userID, `{"instance_id":"instance-1"}`)
	require.NoError(t, h.RegisterInstanceID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterInstanceID_MissingIDFailsValidation(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	_, h := newTestDeviceHandler(t)
	c, rec := deviceContext(t, userID, `{}`)

	require.NoError(t, h.RegisterInstanceID(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestRegisterInstanceID_UsecaseRejectsBlankID(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	mockDevice, h := newTestDeviceHandler(t)
	mockDevice.EXPECT().
		RegisterInstanceID(mock.Anything, userID, " ").
		Return(impl.ErrInstanceIDRequired).Once()

	c, rec := deviceContext(t, userID, `{"instance_id":" "}`)
	require.NoError(t, h.RegisterInstanceID(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUnregisterInstanceID(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	mockDevice, h := newTestDeviceHandler(t)
	mockDevice.EXPECT().
		UnregisterInstanceID(mock.Anything, userID, "instance-1").
		Return(nil).Once()

	c, rec := deviceContext(t, userID, `{"instance_id":"instance-1"}`)
	require.NoError(t, h.UnregisterInstanceID(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnregisterInstanceID_MissingUserIsUnauthorized(t *testing.T) {
	t.Parallel()

	_, h := newTestDeviceHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"instance_id":"instance-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.UnregisterInstanceID(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
