package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
)

func validSetupRequest() *SetupRequest {
	return &SetupRequest{
		StoreName:     "Corner Deli",
		Currency:      "eur",
		AdminUsername: "owner",
		AdminEmail:    "Owner@Example.com",
		AdminPassword: "longenough",
	}
}

func TestSetupStatus_FreshInstall(t *testing.T) {
	svc := NewSetupService(&mockSettingRepo{}, newMockUserRepo())

	status, err := svc.Status()

	require.NoError(t, err)
	assert.False(t, status.Completed)
}

func TestSetupInitialize_CreatesAdminAndSettings(t *testing.T) {
	settings := &mockSettingRepo{}
	users := newMockUserRepo()
	svc := NewSetupService(settings, users)

	admin, err := svc.Initialize(validSetupRequest())

	require.NoError(t, err)
	assert.Equal(t, "owner", admin.Username)
	assert.Equal(t, "owner@example.com", admin.Email)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	require.NotNil(t, settings.setting)
	assert.True(t, settings.setting.SetupCompleted)
	assert.Equal(t, "EUR", settings.setting.Currency)

	status, err := svc.Status()
	require.NoError(t, err)
	assert.True(t, status.Completed)
}

func TestSetupInitialize_RejectedWhenUsersExist(t *testing.T) {
	users := newMockUserRepo()
	users.addUser(&model.User{Username: "existing", Email: "e@example.com"})
	svc := NewSetupService(&mockSettingRepo{}, users)

	_, err := svc.Initialize(validSetupRequest())

	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeConflict))
}

func TestSetupInitialize_WeakPasswordRejected(t *testing.T) {
	svc := NewSetupService(&mockSettingRepo{}, newMockUserRepo())

	req := validSetupRequest()
	req.AdminPassword = "short"
	_, err := svc.Initialize(req)

	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}
