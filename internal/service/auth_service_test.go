package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/jwt"
)

func newAuthFixture(t *testing.T) (*mockUserRepo, AuthService, *jwt.Manager) {
	t.Helper()
	repo := newMockUserRepo()
	tokens := jwt.NewManager("test-secret", time.Hour)

	user := &model.User{
		Username: "cashier1",
		Email:    "cashier1@example.com",
		Role:     model.RoleCashier,
		IsActive: true,
	}
	require.NoError(t, user.SetPassword("correct horse"))
	repo.addUser(user)

	return repo, NewAuthService(repo, tokens), tokens
}

func TestLogin_Success(t *testing.T) {
	_, svc, tokens := newAuthFixture(t)

	result, err := svc.Login(&LoginRequest{Username: "cashier1", Password: "correct horse"})

	require.NoError(t, err)
	assert.Equal(t, "cashier1", result.User.Username)

	claims, err := tokens.Validate(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "cashier1", claims.Username)
	assert.Equal(t, model.RoleCashier, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, svc, _ := newAuthFixture(t)

	_, err := svc.Login(&LoginRequest{Username: "cashier1", Password: "wrong"})

	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeUnauthorized))
}

func TestLogin_UnknownUser(t *testing.T) {
	_, svc, _ := newAuthFixture(t)

	_, err := svc.Login(&LoginRequest{Username: "nobody", Password: "whatever"})

	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeUnauthorized))
}

func TestLogin_InactiveUser(t *testing.T) {
	repo, svc, _ := newAuthFixture(t)
	for _, u := range repo.users {
		u.IsActive = false
	}

	_, err := svc.Login(&LoginRequest{Username: "cashier1", Password: "correct horse"})

	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeUnauthorized))
}

func TestLogin_MissingFields(t *testing.T) {
	_, svc, _ := newAuthFixture(t)

	_, err := svc.Login(&LoginRequest{Username: "", Password: ""})

	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}
