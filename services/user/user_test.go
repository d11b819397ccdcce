package user

import (
	"context"
	"errors"
	"testing"

	"dentalcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryUsers struct {
	users map[string]*models.User
}

func (m *memoryUsers) Upsert(_ context.Context, email string, profile models.UserProfile) (models.UpsertResult, error) {
	if u, ok := m.users[email]; ok {
		if profile.Name != "" {
			u.Name = profile.Name
		}
		return models.UpsertResult{Matched: 1, Modified: 1}, nil
	}
	m.users[email] = &models.User{Email: email, Name: profile.Name}
	return models.UpsertResult{Upserted: true}, nil
}

func (m *memoryUsers) GetAll(_ context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memoryUsers) SetRole(_ context.Context, email, role string) (bool, error) {
	u, ok := m.users[email]
	if !ok {
		return false, nil
	}
	u.Role = role
	return true, nil
}

type stubTokens struct{ err error }

func (s stubTokens) GenerateToken(email string) (string, error) {
	return "token-" + email, s.err
}

func newUserService() (*DefaultUserService, *memoryUsers) {
	repo := &memoryUsers{users: map[string]*models.User{}}
	return &DefaultUserService{Repo: repo, Tokens: stubTokens{}, Logger: zap.NewNop()}, repo
}

func TestSignIn(t *testing.T) {
	svc, repo := newUserService()

	res, token, err := svc.SignIn(context.Background(), " Ann@Example.com ", models.UserProfile{Name: "Ann"})
	require.NoError(t, err)

	assert.True(t, res.Upserted)
	assert.Equal(t, "token-ann@example.com", token)
	assert.Equal(t, "Ann", repo.users["ann@example.com"].Name)

	res, _, err = svc.SignIn(context.Background(), "ann@example.com", models.UserProfile{})
	require.NoError(t, err)
	assert.False(t, res.Upserted)
	assert.Equal(t, "Ann", repo.users["ann@example.com"].Name)
}

func TestSignInErrors(t *testing.T) {
	svc, _ := newUserService()

	_, _, err := svc.SignIn(context.Background(), "  ", models.UserProfile{})
	assert.Error(t, err)

	svc.Tokens = stubTokens{err: errors.New("no secret")}
	_, _, err = svc.SignIn(context.Background(), "ann@example.com", models.UserProfile{})
	assert.Error(t, err)
}

func TestMakeAdmin(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.MakeAdmin(ctx, "ghost@example.com"), ErrUserNotFound)

	_, _, err := svc.SignIn(ctx, "ann@example.com", models.UserProfile{})
	require.NoError(t, err)

	isAdmin, err := svc.IsAdmin(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	require.NoError(t, svc.MakeAdmin(ctx, "ann@example.com"))
	isAdmin, err = svc.IsAdmin(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestGetRoleUnknownUserIsPatient(t *testing.T) {
	svc, _ := newUserService()

	role, err := svc.GetRole(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, role)
}
