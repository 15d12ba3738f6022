package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-server/internal/mocks"
	"github.com/taskboard/taskboard-server/internal/model"
	"github.com/taskboard/taskboard-server/internal/testutil"
)

func TestUser_GetProfile(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	user := model.User{ID: uuid.New(), Username: "alice"}

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	s := NewUser(userStore, testutil.MakeNoopLogger())

	got, err := s.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUser_GetProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	id := uuid.New()

	userStore.On("GetByID", mock.Anything, id).Return(model.User{}, model.ErrNotFound)

	s := NewUser(userStore, testutil.MakeNoopLogger())

	_, err := s.GetProfile(ctx, id)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestUser_UpdateProfile_Username(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	user := model.User{ID: uuid.New(), Username: "alice"}

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	userStore.On("ExistsByUsername", mock.Anything, "alice2").Return(false, nil)
	userStore.On("Update", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Username == "alice2"
	})).Return(model.User{ID: user.ID, Username: "alice2"}, nil)

	s := NewUser(userStore, testutil.MakeNoopLogger())

	username := "alice2"
	got, err := s.UpdateProfile(ctx, user.ID, UpdateProfileParams{Username: &username})
	require.NoError(t, err)
	assert.Equal(t, "alice2", got.Username)
}

func TestUser_UpdateProfile_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	user := model.User{ID: uuid.New(), Username: "alice"}

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	userStore.On("ExistsByUsername", mock.Anything, "bob").Return(true, nil)

	s := NewUser(userStore, testutil.MakeNoopLogger())

	username := "bob"
	_, err := s.UpdateProfile(ctx, user.ID, UpdateProfileParams{Username: &username})
	require.ErrorIs(t, err, model.ErrUsernameTaken)
	userStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUser_UpdateProfile_SameUsernameSkipsCheck(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	user := model.User{ID: uuid.New(), Username: "alice"}

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	userStore.On("Update", mock.Anything, mock.Anything).Return(user, nil)

	s := NewUser(userStore, testutil.MakeNoopLogger())

	username := "alice"
	_, err := s.UpdateProfile(ctx, user.ID, UpdateProfileParams{Username: &username})
	require.NoError(t, err)
	userStore.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
}

func TestUser_UpdateProfile_Password(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	user := model.User{ID: uuid.New(), Username: "alice", PasswordHash: "old"}

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	userStore.On("Update", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("newpass")) == nil
	})).Return(user, nil)

	s := NewUser(userStore, testutil.MakeNoopLogger())

	password := "newpass"
	_, err := s.UpdateProfile(ctx, user.ID, UpdateProfileParams{Password: &password})
	require.NoError(t, err)
	userStore.AssertExpectations(t)
}

func TestUser_ListAssignable(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	users := []model.User{{ID: uuid.New(), Username: "alice", Role: model.RoleUser}}

	userStore.On("GetByRole", mock.Anything, model.RoleUser).Return(users, nil)

	s := NewUser(userStore, testutil.MakeNoopLogger())

	got, err := s.ListAssignable(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUser_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	id := uuid.New()

	userStore.On("Delete", mock.Anything, id).Return(model.ErrNotFound)

	s := NewUser(userStore, testutil.MakeNoopLogger())
	require.ErrorIs(t, s.Delete(ctx, id), model.ErrNotFound)
}
