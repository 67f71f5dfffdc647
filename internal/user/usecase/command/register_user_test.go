package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastrika/storefront/internal/user/domain"
)

type fakeUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) FindAll(context.Context, string, int, int) ([]domain.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Stats(context.Context) (*domain.UserStats, error) { return nil, nil }

func validRegistration() RegisterUserCommand {
	return RegisterUserCommand{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "secret123",
		FullName: "Asha Rao",
	}
}

func TestRegisterUserHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("registers an active user with hashed password", func(t *testing.T) {
		repo := newFakeUserRepo()
		handler := NewRegisterUserHandler(repo)

		user, err := handler.Handle(ctx, validRegistration())
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "secret123", user.Password)
	})

	t.Run("rejects duplicate username and email", func(t *testing.T) {
		repo := newFakeUserRepo()
		handler := NewRegisterUserHandler(repo)

		_, err := handler.Handle(ctx, validRegistration())
		require.NoError(t, err)

		dup := validRegistration()
		dup.Email = "other@example.com"
		_, err = handler.Handle(ctx, dup)
		assert.ErrorContains(t, err, "username")

		dup = validRegistration()
		dup.Username = "other"
		_, err = handler.Handle(ctx, dup)
		assert.ErrorContains(t, err, "email")
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		handler := NewRegisterUserHandler(newFakeUserRepo())

		cmd := validRegistration()
		cmd.Password = "12345"
		_, err := handler.Handle(ctx, cmd)
		assert.Error(t, err)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		handler := NewRegisterUserHandler(newFakeUserRepo())

		cmd := validRegistration()
		cmd.Role = "superuser"
		_, err := handler.Handle(ctx, cmd)
		assert.Error(t, err)
	})

	t.Run("admin role can be requested explicitly", func(t *testing.T) {
		handler := NewRegisterUserHandler(newFakeUserRepo())

		cmd := validRegistration()
		cmd.Role = domain.RoleAdmin
		user, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})
}

func TestLoginUserHandler_Handle(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, repo domain.UserRepository) *domain.User {
		t.Helper()
		user, err := NewRegisterUserHandler(repo).Handle(ctx, validRegistration())
		require.NoError(t, err)
		return user
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		repo := newFakeUserRepo()
		register(t, repo)

		handler := NewLoginUserHandler(repo)
		resp, err := handler.Handle(ctx, LoginUserCommand{Username: "asha", Password: "secret123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "asha", resp.User.Username)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		repo := newFakeUserRepo()
		register(t, repo)

		handler := NewLoginUserHandler(repo)
		_, err := handler.Handle(ctx, LoginUserCommand{Username: "asha", Password: "wrong"})
		assert.ErrorContains(t, err, "invalid credentials")
	})

	t.Run("unknown user is invalid credentials", func(t *testing.T) {
		handler := NewLoginUserHandler(newFakeUserRepo())

		_, err := handler.Handle(ctx, LoginUserCommand{Username: "ghost", Password: "secret123"})
		assert.ErrorContains(t, err, "invalid credentials")
	})

	t.Run("deactivated account cannot log in", func(t *testing.T) {
		repo := newFakeUserRepo()
		user := register(t, repo)

		user.IsActive = false
		require.NoError(t, repo.Update(ctx, user))

		handler := NewLoginUserHandler(repo)
		_, err := handler.Handle(ctx, LoginUserCommand{Username: "asha", Password: "secret123"})
		assert.ErrorContains(t, err, "deactivated")
	})
}
