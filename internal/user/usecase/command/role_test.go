package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/traceright/dataset-service/internal/user/domain"
	"github.com/traceright/dataset-service/pkg/apperr"
)

// fakeRepo is an in-memory UserRepository.
type fakeRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[uint]*domain.User{}, nextID: 1}
}

func (r *fakeRepo) Create(user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeRepo) FindByID(id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeRepo) FindByUsername(username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) Update(user *domain.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

func seedUsers(t *testing.T) *fakeRepo {
	t.Helper()
	repo := newFakeRepo()
	require.NoError(t, repo.Create(&domain.User{
		Username: "root", Email: "root@example.com", Password: "x",
		FullName: "Root", Role: domain.RoleAdmin, Admin: true, IsActive: true,
	}))
	require.NoError(t, repo.Create(&domain.User{
		Username: "alice", Email: "alice@example.com", Password: "x",
		FullName: "Alice", Role: domain.RoleUser, IsActive: true,
	}))
	return repo
}

func TestSetAdminGrantsPrivilege(t *testing.T) {
	repo := seedUsers(t)
	h := NewSetAdminHandler(repo)

	user, err := h.Handle(SetAdminCommand{CallerID: 1, TargetUserID: 2, IsAdmin: true})
	require.NoError(t, err)

	// Both privilege markers move together
	assert.True(t, user.Admin)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.True(t, user.IsAdmin())
}

func TestSetAdminRevokesPrivilege(t *testing.T) {
	repo := seedUsers(t)
	h := NewSetAdminHandler(repo)

	user, err := h.Handle(SetAdminCommand{CallerID: 1, TargetUserID: 1, IsAdmin: false})
	require.NoError(t, err)

	assert.False(t, user.Admin)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.False(t, user.IsAdmin())
}

func TestSetAdminRequiresCallerIdentity(t *testing.T) {
	h := NewSetAdminHandler(seedUsers(t))

	_, err := h.Handle(SetAdminCommand{CallerID: 0, TargetUserID: 2, IsAdmin: true})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestSetAdminDeniesNonAdminCaller(t *testing.T) {
	h := NewSetAdminHandler(seedUsers(t))

	_, err := h.Handle(SetAdminCommand{CallerID: 2, TargetUserID: 1, IsAdmin: false})
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
}

func TestSetAdminFailsClosedOnMissingCaller(t *testing.T) {
	h := NewSetAdminHandler(seedUsers(t))

	_, err := h.Handle(SetAdminCommand{CallerID: 99, TargetUserID: 2, IsAdmin: true})
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
}

func TestSetRoleByEmail(t *testing.T) {
	repo := seedUsers(t)
	h := NewSetRoleHandler(repo)

	user, err := h.Handle(SetRoleCommand{CallerID: 1, Email: "alice@example.com", Role: domain.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.True(t, user.Admin)
}

func TestSetRoleDemotionClearsFlag(t *testing.T) {
	repo := seedUsers(t)
	h := NewSetRoleHandler(repo)

	user, err := h.Handle(SetRoleCommand{CallerID: 1, Email: "root@example.com", Role: domain.RoleUser})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleUser, user.Role)
	assert.False(t, user.Admin)
}

func TestSetRoleRejectsUnknownRole(t *testing.T) {
	h := NewSetRoleHandler(seedUsers(t))

	_, err := h.Handle(SetRoleCommand{CallerID: 1, Email: "alice@example.com", Role: "superuser"})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestSetRoleDeniesNonAdminCaller(t *testing.T) {
	h := NewSetRoleHandler(seedUsers(t))

	_, err := h.Handle(SetRoleCommand{CallerID: 2, Email: "root@example.com", Role: domain.RoleUser})
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
}

func TestSetRoleUnknownEmail(t *testing.T) {
	h := NewSetRoleHandler(seedUsers(t))

	_, err := h.Handle(SetRoleCommand{CallerID: 1, Email: "ghost@example.com", Role: domain.RoleUser})
	assert.Error(t, err)
}
