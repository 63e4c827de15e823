package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/auth"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
	"github.com/josiaholayin-ops/ShareMoment-backend/internal/repository"
)

func newUserService(t *testing.T) (UserService, repository.UserRepository) {
	t.Helper()
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)
	return NewUserService(repo, testJWTSecret, "CREATOR2025"), repo
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _ := newUserService(t)

	_, _, err := svc.Register(RegisterInput{Email: "dana@example.com", Password: "pw", DisplayName: "Dana"})
	require.NoError(t, err)

	// Same email, different case: still a conflict.
	_, _, err = svc.Register(RegisterInput{Email: "Dana@Example.COM", Password: "pw", DisplayName: "Dana"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _ := newUserService(t)

	_, _, err := svc.Register(RegisterInput{Email: "", Password: "pw", DisplayName: "D"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, _, err = svc.Register(RegisterInput{Email: "a@b.c", Password: "", DisplayName: "D"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, _, err = svc.Register(RegisterInput{Email: "a@b.c", Password: "pw", DisplayName: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegisterRoleAssignment(t *testing.T) {
	svc, _ := newUserService(t)

	user, token, err := svc.Register(RegisterInput{
		Email: "maker@example.com", Password: "pw", DisplayName: "Maker",
		AsCreator: true, CreatorCode: "CREATOR2025",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCreator, user.Role)

	claims, err := auth.Parse(token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleCreator, claims.Role)

	// Wrong code silently downgrades to consumer.
	user, _, err = svc.Register(RegisterInput{
		Email: "wannabe@example.com", Password: "pw", DisplayName: "Wannabe",
		AsCreator: true, CreatorCode: "nope",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleConsumer, user.Role)
}

func TestLoginDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	svc, _ := newUserService(t)

	_, _, err := svc.Register(RegisterInput{Email: "eve@example.com", Password: "right", DisplayName: "Eve"})
	require.NoError(t, err)

	_, _, unknownErr := svc.Login("nobody@example.com", "whatever")
	_, _, wrongPwErr := svc.Login("eve@example.com", "wrong")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}

func TestLoginSucceedsCaseInsensitive(t *testing.T) {
	svc, _ := newUserService(t)

	registered, _, err := svc.Register(RegisterInput{Email: "casey@example.com", Password: "pw", DisplayName: "Casey"})
	require.NoError(t, err)

	user, token, err := svc.Login("CASEY@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestPromoteToCreator(t *testing.T) {
	svc, repo := newUserService(t)

	_, _, err := svc.Register(RegisterInput{Email: "plain@example.com", Password: "pw", DisplayName: "Plain"})
	require.NoError(t, err)

	require.NoError(t, svc.PromoteToCreator("Plain@Example.com"))

	user, err := repo.FindByEmail("plain@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleCreator, user.Role)

	assert.ErrorIs(t, svc.PromoteToCreator("ghost@example.com"), ErrUserNotFound)
}
