package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/internal/data/repository"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/usecase"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	users  *fakeUserRepo
	admins *fakeAdminRepo
	tokens *fakeTokenRepo
	mail   *fakeMailer
	svc    usecase.AuthService
}

func newAuthFixture(users ...*entity.User) *authFixture {
	f := &authFixture{
		users:  newFakeUserRepo(users...),
		admins: newFakeAdminRepo(),
		tokens: newFakeTokenRepo(),
		mail:   newFakeMailer(),
	}
	repo := &repository.Repository{User: f.users, Admin: f.admins, ResetToken: f.tokens}
	cfg := &utils.Config{
		App:   utils.AppConfig{ClientURL: "https://shop.example.com"},
		Admin: utils.AdminConfig{SignupSecret: "s3cret"},
	}
	f.svc = usecase.NewAuthService(repo, f.mail, cfg, zap.NewNop())
	return f
}

func registeredUser(id int64, email, password string) *entity.User {
	hash, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return &entity.User{ID: id, Username: "taro", Email: email, PasswordHash: hash, Role: entity.RoleUser}
}

func TestSignupCreatesUser(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.Signup(context.Background(), &request.SignupRequest{
		Username: "taro",
		Email:    "taro@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	user, err := f.users.FindByEmail(context.Background(), "taro@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.NotEqual(t, "hunter22", user.PasswordHash, "password must be stored hashed")
	assert.True(t, utils.CheckPasswordHash("hunter22", user.PasswordHash))
}

func TestSignupDuplicateEmail(t *testing.T) {
	f := newAuthFixture(registeredUser(1, "taro@example.com", "hunter22"))

	err := f.svc.Signup(context.Background(), &request.SignupRequest{
		Username: "other",
		Email:    "taro@example.com",
		Password: "different",
	})
	requireKind(t, err, usecase.KindConflict)
}

func TestAdminSignupRejectsWrongSecret(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.AdminSignup(context.Background(), &request.AdminSignupRequest{
		Username:  "boss",
		Email:     "boss@example.com",
		Password:  "hunter22",
		SecretKey: "wrong",
	})
	requireKind(t, err, usecase.KindForbidden)
	assert.Empty(t, f.admins.admins)
}

func TestLoginUniformFailureMessage(t *testing.T) {
	f := newAuthFixture(registeredUser(1, "taro@example.com", "hunter22"))

	_, unknownErr := f.svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})
	_, wrongPassErr := f.svc.Login(context.Background(), &request.LoginRequest{
		Email:    "taro@example.com",
		Password: "wrong",
	})

	requireKind(t, unknownErr, usecase.KindUnauthorized)
	requireKind(t, wrongPassErr, usecase.KindUnauthorized)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error(),
		"unknown email and wrong password must be indistinguishable")
}

func TestLoginReturnsSessionUser(t *testing.T) {
	f := newAuthFixture(registeredUser(7, "taro@example.com", "hunter22"))

	user, err := f.svc.Login(context.Background(), &request.LoginRequest{
		Email:    "taro@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "user", user.Role)
}

func TestRequestResetUnknownEmailLeavesNoTrace(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.RequestPasswordReset(context.Background(), &request.RequestResetRequest{
		Email: "nobody@example.com",
	})
	require.NoError(t, err, "unknown email must not surface as an error")
	assert.Empty(t, f.tokens.tokens)

	select {
	case m := <-f.mail.sent:
		t.Fatalf("no mail expected, got one to %s", m.to)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRequestResetStoresDigestAndMailsLink(t *testing.T) {
	f := newAuthFixture(registeredUser(1, "taro@example.com", "hunter22"))

	err := f.svc.RequestPasswordReset(context.Background(), &request.RequestResetRequest{
		Email: "taro@example.com",
	})
	require.NoError(t, err)
	require.Len(t, f.tokens.tokens, 1)

	var mail sentMail
	select {
	case mail = <-f.mail.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("reset mail never sent")
	}
	assert.Equal(t, "taro@example.com", mail.to)
	assert.Contains(t, mail.body, "https://shop.example.com/reset-password/")
	assert.NotContains(t, mail.body, "reset-password?token=")

	// The stored value is a digest, never the raw token from the link
	for hash := range f.tokens.tokens {
		assert.Len(t, hash, 64)
		assert.NotContains(t, mail.body, hash)
	}
}

func TestResetPasswordInvalidToken(t *testing.T) {
	f := newAuthFixture(registeredUser(1, "taro@example.com", "hunter22"))

	err := f.svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:       "deadbeef",
		NewPassword: "newpassword",
	})
	requireKind(t, err, usecase.KindValidation)
	assert.Empty(t, f.users.passwordUpdates)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	f := newAuthFixture(registeredUser(1, "taro@example.com", "hunter22"))

	token := "aaaabbbbccccdddd"
	expired := time.Now().Add(-time.Minute).UnixMilli()
	require.NoError(t, f.tokens.Upsert(context.Background(), 1, utils.HashToken(token), expired))

	err := f.svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:       token,
		NewPassword: "newpassword",
	})
	requireKind(t, err, usecase.KindValidation)
	assert.Empty(t, f.users.passwordUpdates)
}

func TestResetPasswordConsumesToken(t *testing.T) {
	f := newAuthFixture(registeredUser(1, "taro@example.com", "hunter22"))

	token := "aaaabbbbccccdddd"
	expiry := time.Now().Add(time.Hour).UnixMilli()
	require.NoError(t, f.tokens.Upsert(context.Background(), 1, utils.HashToken(token), expiry))

	err := f.svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:       token,
		NewPassword: "newpassword",
	})
	require.NoError(t, err)

	user, _ := f.users.FindByID(context.Background(), 1)
	assert.True(t, utils.CheckPasswordHash("newpassword", user.PasswordHash))
	assert.Empty(t, f.tokens.tokens, "token must be single use")

	// Reusing the same link fails
	err = f.svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:       token,
		NewPassword: "anotherpass",
	})
	requireKind(t, err, usecase.KindValidation)
}
