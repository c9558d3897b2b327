package user_test

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/jjyf27/redpro/core"
	. "github.com/jjyf27/redpro/core/user"
	dummydb "github.com/jjyf27/redpro/storage/database/dummy"
)

func TestMain(m *testing.M) {
	core.InitValidators()
	os.Exit(m.Run())
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, _ := dummydb.Open()
	return NewService(dummydb.NewUserRepository(db))
}

func validNewUser() NewUser {
	return NewUser{
		FirstName:       "María",
		LastName:        "Quispe",
		Email:           "maria@test.pe",
		Phone:           "987654321",
		Password:        "claveSegura42",
		PasswordConfirm: "claveSegura42",
	}
}

func TestService_Register(t *testing.T) {
	svc := newTestService(t)

	usr, err := svc.Register(validNewUser())
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	assert.Greater(t, usr.ID, 0)
	assert.Equal(t, "maria@test.pe", usr.Email)
	assert.Equal(t, "María Quispe", usr.DisplayName())
	assert.NotEmpty(t, usr.PasswordHash)
	assert.NoError(t, usr.CheckPassword("claveSegura42"))

	// email already taken
	_, err = svc.Register(validNewUser())
	if assert.Error(t, err) {
		vErr, ok := errors.Cause(err).(*core.ValidationError)
		if assert.True(t, ok, "want *core.ValidationError, got %T", err) {
			assert.Equal(t, "email", vErr.Fields[0].Field)
		}
	}
}

func TestService_Register_invalid(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name   string
		mutate func(*NewUser)
	}{
		{name: "password mismatch", mutate: func(nu *NewUser) { nu.PasswordConfirm = "otra" }},
		{name: "bad email", mutate: func(nu *NewUser) { nu.Email = "no" }},
		{name: "short password", mutate: func(nu *NewUser) {
			nu.Password = "corta1"
			nu.PasswordConfirm = "corta1"
		}},
		{name: "all-numeric password", mutate: func(nu *NewUser) {
			nu.Password = "12345678901"
			nu.PasswordConfirm = "12345678901"
		}},
		{name: "password similar to email", mutate: func(nu *NewUser) {
			nu.Password = "maria@test.pe"
			nu.PasswordConfirm = "maria@test.pe"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nu := validNewUser()
			tt.mutate(&nu)
			_, err := svc.Register(nu)
			assert.Error(t, err)
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Register(validNewUser()); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	usr, err := svc.Authenticate(Login{Email: " MARIA@test.pe ", Password: "claveSegura42"})
	assert.NoError(t, err)
	assert.False(t, usr.LastLogin.IsZero())

	// same opaque failure for a wrong password and an unknown account
	_, err = svc.Authenticate(Login{Email: "maria@test.pe", Password: "incorrecta"})
	assert.Equal(t, ErrNotFound, err)
	_, err = svc.Authenticate(Login{Email: "nadie@test.pe", Password: "claveSegura42"})
	assert.Equal(t, ErrNotFound, err)
}
