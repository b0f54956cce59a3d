package users

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateRegister(t *testing.T) {
	req := &RegisterRequest{
		Name:     "  Asif  ",
		Email:    " ASIF@Example.COM ",
		Password: "secret123",
	}
	require.NoError(t, ValidateRegister(req))
	require.Equal(t, "Asif", req.Name)
	require.Equal(t, "asif@example.com", req.Email)
	require.Equal(t, RoleUser, req.Role) // empty role defaults

	req = &RegisterRequest{Name: "Asif", Email: "a@b.com", Password: "short"}
	require.Error(t, ValidateRegister(req))

	req = &RegisterRequest{Name: "Asif", Email: "a@b.com", Password: "secret123", Role: "superuser"}
	require.Error(t, ValidateRegister(req))

	req = &RegisterRequest{Name: "Asif", Email: "a@b.com", Password: "secret123", Role: RolePublisher}
	require.NoError(t, ValidateRegister(req))
}

func TestValidateLogin(t *testing.T) {
	req := &LoginRequest{Email: " User@Example.com ", Password: "secret123"}
	require.NoError(t, ValidateLogin(req))
	require.Equal(t, "user@example.com", req.Email)

	require.Error(t, ValidateLogin(&LoginRequest{Email: "", Password: "x"}))
	require.Error(t, ValidateLogin(&LoginRequest{Email: "a@b.com", Password: ""}))
}

func TestValidateUpdateDetails(t *testing.T) {
	req := &UpdateDetailsRequest{Name: "New Name"}
	require.NoError(t, ValidateUpdateDetails(req))

	require.Error(t, ValidateUpdateDetails(&UpdateDetailsRequest{}))
}

func TestUserMasked(t *testing.T) {
	u := User{Name: "Asif", Password: "$2a$10$somehash"}
	masked := u.Masked()

	require.Equal(t, "******", masked.Password)
	require.Equal(t, "$2a$10$somehash", u.Password) // original untouched
}
