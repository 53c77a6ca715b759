package account_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tickify/tickify/internal/domain/account"
)

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name string
		req  account.RegisterRequest
		want map[string]string
	}{
		{
			name: "valid",
			req:  account.RegisterRequest{Email: "a@b.com", Password: "secret1", Confirm: "secret1"},
			want: map[string]string{},
		},
		{
			name: "all empty",
			req:  account.RegisterRequest{},
			want: map[string]string{
				"email":    "Email is required",
				"password": "Password is required",
				"confirm":  "Please confirm your password",
			},
		},
		{
			name: "malformed email",
			req:  account.RegisterRequest{Email: "a@b", Password: "secret1", Confirm: "secret1"},
			want: map[string]string{"email": "Invalid email format"},
		},
		{
			name: "short password",
			req:  account.RegisterRequest{Email: "a@b.com", Password: "short", Confirm: "short"},
			want: map[string]string{"password": "Password must be at least 6 characters"},
		},
		{
			name: "mismatched confirm",
			req:  account.RegisterRequest{Email: "a@b.com", Password: "secret1", Confirm: "secret2"},
			want: map[string]string{"confirm": "Passwords do not match"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, account.ValidateRegister(tt.req))
		})
	}
}

func TestValidateLogin(t *testing.T) {
	require.Empty(t, account.ValidateLogin(account.LoginRequest{Email: "a@b.com", Password: "secret1"}))

	errs := account.ValidateLogin(account.LoginRequest{})
	require.Equal(t, "Email is required", errs["email"])
	require.Equal(t, "Password is required", errs["password"])

	errs = account.ValidateLogin(account.LoginRequest{Email: "nope", Password: "secret1"})
	require.Equal(t, "Invalid email format", errs["email"])
}
