package validate_test

import (
	"encoding/json"
	"testing"

	"github.com/georgemunganga/stockroom-api/internal/apperr"
	"github.com/georgemunganga/stockroom-api/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, code, apperr.CodeOf(err))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		code string
	}{
		{"", validate.CodeEmailEmpty},
		{"bad", validate.CodeEmailInvalid},
		{"a@b", validate.CodeEmailInvalid},
		{"a@b.c", validate.CodeEmailInvalid},
		{"a b@example.com", validate.CodeEmailInvalid},
		{"user@exa_mple.com", validate.CodeEmailInvalid},
		{"jane.doe+tag_1-x@mail.example.co", ""},
		{"J0@sub-domain.example.org", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validate.Email(tt.in)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assertCode(t, err, tt.code)
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		in   string
		code string
	}{
		{"", validate.CodePasswordEmpty},
		{"has space", validate.CodePasswordInvalid},
		{"star*", validate.CodePasswordInvalid},
		{"brackets[]", validate.CodePasswordInvalid},
		{"caret^", validate.CodePasswordInvalid},
		{"Secret123!#@%$&", ""},
		{"abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validate.Password(tt.in)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assertCode(t, err, tt.code)
		})
	}
}

func TestRegistration_Precedence(t *testing.T) {
	assertCode(t, validate.Registration("", "bad", ""), validate.CodeUsernameEmpty)
	assertCode(t, validate.Registration("bob", "", "bad pw"), validate.CodeEmailEmpty)
	assertCode(t, validate.Registration("bob", "bad", ""), validate.CodeEmailInvalid)
	assertCode(t, validate.Registration("bob", "bob@example.com", ""), validate.CodePasswordEmpty)
	assertCode(t, validate.Registration("bob", "bob@example.com", "a b"), validate.CodePasswordInvalid)
	assert.NoError(t, validate.Registration("bob", "bob@example.com", "hunter2"))
}

func TestCredentials(t *testing.T) {
	assertCode(t, validate.Credentials("", "pw"), validate.CodeCredentials)
	assertCode(t, validate.Credentials("bob", ""), validate.CodeCredentials)
	assert.NoError(t, validate.Credentials("bob", "pw"))
}

func TestIDs(t *testing.T) {
	ids, err := validate.IDs(json.RawMessage(`[3, 1, 2]`))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, ids)

	ids, err = validate.IDs(json.RawMessage(` [] `))
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	for _, raw := range []string{``, `null`, `"not-an-array"`, `{"a":1}`, `12`, `["x"]`, `[1.5]`} {
		_, err := validate.IDs(json.RawMessage(raw))
		assertCode(t, err, validate.CodeIDsNotArray)
	}
}

func TestProductID(t *testing.T) {
	for in, want := range map[string]int64{"42": 42, "0": 0, "-1": -1} {
		id, err := validate.ProductID(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, id)
	}

	for _, in := range []string{"", "abc", "1.5", "1; DROP TABLE inventory"} {
		_, err := validate.ProductID(in)
		assertCode(t, err, validate.CodeIDInvalid)
	}
}
