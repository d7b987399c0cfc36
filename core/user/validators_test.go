package user

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func hasTag(t *testing.T, err error, tag string) bool {
	t.Helper()
	if err == nil {
		return false
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("expected validator.ValidationErrors, got %T: %v", err, err)
	}
	for _, vErr := range vErrs {
		if vErr.Tag() == tag {
			return true
		}
	}
	return false
}

func TestChangePassword_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cp      ChangePassword
		wantTag string
	}{
		{
			name:    "missing old password",
			cp:      ChangePassword{Password: "G00d-pass", PasswordConfirm: "G00d-pass"},
			wantTag: "required",
		},
		{
			name:    "confirmation mismatch",
			cp:      ChangePassword{OldPassword: "x", Password: "G00d-pass", PasswordConfirm: "G00d-pa55"},
			wantTag: "eqfield",
		},
		{
			name:    "too short",
			cp:      ChangePassword{OldPassword: "x", Password: "G0-d", PasswordConfirm: "G0-d"},
			wantTag: pwdMinLenTag,
		},
		{
			name:    "whitespace",
			cp:      ChangePassword{OldPassword: "x", Password: "G00d pass", PasswordConfirm: "G00d pass"},
			wantTag: pwdNoSpaceTag,
		},
		{
			name:    "all numeric",
			cp:      ChangePassword{OldPassword: "x", Password: "123456789", PasswordConfirm: "123456789"},
			wantTag: pwdNotAllNumTag,
		},
		{
			name:    "no complexity",
			cp:      ChangePassword{OldPassword: "x", Password: "goodpassword", PasswordConfirm: "goodpassword"},
			wantTag: pwdComplexityTag,
		},
		{
			name: "similar to username",
			cp: ChangePassword{
				OldPassword: "x",
				Password:    "Asha.Mwila1", PasswordConfirm: "Asha.Mwila1",
				Username: "asha.mwila1",
			},
			wantTag: pwdAttrSimTag,
		},
		{
			name: "valid",
			cp: ChangePassword{
				OldPassword: "x",
				Password:    "G00d-pass", PasswordConfirm: "G00d-pass",
				Name: "Asha Mwila", Username: "asha.t",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cp.Validate()
			if tt.wantTag == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !hasTag(t, err, tt.wantTag) {
				t.Errorf("Validate() = %v, want tag %q", err, tt.wantTag)
			}
		})
	}
}
