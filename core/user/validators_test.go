package user

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/jmnolasco/pasedelista/core"
)

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		nu       NewUser
		wantTags []string // failed tags, empty when valid
	}{
		{
			name: "valid",
			nu:   NewUser{FullName: "Ana García", Email: "ana@test.test", Password: "Str0ng&difficult", PasswordConfirm: "Str0ng&difficult"},
		},
		{
			name:     "password similar to name",
			nu:       NewUser{FullName: "Ana García", Email: "ana@test.test", Password: "anagarcía", PasswordConfirm: "anagarcía"},
			wantTags: []string{"pwdtoosim"},
		},
		{
			name:     "password similar to email",
			nu:       NewUser{FullName: "Ana García", Email: "ana@test.test", Password: "ana@test.test1", PasswordConfirm: "ana@test.test1"},
			wantTags: []string{"pwdtoosim"},
		},
		{
			name:     "confirmation mismatch",
			nu:       NewUser{FullName: "Ana García", Email: "ana@test.test", Password: "Str0ng&difficult", PasswordConfirm: "other"},
			wantTags: []string{"eqfield"},
		},
		{
			name:     "bad email",
			nu:       NewUser{FullName: "Ana García", Email: "not-an-email", Password: "Str0ng&difficult", PasswordConfirm: "Str0ng&difficult"},
			wantTags: []string{"email"},
		},
		{
			name:     "all required",
			nu:       NewUser{},
			wantTags: []string{"required", "required", "required", "required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := core.Validate.Struct(tt.nu)
			if len(tt.wantTags) == 0 {
				if err != nil {
					t.Fatalf("Validate.Struct() error = %v, want nil", err)
				}
				return
			}
			verrs, ok := err.(validator.ValidationErrors)
			if !ok {
				t.Fatalf("Validate.Struct() error = %v, want ValidationErrors", err)
			}
			if len(verrs) != len(tt.wantTags) {
				t.Fatalf("Validate.Struct() got %d errors (%v), want %d", len(verrs), verrs, len(tt.wantTags))
			}
			for i, tag := range tt.wantTags {
				if verrs[i].Tag() != tag {
					t.Errorf("Validate.Struct() error[%d] tag = %q, want %q", i, verrs[i].Tag(), tag)
				}
			}
		})
	}
}
