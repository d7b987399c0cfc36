package user

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/shule/core"
)

// Profile is the account object returned at login and by /users/me.
// The backend enforces no schema beyond id and name; every other field
// may be absent depending on the role, so they are all nullable.
type Profile struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Role     string      `json:"role,omitempty"`
	Email    null.String `json:"email,omitempty"`
	Phone    null.String `json:"phone,omitempty"`
	Avatar   null.String `json:"avatar,omitempty"`
	BranchID null.Int    `json:"branch_id,omitempty"`
	Branch   null.String `json:"branch,omitempty"`

	// role-specific extras
	FatherName  null.String `json:"father_name,omitempty"`
	ClassName   null.String `json:"class_name,omitempty"`
	SectionName null.String `json:"section_name,omitempty"`
	Subject     null.String `json:"subject,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"` // UTC
}

// Empty reports whether the backend sent nothing usable.
func (p Profile) Empty() bool {
	return p.ID == 0 && p.Name == ""
}

// ChangePassword defines what information must be provided to change the
// account password. Validated client-side before submission.
type ChangePassword struct {
	OldPassword     string `json:"old_password" validate:"required"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`

	// user attrs for similarity checks; not submitted
	Name     string `json:"-"`
	Username string `json:"-"`
	Email    string `json:"-"`
}

func (cp *ChangePassword) Validate() error {
	cp.Username = core.CleanString(cp.Username, true /* lower */)
	cp.Email = core.CleanString(cp.Email, true /* lower */)
	return core.Validate.Struct(cp)
}
