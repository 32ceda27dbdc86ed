package domain

// Role determines what a user may do in the UI-facing API.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// SuperAdminUsername is the distinguished bootstrap account. User management
// is gated on this literal username, not on the role field: an ADMIN that is
// not this account cannot manage other accounts.
const SuperAdminUsername = "ElSuperAdmin"

// IsValid reports whether r is one of the two known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User models an account. The password is stored and compared in plaintext;
// the recovery flows depend on it being readable, so hashing is out of
// scope.
type User struct {
	ID        string `json:"id" bson:"_id"`
	Username  string `json:"username" bson:"username"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"-" bson:"password"`
	FullName  string `json:"full_name" bson:"full_name"`
	Role      Role   `json:"role" bson:"role"`
	CreatedAt string `json:"created_at" bson:"created_at"`
}

// IsSuperAdmin reports whether this is the distinguished bootstrap account.
func (u *User) IsSuperAdmin() bool {
	return u.Username == SuperAdminUsername
}
