package domain

// Caller is the identity an operation runs on behalf of. It is resolved
// once per request from the account store and passed explicitly.
type Caller struct {
	AccountID string
	Role      Role
}

func (c Caller) Authenticated() bool {
	return c.AccountID != ""
}

func (c Caller) IsAdmin() bool {
	return c.Authenticated() && c.Role == RoleAdmin
}

// RequireAdmin fails closed for anything but an authenticated admin.
func (c Caller) RequireAdmin() error {
	if !c.IsAdmin() {
		return ErrPermissionDenied
	}
	return nil
}
