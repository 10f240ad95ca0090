package auth

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Claims representa al usuario autenticado de la request, resuelto desde la sesión.
type Claims struct {
	UserID int64
	Email  string
	Role   string
}

func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanAccess: el dueño del recurso o un admin.
func (c Claims) CanAccess(ownerID int64) bool {
	return c.IsAdmin() || (c.UserID != 0 && c.UserID == ownerID)
}
