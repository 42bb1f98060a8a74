package entities

// Role is the coarse permission tag attached to an authenticated principal.
// Destructive actions (client cascade deletion, order deletion) require the
// owner role.

type Role string

const (
	RoleDono        Role = "dono"
	RoleFuncionario Role = "funcionario"
	RoleRecepcao    Role = "recepcao"
)

// CanDelete reports whether the role may perform destructive actions.
func (r Role) CanDelete() bool {
	return r == RoleDono
}
