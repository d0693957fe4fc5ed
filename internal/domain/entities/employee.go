package entities

// EmployeeRole gates what an employee can see in the back-office.
type EmployeeRole string

const (
	RoleGestor        EmployeeRole = "gestor"
	RoleAtendente     EmployeeRole = "atendente"
	RoleMotorista     EmployeeRole = "motorista"
	RoleFuncionario   EmployeeRole = "funcionario"
	RoleDesenvolvedor EmployeeRole = "desenvolvedor"
)

func (r EmployeeRole) Valid() bool {
	switch r {
	case RoleGestor, RoleAtendente, RoleMotorista, RoleFuncionario, RoleDesenvolvedor:
		return true
	}
	return false
}

// Management returns true for roles that attend the support chat.
func (r EmployeeRole) Management() bool {
	return r == RoleGestor || r == RoleDesenvolvedor
}

type Employee struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Role   EmployeeRole `json:"role"`
	Status string       `json:"status"`
	Photo  string       `json:"photo,omitempty"`
}

func (e Employee) EntityID() string { return e.ID }

func (e Employee) WithEntityID(id string) Employee {
	e.ID = id
	return e
}

// SessionUser is the role-tagged record kept in ephemeral session storage
// while an employee is logged in.
type SessionUser struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Role  EmployeeRole `json:"role"`
	Email string       `json:"email"`
}
