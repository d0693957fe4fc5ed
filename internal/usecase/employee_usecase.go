package usecase

import (
	"context"
	"errors"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"
)

var (
	ErrInvalidEmployeeRole = errors.New("invalid employee role")
	ErrInvalidEmail        = errors.New("invalid email")
)

type EmployeeUseCase struct {
	employees *Collection[entities.Employee]
}

func NewEmployeeUseCase(store interfaces.Store) *EmployeeUseCase {
	return &EmployeeUseCase{
		employees: NewCollection(store, entities.CollectionEmployees,
			SequentialID[entities.Employee]("E", 3),
			UniqueKey[entities.Employee]{
				Name:      "email",
				Value:     func(e entities.Employee) string { return e.Email },
				Normalize: NormalizeID,
			},
		),
	}
}

type EmployeeFilter struct {
	Search string
	Role   string
}

func (u *EmployeeUseCase) List(ctx context.Context, f EmployeeFilter) []entities.Employee {
	employees := u.employees.Load(ctx)
	employees = FilterBySearchTerm(employees, f.Search,
		func(e entities.Employee) string { return e.Name },
		func(e entities.Employee) string { return e.Email },
	)
	employees = FilterByExactField(employees, f.Role, func(e entities.Employee) string { return string(e.Role) })
	return employees
}

func (u *EmployeeUseCase) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	employee, ok := u.employees.FindByID(ctx, id)
	if !ok {
		return entities.Employee{}, ErrNotFound
	}
	return employee, nil
}

// FindByEmail is the login lookup; matching is case-insensitive.
func (u *EmployeeUseCase) FindByEmail(ctx context.Context, email string) (entities.Employee, bool) {
	want := NormalizeID(email)
	for _, e := range u.employees.Load(ctx) {
		if NormalizeID(e.Email) == want {
			return e, true
		}
	}
	return entities.Employee{}, false
}

func (u *EmployeeUseCase) Create(ctx context.Context, employee entities.Employee) (entities.Employee, error) {
	if employee.Email == "" {
		return entities.Employee{}, ErrInvalidEmail
	}
	if employee.Role == "" {
		employee.Role = entities.RoleFuncionario
	}
	if !employee.Role.Valid() {
		return entities.Employee{}, ErrInvalidEmployeeRole
	}
	if employee.Status == "" {
		employee.Status = "ativo"
	}
	return u.employees.Create(ctx, employee)
}

type EmployeePatch struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
	Photo  *string `json:"photo"`
}

func (u *EmployeeUseCase) Update(ctx context.Context, id string, patch EmployeePatch) (entities.Employee, error) {
	if patch.Role != nil && !entities.EmployeeRole(*patch.Role).Valid() {
		return entities.Employee{}, ErrInvalidEmployeeRole
	}
	return u.employees.Update(ctx, id, func(e entities.Employee) entities.Employee {
		if patch.Name != nil {
			e.Name = *patch.Name
		}
		if patch.Email != nil {
			e.Email = *patch.Email
		}
		if patch.Role != nil {
			e.Role = entities.EmployeeRole(*patch.Role)
		}
		if patch.Status != nil {
			e.Status = *patch.Status
		}
		if patch.Photo != nil {
			e.Photo = *patch.Photo
		}
		return e
	})
}

func (u *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return u.employees.Delete(ctx, id)
}
