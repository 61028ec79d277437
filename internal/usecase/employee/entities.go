package employee

import "hr-attendance-service/internal/domain/employee"

type RegisterInput struct {
	Name          string
	Email         string
	Phone         string
	Role          string
	Level         int
	ReportsTo     *uint64
	Skills        string
	ClientCompany string
	Location      string
	Password      string
}

// UpdateInput is an explicit field allowlist; nil means "leave as is".
type UpdateInput struct {
	Name          *string
	Email         *string
	Phone         *string
	Role          *string
	Level         *int
	ReportsTo     *uint64
	Skills        *string
	ClientCompany *string
	Location      *string
	Password      *string
}

type EmployeeDTO struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Role          string  `json:"role"`
	Level         int     `json:"level"`
	ReportsTo     *uint64 `json:"reports_to"`
	Skills        string  `json:"skills"`
	EmployeeType  string  `json:"employee_type"`
	ClientCompany string  `json:"client_company"`
	Location      string  `json:"location"`
}

func toDTO(e *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Role:          e.Role,
		Level:         e.Level,
		ReportsTo:     e.ReportsTo,
		Skills:        e.Skills,
		EmployeeType:  string(e.EmployeeType),
		ClientCompany: e.ClientCompany,
		Location:      e.Location,
	}
}
