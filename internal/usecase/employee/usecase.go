package employee

import (
	"context"
	"errors"

	"hr-attendance-service/internal/domain/employee"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Usecase struct{ repo employee.Repository }

func NewUsecase(r employee.Repository) *Usecase { return &Usecase{repo: r} }

func validLevel(level int) bool { return level >= 0 && level <= 9 }

// Register creates a directory entry. The employee type bucket is
// derived from the level, never supplied by the caller.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (uint64, error) {
	if !validLevel(in.Level) {
		return 0, employee.ErrInvalidLevel
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	e := &employee.Employee{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Role:          in.Role,
		Level:         in.Level,
		EmployeeType:  employee.TypeForLevel(in.Level),
		ClientCompany: in.ClientCompany,
		Location:      in.Location,
		ReportsTo:     in.ReportsTo,
		Skills:        in.Skills,
		PasswordHash:  string(hash),
	}
	if err := u.repo.Create(ctx, e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, employee.ErrEmailTaken
		}
		return 0, err
	}
	return e.ID, nil
}

func (u *Usecase) BulkRegister(ctx context.Context, ins []RegisterInput) error {
	es := make([]employee.Employee, len(ins))
	for i, in := range ins {
		if !validLevel(in.Level) {
			return employee.ErrInvalidLevel
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		es[i] = employee.Employee{
			Name:          in.Name,
			Email:         in.Email,
			Phone:         in.Phone,
			Role:          in.Role,
			Level:         in.Level,
			EmployeeType:  employee.TypeForLevel(in.Level),
			ClientCompany: in.ClientCompany,
			Location:      in.Location,
			ReportsTo:     in.ReportsTo,
			Skills:        in.Skills,
			PasswordHash:  string(hash),
		}
	}
	if err := u.repo.BulkCreate(ctx, es); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return employee.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*EmployeeDTO, error) {
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}
	dto := toDTO(e)
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context, phone string) ([]EmployeeDTO, error) {
	es, err := u.repo.List(ctx, phone)
	if err != nil {
		return nil, err
	}
	out := make([]EmployeeDTO, len(es))
	for i := range es {
		out[i] = toDTO(&es[i])
	}
	return out, nil
}

// Update applies the allowlisted fields. Changing the level re-derives
// the employee type; changing the password re-hashes it.
func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateInput) error {
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employee.ErrNotFound
		}
		return err
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Email != nil {
		e.Email = *in.Email
	}
	if in.Phone != nil {
		e.Phone = *in.Phone
	}
	if in.Role != nil {
		e.Role = *in.Role
	}
	if in.Level != nil {
		if !validLevel(*in.Level) {
			return employee.ErrInvalidLevel
		}
		e.Level = *in.Level
		e.EmployeeType = employee.TypeForLevel(*in.Level)
	}
	if in.ReportsTo != nil {
		e.ReportsTo = in.ReportsTo
	}
	if in.Skills != nil {
		e.Skills = *in.Skills
	}
	if in.ClientCompany != nil {
		e.ClientCompany = *in.ClientCompany
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		e.PasswordHash = string(hash)
	}
	return u.repo.Save(ctx, e)
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	err := u.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employee.ErrNotFound
	}
	return err
}
