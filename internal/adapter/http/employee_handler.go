package http

import (
	"net/http"

	ucEmployee "hr-attendance-service/internal/usecase/employee"

	"github.com/labstack/echo/v4"
)

type EmployeeHandler struct {
	uc *ucEmployee.Usecase
}

func NewEmployeeHandler(uc *ucEmployee.Usecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

type registerEmployeeRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone"`
	Role          string  `json:"role"`
	Level         int     `json:"level" validate:"gte=0,lte=9"`
	ReportsTo     *uint64 `json:"reports_to"`
	Skills        string  `json:"skills"`
	ClientCompany string  `json:"client_company"`
	Location      string  `json:"location"`
	Password      string  `json:"password" validate:"required,min=8"`
}

func (r registerEmployeeRequest) toInput() ucEmployee.RegisterInput {
	return ucEmployee.RegisterInput{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Role:          r.Role,
		Level:         r.Level,
		ReportsTo:     r.ReportsTo,
		Skills:        r.Skills,
		ClientCompany: r.ClientCompany,
		Location:      r.Location,
		Password:      r.Password,
	}
}

func (h *EmployeeHandler) Register(c echo.Context) error {
	var req registerEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	id, err := h.uc.Register(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]uint64{"id": id})
}

type bulkRegisterRequest struct {
	Employees []registerEmployeeRequest `json:"employees" validate:"required,min=1,dive"`
}

func (h *EmployeeHandler) BulkRegister(c echo.Context) error {
	var req bulkRegisterRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	ins := make([]ucEmployee.RegisterInput, len(req.Employees))
	for i, e := range req.Employees {
		ins[i] = e.toInput()
	}
	if err := h.uc.BulkRegister(c.Request().Context(), ins); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]int{"created": len(ins)})
}

func (h *EmployeeHandler) Get(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EmployeeHandler) List(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context(), c.QueryParam("phone"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"employees": dtos})
}

type updateEmployeeRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Role          *string `json:"role"`
	Level         *int    `json:"level" validate:"omitempty,gte=0,lte=9"`
	ReportsTo     *uint64 `json:"reports_to"`
	Skills        *string `json:"skills"`
	ClientCompany *string `json:"client_company"`
	Location      *string `json:"location"`
	Password      *string `json:"password" validate:"omitempty,min=8"`
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee id"})
	}
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	err := h.uc.Update(c.Request().Context(), id, ucEmployee.UpdateInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Role:          req.Role,
		Level:         req.Level,
		ReportsTo:     req.ReportsTo,
		Skills:        req.Skills,
		ClientCompany: req.ClientCompany,
		Location:      req.Location,
		Password:      req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "employee updated"})
}

func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "employee deleted"})
}
