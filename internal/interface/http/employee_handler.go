package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-directory/internal/application"
	"github.com/oksasatya/employee-directory/internal/domain/entity"
	"github.com/oksasatya/employee-directory/internal/domain/repository"
	"github.com/oksasatya/employee-directory/internal/forms"
	"github.com/oksasatya/employee-directory/internal/session"
	"github.com/oksasatya/employee-directory/pkg/helpers"
)

type EmployeeHandler struct {
	base
	Svc *application.EmployeeService
}

func NewEmployeeHandler(svc *application.EmployeeService, gate session.Gate, cookies *helpers.CookieManager, logger *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		base: base{Gate: gate, Cookies: cookies, Logger: logger},
		Svc:  svc,
	}
}

func employeeInput(f *forms.EmployeeForm) application.EmployeeInput {
	return application.EmployeeInput{
		Email:   f.Email,
		Name:    f.Name,
		Address: f.Address,
		City:    f.City,
		State:   f.State,
		Zip:     f.Zip,
		Phone:   f.Phone,
	}
}

func employeeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}

// Home GET /, GET /home
func (h *EmployeeHandler) Home(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	p, err := h.Svc.ListPage(c.Request.Context(), page)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "home.html", gin.H{"Page": p})
}

// AddPage GET /employee/add
func (h *EmployeeHandler) AddPage(c *gin.Context) {
	h.render(c, http.StatusOK, "employee_form.html", gin.H{
		"Form":   &forms.EmployeeForm{},
		"States": entity.USStates,
		"Legend": "Add Employee",
	})
}

// Add POST /employee/add
func (h *EmployeeHandler) Add(c *gin.Context) {
	var f forms.EmployeeForm
	_ = c.ShouldBind(&f)

	errs, err := f.ValidateNew(c.Request.Context(), h.Svc.Employees)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if !errs.Empty() {
		h.render(c, http.StatusOK, "employee_form.html", gin.H{
			"Form":   &f,
			"Errors": errs,
			"States": entity.USStates,
			"Legend": "Add Employee",
		})
		return
	}

	if _, err := h.Svc.Create(c.Request.Context(), employeeInput(&f)); err != nil {
		h.serverError(c, err)
		return
	}

	h.flash(c, "success", "New Employee Data has been Added")
	c.Redirect(http.StatusFound, "/home")
}

// View GET /employee/:id
func (h *EmployeeHandler) View(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		h.notFound(c)
		return
	}

	e, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "employee_detail.html", gin.H{"Employee": e})
}

// EditPage GET /employee/:id/edit
func (h *EmployeeHandler) EditPage(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		h.notFound(c)
		return
	}

	e, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, err)
		return
	}

	var f forms.EmployeeForm
	f.Fill(e)
	h.render(c, http.StatusOK, "employee_form.html", gin.H{
		"Form":   &f,
		"States": entity.USStates,
		"Legend": "Update Employee",
	})
}

// Edit POST /employee/:id/edit
func (h *EmployeeHandler) Edit(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		h.notFound(c)
		return
	}

	var f forms.EmployeeForm
	_ = c.ShouldBind(&f)

	// edits run shape checks only; uniqueness is an add-flow concern
	errs := f.Validate()
	if !errs.Empty() {
		h.render(c, http.StatusOK, "employee_form.html", gin.H{
			"Form":   &f,
			"Errors": errs,
			"States": entity.USStates,
			"Legend": "Update Employee",
		})
		return
	}

	if _, err := h.Svc.Update(c.Request.Context(), id, employeeInput(&f)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, err)
		return
	}

	h.flash(c, "success", "Your employee data has been updated!")
	c.Redirect(http.StatusFound, "/employee/"+strconv.FormatInt(id, 10))
}

// Delete POST /employee/:id/delete
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		h.notFound(c)
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, err)
		return
	}

	h.flash(c, "success", "Your Employee has been deleted!")
	c.Redirect(http.StatusFound, "/home")
}
