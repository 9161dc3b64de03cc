package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/geocoder89/employeehub/internal/domain/employee"
	"github.com/geocoder89/employeehub/internal/observability"
	"github.com/gin-gonic/gin"
)

const storeTimeout = 3 * time.Second

type EmployeesStore interface {
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	List(ctx context.Context) ([]employee.Employee, error)
}

type EmployeesHandler struct {
	repo         EmployeesStore
	log          *slog.Logger
	prom         *observability.Prom
	exposeErrors bool
}

func NewEmployeesHandler(repo EmployeesStore, log *slog.Logger, prom *observability.Prom, exposeErrors bool) *EmployeesHandler {
	if log == nil {
		log = slog.Default()
	}

	return &EmployeesHandler{
		repo:         repo,
		log:          log,
		prom:         prom,
		exposeErrors: exposeErrors,
	}
}

// CreateEmployee checks employeeId, then email, then inserts. The three steps are separate round
// trips with no transaction, so two concurrent requests for the same id can both pass the checks;
// the table's unique constraints turn the loser's insert into the same 409.
func (h *EmployeesHandler) CreateEmployee(ctx *gin.Context) {
	var req employee.CreateEmployeeRequest

	if !BindJSON(ctx, &req) {
		h.prom.CreateResult("invalid")
		return
	}

	cctx, cancel := context.WithTimeout(ctx.Request.Context(), storeTimeout)
	defer cancel()

	exists, err := h.repo.ExistsByEmployeeID(cctx, req.EmployeeID)
	if err != nil {
		h.failCreate(ctx, err)
		return
	}

	if exists {
		h.conflict(ctx, employee.DuplicateEmployeeID(req.EmployeeID))
		return
	}

	exists, err = h.repo.ExistsByEmail(cctx, req.Email)
	if err != nil {
		h.failCreate(ctx, err)
		return
	}

	if exists {
		h.conflict(ctx, employee.DuplicateEmail(req.Email))
		return
	}

	created, err := h.repo.Create(cctx, req)
	if err != nil {
		var conflict *employee.ConflictError
		if errors.As(err, &conflict) {
			h.log.WarnContext(ctx.Request.Context(), "duplicate caught by unique constraint", "field", conflict.Field)
			h.conflict(ctx, conflict)
			return
		}

		h.failCreate(ctx, err)
		return
	}

	h.prom.CreateResult("created")

	ctx.JSON(http.StatusCreated, gin.H{
		"message":  "Employee added successfully",
		"employee": created,
	})
}

func (h *EmployeesHandler) ListEmployees(ctx *gin.Context) {
	cctx, cancel := context.WithTimeout(ctx.Request.Context(), storeTimeout)
	defer cancel()

	employees, err := h.repo.List(cctx)
	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "list employees failed", "err", err)
		RespondInternal(ctx, "Failed to fetch employees", err, h.exposeErrors)
		return
	}

	ctx.JSON(http.StatusOK, employees)
}

func (h *EmployeesHandler) conflict(ctx *gin.Context, err error) {
	h.prom.CreateResult("conflict")
	RespondConflict(ctx, err.Error())
}

func (h *EmployeesHandler) failCreate(ctx *gin.Context, err error) {
	h.prom.CreateResult("error")
	h.log.ErrorContext(ctx.Request.Context(), "create employee failed", "err", err)
	RespondInternal(ctx, "Failed to add employee", err, h.exposeErrors)
}
