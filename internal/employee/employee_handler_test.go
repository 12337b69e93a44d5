package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ahmadluay9/hr-app/internal/employee"
	employeeerrors "github.com/ahmadluay9/hr-app/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeEmployeeService struct {
	createFn      func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn      func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByIDFn     func(ctx context.Context, id int) (employee.EmployeeResponse, error)
	updateFn      func(ctx context.Context, id int, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn      func(ctx context.Context, id int) error
	getBalancesFn func(ctx context.Context, id int) (employee.BalancesResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id int) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id int, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id int) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeEmployeeService) GetBalances(ctx context.Context, id int) (employee.BalancesResponse, error) {
	return f.getBalancesFn(ctx, id)
}

func newEmployeeRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	employee.RegisterRoutes(api, employee.NewHandler(svc))
	return r
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Alice Smith", req.Name)
				return employee.EmployeeResponse{
					ID:         1,
					Name:       req.Name,
					Position:   req.Position,
					Department: req.Department,
				}, nil
			},
		}
		r := newEmployeeRouter(svc)

		body := `{"name":"Alice Smith","position":"Software Engineer","department":"Technology"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("missing name rejected by binding", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		r := newEmployeeRouter(svc)

		body := `{"position":"Software Engineer","department":"Technology"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getByIDFn: func(ctx context.Context, id int) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.NotFound(id)
			},
		}
		r := newEmployeeRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/42", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
		assert.Contains(t, env.Error.Message, "42")
	})

	t.Run("non-integer id", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		r := newEmployeeRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	svc := &fakeEmployeeService{
		deleteFn: func(ctx context.Context, id int) error {
			assert.Equal(t, 3, id)
			return nil
		},
	}
	r := newEmployeeRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/employees/3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestEmployeeHandler_GetBalances(t *testing.T) {
	svc := &fakeEmployeeService{
		getBalancesFn: func(ctx context.Context, id int) (employee.BalancesResponse, error) {
			return employee.BalancesResponse{
				Vacation: employee.BalanceResponse{Allocated: 15, Used: 3, Remaining: 12},
				Sick:     employee.BalanceResponse{Allocated: 10, Remaining: 10},
				Personal: employee.BalanceResponse{Allocated: 5, Remaining: 5},
			}, nil
		},
	}
	r := newEmployeeRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/1/leave-balance", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())

	var resp employee.BalancesResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 12, resp.Vacation.Remaining)
}
