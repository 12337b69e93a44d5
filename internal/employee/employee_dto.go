package employee

import "github.com/ahmadluay9/hr-app/internal/quota"

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Department string `json:"department" binding:"required"`
}

type UpdateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Department string `json:"department" binding:"required"`
}

type BalanceResponse struct {
	Allocated int `json:"allocated"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

type BalancesResponse struct {
	Vacation BalanceResponse `json:"vacation"`
	Sick     BalanceResponse `json:"sick"`
	Personal BalanceResponse `json:"personal"`
}

type EmployeeResponse struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Position      string           `json:"position"`
	Department    string           `json:"department"`
	LeaveBalances BalancesResponse `json:"leave_balances"`
}

func mapBalance(b quota.Balance) BalanceResponse {
	return BalanceResponse{
		Allocated: b.Allocated,
		Used:      b.Used,
		Remaining: b.Remaining(),
	}
}

func mapBalances(b quota.Balances) BalancesResponse {
	return BalancesResponse{
		Vacation: mapBalance(b.Vacation),
		Sick:     mapBalance(b.Sick),
		Personal: mapBalance(b.Personal),
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Position:      e.Position,
		Department:    e.Department,
		LeaveBalances: mapBalances(e.LeaveBalances),
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}
