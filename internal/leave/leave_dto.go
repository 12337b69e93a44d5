package leave

import (
	"time"

	leaveerrors "github.com/ahmadluay9/hr-app/internal/leave/errors"
)

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=vacation sick personal"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"max=300"`
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

type LeaveResponse struct {
	ID         int    `json:"id"`
	EmployeeID int    `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
}

const dateLayout = "2006-01-02"

func mapToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		LeaveType:  string(l.LeaveType),
		StartDate:  l.StartDate.Format(dateLayout),
		EndDate:    l.EndDate.Format(dateLayout),
		Reason:     l.Reason,
		Status:     string(l.Status),
	}
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}
