package leave_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avatarctic/hr-gateway/internal/core/domain/leave"
)

func TestSubmitRequestValidate(t *testing.T) {
	valid := leave.SubmitRequest{LeaveTypeID: "annual", StartDate: "2026-11-02", EndDate: "2026-11-04"}

	tests := []struct {
		name   string
		mutate func(r *leave.SubmitRequest)
		want   error
	}{
		{"valid", func(r *leave.SubmitRequest) {}, nil},
		{"single day", func(r *leave.SubmitRequest) { r.EndDate = r.StartDate }, nil},
		{"half day", func(r *leave.SubmitRequest) { r.EndDate, r.HalfDay = r.StartDate, true }, nil},
		{"missing type", func(r *leave.SubmitRequest) { r.LeaveTypeID = "  " }, leave.ErrLeaveTypeRequired},
		{"bad start", func(r *leave.SubmitRequest) { r.StartDate = "02/11/2026" }, leave.ErrInvalidDate},
		{"bad end", func(r *leave.SubmitRequest) { r.EndDate = "" }, leave.ErrInvalidDate},
		{"end before start", func(r *leave.SubmitRequest) { r.EndDate = "2026-11-01" }, leave.ErrInvalidRange},
		{"half day range", func(r *leave.SubmitRequest) { r.HalfDay = true }, leave.ErrHalfDayRange},
		{"long reason", func(r *leave.SubmitRequest) { r.Reason = strings.Repeat("x", 501) }, leave.ErrReasonTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStatusCancellable(t *testing.T) {
	assert.True(t, leave.StatusPending.Cancellable())
	assert.True(t, leave.StatusApproved.Cancellable())
	assert.False(t, leave.StatusRejected.Cancellable())
	assert.False(t, leave.StatusCancelled.Cancellable())
}
