package holiday

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/security"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/rota-backend-go/internal/repository"
	"github.com/cmlabs-hris/rota-backend-go/internal/repository/memory"
	dataService "github.com/cmlabs-hris/rota-backend-go/internal/service/data"
	notificationService "github.com/cmlabs-hris/rota-backend-go/internal/service/notification"
	staffService "github.com/cmlabs-hris/rota-backend-go/internal/service/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (holiday.HolidayService, repository.Set) {
	t.Helper()
	repos := memory.NewSet()
	hasher := security.NewPINHasher(bcrypt.MinCost)
	require.NoError(t, dataService.NewDataService(repos, hasher).EnsureSeeded(context.Background()))
	notifier := notificationService.NewNotificationService(repos.Notifications, sse.NewHub(1))
	staffSvc := staffService.NewStaffService(repos, hasher, notifier)
	return NewHolidayService(repos.Holidays, staffSvc, notifier), repos
}

func submit(t *testing.T, svc holiday.HolidayService, staffID, start, end string) holiday.RequestResponse {
	t.Helper()
	resp, err := svc.Submit(context.Background(), holiday.SubmitRequest{StaffID: staffID, StartDate: start, EndDate: end})
	require.NoError(t, err)
	return resp
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)

	resp := submit(t, svc, "user-foh-002", "2025-07-01", "2025-07-05")
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "John Doe", resp.StaffName)
	assert.Equal(t, 5, resp.Days)

	unread, _ := repos.Notifications.CountUnread(ctx, "user-owner-001")
	assert.Equal(t, 1, unread)

	single := submit(t, svc, "user-foh-002", "2025-07-10", "2025-07-10")
	assert.Equal(t, 1, single.Days)

	mine, err := svc.ListForStaff(ctx, "user-foh-002")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestSubmit_Rejections(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Submit(ctx, holiday.SubmitRequest{StaffID: "user-foh-002", StartDate: "2025-07-05", EndDate: "2025-07-01"})
	assert.ErrorIs(t, err, holiday.ErrInvalidRange)

	_, err = svc.Submit(ctx, holiday.SubmitRequest{StaffID: "user-foh-002", StartDate: "5 July", EndDate: "2025-07-01"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.Submit(ctx, holiday.SubmitRequest{StaffID: "user-nobody", StartDate: "2025-07-01", EndDate: "2025-07-01"})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestDecide_OnlyFromPending(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)
	req := submit(t, svc, "user-boh-003", "2025-07-01", "2025-07-02")

	decided, err := svc.Decide(ctx, holiday.DecideRequest{RequestID: req.ID, DeciderID: "user-owner-001", Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "user-owner-001", *decided.DecidedBy)

	unread, _ := repos.Notifications.CountUnread(ctx, "user-boh-003")
	assert.Equal(t, 1, unread)

	_, err = svc.Decide(ctx, holiday.DecideRequest{RequestID: req.ID, DeciderID: "user-owner-001", Status: "denied"})
	assert.ErrorIs(t, err, holiday.ErrInvalidState)

	mine, err := svc.ListForStaff(ctx, "user-boh-003")
	require.NoError(t, err)
	assert.Equal(t, "approved", mine[0].Status)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDecide_Rejections(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	req := submit(t, svc, "user-boh-003", "2025-07-01", "2025-07-02")

	_, err := svc.Decide(ctx, holiday.DecideRequest{RequestID: req.ID, DeciderID: "user-owner-001", Status: "pending"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.Decide(ctx, holiday.DecideRequest{RequestID: 404, DeciderID: "user-owner-001", Status: "denied"})
	assert.ErrorIs(t, err, holiday.ErrRequestNotFound)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
