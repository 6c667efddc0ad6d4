package staff

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/availability"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/rota"
	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/security"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/rota-backend-go/internal/repository"
	"github.com/cmlabs-hris/rota-backend-go/internal/repository/memory"
	notificationService "github.com/cmlabs-hris/rota-backend-go/internal/service/notification"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func wage(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newTestService(t *testing.T) (staff.StaffService, repository.Set) {
	t.Helper()
	repos := memory.NewSet()
	hasher := security.NewPINHasher(bcrypt.MinCost)
	notifier := notificationService.NewNotificationService(repos.Notifications, sse.NewHub(4))

	ctx := context.Background()
	profiles, err := fixtures.SeedProfiles(hasher, time.Now())
	require.NoError(t, err)
	require.NoError(t, repos.Staff.Reset(ctx, fixtures.NextStaffSequence))
	for _, p := range profiles {
		_, err := repos.Staff.Create(ctx, p)
		require.NoError(t, err)
	}

	return NewStaffService(repos, hasher, notifier), repos
}

func TestCreate_GeneratesIDAndDefaultPIN(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, staff.CreateStaffRequest{
		Name: "  Lyndsey ", Gender: "female", Role: "Manager", Wage: wage("15.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "user-man-004", created.ID)
	assert.Equal(t, "Lyndsey", created.Name)
	assert.Equal(t, "👩", created.Icon)

	_, err = svc.Authenticate(ctx, created.ID, security.DefaultPIN)
	assert.NoError(t, err)

	next, err := svc.Create(ctx, staff.CreateStaffRequest{
		Name: "Sam", Gender: "other", Role: "BOH", Wage: wage("11.44"),
	})
	require.NoError(t, err)
	assert.Equal(t, "user-boh-005", next.ID)
}

func TestCreate_DuplicateNameLeavesDirectoryUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	before, err := svc.ListFull(ctx)
	require.NoError(t, err)

	_, err = svc.Create(ctx, staff.CreateStaffRequest{
		Name: "john doe", Gender: "male", Role: "FOH", Wage: wage("11.44"),
	})
	assert.ErrorIs(t, err, staff.ErrDuplicateName)

	after, err := svc.ListFull(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCreate_InvalidInput(t *testing.T) {
	svc, _ := newTestService(t)
	cases := []staff.CreateStaffRequest{
		{Gender: "male", Role: "FOH", Wage: wage("1")},
		{Name: "A", Gender: "robot", Role: "FOH", Wage: wage("1")},
		{Name: "A", Gender: "male", Role: "Chef", Wage: wage("1")},
		{Name: "A", Gender: "male", Role: "FOH"},
		{Name: "A", Gender: "male", Role: "FOH", Wage: wage("-0.01")},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs, "%+v", req)
	}
}

func TestListPublic_HidesWage(t *testing.T) {
	svc, _ := newTestService(t)
	list, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Jane Smith", list[0].Name)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	err := svc.Update(ctx, "user-foh-002", staff.UpdateStaffRequest{
		Name: "John D", Gender: "other", Role: "Supervisor", Wage: wage("13.5"),
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, "user-foh-002")
	require.NoError(t, err)
	assert.Equal(t, "John D", got.Name)
	assert.Equal(t, "👤", got.Icon)
	assert.Equal(t, staff.RoleSupervisor, got.Role)
	_, err = svc.Authenticate(ctx, "user-foh-002", "1234")
	assert.NoError(t, err, "update must not touch the PIN")

	err = svc.Update(ctx, "user-foh-002", staff.UpdateStaffRequest{
		Name: "JANE SMITH", Gender: "male", Role: "FOH", Wage: wage("1"),
	})
	assert.ErrorIs(t, err, staff.ErrDuplicateName)

	err = svc.Update(ctx, "user-nobody", staff.UpdateStaffRequest{
		Name: "X", Gender: "male", Role: "FOH", Wage: wage("1"),
	})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestUpdate_OwnerKeepsRole(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	err := svc.Update(ctx, "user-owner-001", staff.UpdateStaffRequest{
		Name: "Site Owner", Gender: "other", Role: "FOH", Wage: wage("0"),
	})
	assert.ErrorIs(t, err, staff.ErrOwnerRoleLocked)

	got, err := svc.GetByID(ctx, "user-owner-001")
	require.NoError(t, err)
	assert.Equal(t, staff.RoleOwner, got.Role)

	err = svc.Update(ctx, "user-owner-001", staff.UpdateStaffRequest{
		Name: "Head Owner", Gender: "other", Role: "Owner", Wage: wage("0"),
	})
	require.NoError(t, err)
	got, err = svc.GetByID(ctx, "user-owner-001")
	require.NoError(t, err)
	assert.Equal(t, "Head Owner", got.Name)
}

func TestChangeOwnPIN(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	err := svc.ChangeOwnPIN(ctx, "user-foh-002", staff.ChangePINRequest{CurrentPIN: "9999", NewPIN: "4321"})
	assert.ErrorIs(t, err, staff.ErrIncorrectPIN)

	err = svc.ChangeOwnPIN(ctx, "user-foh-002", staff.ChangePINRequest{CurrentPIN: "1234", NewPIN: "12a4"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	require.NoError(t, svc.ChangeOwnPIN(ctx, "user-foh-002", staff.ChangePINRequest{CurrentPIN: "1234", NewPIN: "4321"}))
	_, err = svc.Authenticate(ctx, "user-foh-002", "4321")
	assert.NoError(t, err)
	_, err = svc.Authenticate(ctx, "user-foh-002", "1234")
	assert.ErrorIs(t, err, staff.ErrIncorrectPIN)
}

func TestResetPIN(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)

	pin, err := svc.ResetPIN(ctx, "user-boh-003")
	require.NoError(t, err)
	assert.True(t, validator.IsValidPIN(pin))

	_, err = svc.Authenticate(ctx, "user-boh-003", pin)
	assert.NoError(t, err)

	unread, err := repos.Notifications.CountUnread(ctx, "user-boh-003")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	_, err = svc.ResetPIN(ctx, "user-nobody")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestDelete_CascadesAndProtectsOwner(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)

	require.NoError(t, repos.Shifts.Upsert(ctx, rota.Shift{DayKey: "2025-06-09", StaffID: "user-foh-002", TimeRange: "09:00-17:00"}))
	require.NoError(t, repos.Shifts.Upsert(ctx, rota.Shift{DayKey: "2025-06-09", StaffID: "user-boh-003", TimeRange: "09:00-17:00"}))
	require.NoError(t, repos.Availability.Put(ctx, availability.Entry{StaffID: "user-foh-002", DayKey: "2025-06-09", Tags: availability.NewTagSet(availability.TagMorning)}))
	_, err := repos.Holidays.Create(ctx, holiday.Request{StaffID: "user-foh-002", Status: holiday.StatusPending})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "user-owner-001"), staff.ErrOwnerCannotBeDeleted)
	assert.ErrorIs(t, svc.Delete(ctx, "user-nobody"), staff.ErrStaffNotFound)

	require.NoError(t, svc.Delete(ctx, "user-foh-002"))

	_, err = svc.GetByID(ctx, "user-foh-002")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
	shifts, _ := repos.Shifts.GetByDay(ctx, "2025-06-09")
	require.Len(t, shifts, 1)
	assert.Equal(t, "user-boh-003", shifts[0].StaffID)
	avail, _ := repos.Availability.GetByDay(ctx, "2025-06-09")
	assert.Empty(t, avail)
	requests, _ := repos.Holidays.GetByStaffID(ctx, "user-foh-002")
	assert.Empty(t, requests)
}
