package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	bookingRepo "dentalcare/database/repository/booking"
	"dentalcare/models"
	"dentalcare/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// -- Mock Repositories --

type memoryBookingRepo struct {
	mu       sync.Mutex
	bookings []*models.Booking
	seq      int
}

func key(treatment, date, email string) string { return treatment + "|" + date + "|" + email }

func (m *memoryBookingRepo) InsertIfAbsent(_ context.Context, b *models.Booking) (*models.Booking, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.bookings {
		if key(existing.Treatment, existing.Date, existing.PatientEmail) == key(b.Treatment, b.Date, b.PatientEmail) {
			cp := *existing
			return &cp, false, nil
		}
	}
	m.seq++
	b.ID = fmt.Sprintf("b-%d", m.seq)
	cp := *b
	m.bookings = append(m.bookings, &cp)
	return nil, true, nil
}

func (m *memoryBookingRepo) FindByKey(_ context.Context, treatment, date, email string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if key(b.Treatment, b.Date, b.PatientEmail) == key(treatment, date, email) {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryBookingRepo) GetByDate(_ context.Context, date string) ([]models.Booking, error) {
	return m.filter(func(b *models.Booking) bool { return b.Date == date }), nil
}

func (m *memoryBookingRepo) GetByPatient(_ context.Context, email string) ([]models.Booking, error) {
	return m.filter(func(b *models.Booking) bool { return b.PatientEmail == email }), nil
}

func (m *memoryBookingRepo) filter(keep func(*models.Booking) bool) []models.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if keep(b) {
			out = append(out, *b)
		}
	}
	return out
}

func (m *memoryBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (m *memoryBookingRepo) MarkPaid(_ context.Context, id, transactionID string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID != id {
			continue
		}
		if b.Paid {
			return nil, bookingRepo.ErrAlreadyPaid
		}
		b.Paid = true
		b.TransactionID = transactionID
		cp := *b
		return &cp, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

type catalogRepo struct {
	treatments map[string]models.Treatment
}

func (c *catalogRepo) GetAll(_ context.Context) ([]models.Treatment, error) { return nil, nil }

func (c *catalogRepo) GetSummaries(_ context.Context) ([]models.TreatmentSummary, error) {
	return nil, nil
}

func (c *catalogRepo) GetByName(_ context.Context, name string) (*models.Treatment, error) {
	t, ok := c.treatments[name]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (c *catalogRepo) Upsert(_ context.Context, _ *models.Treatment) error { return nil }

type paymentLog struct {
	mu       sync.Mutex
	payments []models.Payment
	err      error
}

func (p *paymentLog) Create(_ context.Context, pay *models.Payment) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.payments = append(p.payments, *pay)
	return nil
}

type recordingInvalidator struct {
	mu    sync.Mutex
	dates []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, date string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dates = append(r.dates, date)
}

type recordingReminders struct {
	mu        sync.Mutex
	scheduled []models.Booking
	err       error
}

func (r *recordingReminders) ScheduleReminder(_ context.Context, b models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, b)
	return r.err
}

type fixture struct {
	svc       *DefaultBookingService
	bookings  *memoryBookingRepo
	payments  *paymentLog
	invalid   *recordingInvalidator
	reminders *recordingReminders
}

func newFixture() *fixture {
	f := &fixture{
		bookings:  &memoryBookingRepo{},
		payments:  &paymentLog{},
		invalid:   &recordingInvalidator{},
		reminders: &recordingReminders{},
	}
	f.svc = &DefaultBookingService{
		Bookings: f.bookings,
		Treatments: &catalogRepo{treatments: map[string]models.Treatment{
			"Cleaning": {ID: "t-1", Name: "Cleaning", Slots: []string{"9AM", "10AM", "11AM"}, Price: 80},
		}},
		Payments:     f.payments,
		Availability: f.invalid,
		Reminders:    f.reminders,
		Dates:        utils.DateValidator{Layouts: []string{"2006-01-02"}},
		Logger:       zap.NewNop(),
	}
	return f
}

func candidate() models.Booking {
	return models.Booking{Treatment: "Cleaning", Date: "2024-01-01", Slot: "10AM", PatientEmail: "ann@example.com"}
}

func TestCreateBookingAdmitsNewBooking(t *testing.T) {
	f := newFixture()

	res, err := f.svc.CreateBooking(context.Background(), candidate())
	require.NoError(t, err)

	assert.True(t, res.Success)
	require.NotNil(t, res.Result)
	assert.NotEmpty(t, res.Result.ID)
	assert.Equal(t, "t-1", res.Result.TreatmentID)
	assert.Equal(t, 80.0, res.Result.Price)
	assert.False(t, res.Result.Paid)
	assert.Equal(t, []string{"2024-01-01"}, f.invalid.dates)
	assert.Len(t, f.reminders.scheduled, 1)
}

func TestCreateBookingDuplicateReturnsExisting(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.svc.CreateBooking(ctx, candidate())
	require.NoError(t, err)

	again := candidate()
	again.Slot = "11AM"
	res, err := f.svc.CreateBooking(ctx, again)
	require.NoError(t, err)

	assert.False(t, res.Success)
	require.NotNil(t, res.Booking)
	assert.Equal(t, first.Result.ID, res.Booking.ID)
	assert.Equal(t, "10AM", res.Booking.Slot)
	assert.Len(t, f.invalid.dates, 1)
}

func TestCreateBookingIgnoresClientPaymentFields(t *testing.T) {
	f := newFixture()
	c := candidate()
	c.Paid = true
	c.TransactionID = "forged"

	res, err := f.svc.CreateBooking(context.Background(), c)
	require.NoError(t, err)
	assert.False(t, res.Result.Paid)
	assert.Empty(t, res.Result.TransactionID)
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*models.Booking)
		field string
	}{
		{"unknown treatment", func(b *models.Booking) { b.Treatment = "Whitening" }, "treatment"},
		{"slot outside catalog", func(b *models.Booking) { b.Slot = "3PM" }, "slot"},
		{"empty date", func(b *models.Booking) { b.Date = "" }, "date"},
		{"missing patient", func(b *models.Booking) { b.PatientEmail = "" }, "patientEmail"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			c := candidate()
			tt.edit(&c)

			_, err := f.svc.CreateBooking(context.Background(), c)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Empty(t, f.bookings.bookings)
		})
	}
}

func TestCreateBookingStrictDates(t *testing.T) {
	f := newFixture()
	f.svc.Dates.Strict = true

	c := candidate()
	c.Date = "01/01/2024"
	_, err := f.svc.CreateBooking(context.Background(), c)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "date", verr.Field)
}

func TestCreateBookingReminderFailureDoesNotRejectBooking(t *testing.T) {
	f := newFixture()
	f.reminders.err = errors.New("queue down")

	res, err := f.svc.CreateBooking(context.Background(), candidate())
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestConcurrentCreateBookingAdmitsExactlyOne(t *testing.T) {
	f := newFixture()
	const callers = 20

	var wg sync.WaitGroup
	results := make(chan models.AdmissionResult, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.svc.CreateBooking(context.Background(), candidate())
			assert.NoError(t, err)
			results <- res
		}()
	}
	wg.Wait()
	close(results)

	admitted, duplicates := 0, 0
	for res := range results {
		if res.Success {
			admitted++
		} else {
			duplicates++
		}
	}
	assert.Equal(t, 1, admitted, "uniqueness guard must admit exactly one booking")
	assert.Equal(t, callers-1, duplicates)
	assert.Len(t, f.bookings.bookings, 1)
}

func TestCompletePayment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res, err := f.svc.CreateBooking(ctx, candidate())
	require.NoError(t, err)

	paid, err := f.svc.CompletePayment(ctx, res.Result.ID, models.PaymentCompletion{TransactionID: "pi_1"})
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	assert.Equal(t, "pi_1", paid.TransactionID)
	require.Len(t, f.payments.payments, 1)
	assert.Equal(t, 80.0, f.payments.payments[0].Amount)
	assert.Equal(t, res.Result.ID, f.payments.payments[0].BookingID)

	_, err = f.svc.CompletePayment(ctx, res.Result.ID, models.PaymentCompletion{TransactionID: "pi_2"})
	assert.ErrorIs(t, err, ErrAlreadyPaid)
	assert.Len(t, f.payments.payments, 1)
}

func TestCompletePaymentErrors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.CompletePayment(ctx, "missing", models.PaymentCompletion{TransactionID: "pi_1"})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.svc.CompletePayment(ctx, "missing", models.PaymentCompletion{})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestCompletePaymentRecordFailureKeepsBookingPaid(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	res, err := f.svc.CreateBooking(ctx, candidate())
	require.NoError(t, err)
	f.payments.err = errors.New("insert failed")

	paid, err := f.svc.CompletePayment(ctx, res.Result.ID, models.PaymentCompletion{TransactionID: "pi_1"})
	require.NoError(t, err)
	assert.True(t, paid.Paid)
}

func TestGetPatientBookings(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.svc.CreateBooking(ctx, candidate())
	require.NoError(t, err)

	other := candidate()
	other.PatientEmail = "bob@example.com"
	_, err = f.svc.CreateBooking(ctx, other)
	require.NoError(t, err)

	mine, err := f.svc.GetPatientBookings(ctx, "ann@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "ann@example.com", mine[0].PatientEmail)
}

func TestPatientEmailIsCaseInsensitive(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	mixed := candidate()
	mixed.PatientEmail = "  Ann@Example.com "
	res, err := f.svc.CreateBooking(ctx, mixed)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "ann@example.com", res.Result.PatientEmail)

	again, err := f.svc.CreateBooking(ctx, candidate())
	require.NoError(t, err)
	assert.False(t, again.Success)

	mine, err := f.svc.GetPatientBookings(ctx, "ANN@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
