package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. They mirror the SQL semantics the real
// repositories implement, including the status-guarded updates.

type fakeVenueRepo struct {
	venues map[uuid.UUID]*entity.Venue
}

func (f *fakeVenueRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Venue, error) {
	return f.venues[id], nil
}

func (f *fakeVenueRepo) FindBySlug(_ context.Context, slug string) (*entity.Venue, error) {
	for _, venue := range f.venues {
		if venue.Slug == slug {
			return venue, nil
		}
	}
	return nil, nil
}

func (f *fakeVenueRepo) FindAllActive(_ context.Context, limit, offset int) ([]*entity.Venue, error) {
	var venues []*entity.Venue
	for _, venue := range f.venues {
		if venue.IsActive {
			venues = append(venues, venue)
		}
	}
	return venues, nil
}

func (f *fakeVenueRepo) CountActive(_ context.Context) (int64, error) {
	var count int64
	for _, venue := range f.venues {
		if venue.IsActive {
			count++
		}
	}
	return count, nil
}

type fakeTableRepo struct {
	tables map[int]*entity.Table
}

func (f *fakeTableRepo) FindByNumber(_ context.Context, tableNumber int) (*entity.Table, error) {
	return f.tables[tableNumber], nil
}

func (f *fakeTableRepo) FindAllActive(_ context.Context) ([]*entity.Table, error) {
	var tables []*entity.Table
	for _, table := range f.tables {
		if table.IsActive {
			tables = append(tables, table)
		}
	}
	return tables, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) FindByReference(_ context.Context, reference string) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, booking := range f.bookings {
		if booking.Reference == reference {
			copied := *booking
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}
	return bookings, nil
}

func (f *fakeBookingRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok || booking.Status != from {
		return fmt.Errorf("booking %s is no longer %s: %w", id.String(), string(from), entity.ErrInvalidTransition)
	}
	booking.Status = to
	return nil
}

func (f *fakeBookingRepo) ExistsOverlapping(_ context.Context, venueID uuid.UUID, eventDate, startTime, endTime time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, booking := range f.bookings {
		if booking.VenueID != venueID || !booking.EventDate.Equal(eventDate) {
			continue
		}
		if booking.Status == entity.BookingStatusCancelled || booking.Status == entity.BookingStatusRejected {
			continue
		}
		if entity.Overlaps(booking.StartTime, booking.EndTime, startTime, endTime) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) Approve(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
	}
	if booking.Status != entity.BookingStatusPending {
		return fmt.Errorf("booking %s is %s: %w", id.String(), string(booking.Status), entity.ErrInvalidTransition)
	}
	for _, other := range f.bookings {
		if other.ID == id || other.VenueID != booking.VenueID || !other.EventDate.Equal(booking.EventDate) {
			continue
		}
		if other.Status != entity.BookingStatusApproved {
			continue
		}
		if entity.Overlaps(other.StartTime, other.EndTime, booking.StartTime, booking.EndTime) {
			return fmt.Errorf("approved booking overlaps booking %s: %w", id.String(), entity.ErrConflict)
		}
	}
	booking.Status = entity.BookingStatusApproved
	return nil
}

func (f *fakeBookingRepo) FindApprovedBefore(_ context.Context, date time.Time) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range f.bookings {
		if booking.Status == entity.BookingStatusApproved && booking.EventDate.Before(date) {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}
	return bookings, nil
}

type fakeTableBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.TableBooking
}

func newFakeTableBookingRepo() *fakeTableBookingRepo {
	return &fakeTableBookingRepo{bookings: make(map[uuid.UUID]*entity.TableBooking)}
}

func (f *fakeTableBookingRepo) Create(_ context.Context, booking *entity.TableBooking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeTableBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TableBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeTableBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.TableBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var bookings []*entity.TableBooking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}
	return bookings, nil
}

func (f *fakeTableBookingRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeTableBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.TableBookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[id]
	if !ok || booking.Status != from {
		return fmt.Errorf("table booking %s is no longer %s: %w", id.String(), string(from), entity.ErrInvalidTransition)
	}
	booking.Status = to
	return nil
}

func (f *fakeTableBookingRepo) ExistsForSlot(_ context.Context, tableNumber int, bookingDate, bookingTime time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, booking := range f.bookings {
		if booking.TableNumber != tableNumber {
			continue
		}
		if booking.Status == entity.TableBookingStatusCancelled {
			continue
		}
		if booking.BookingDate.Equal(bookingDate) && booking.BookingTime.Equal(bookingTime) {
			return true, nil
		}
	}
	return false, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[uuid.UUID]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *payment
	f.payments[payment.ID] = &copied
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[id]
	if !ok {
		return nil, nil
	}
	copied := *payment
	return &copied, nil
}

func (f *fakePaymentRepo) FindByTransactionID(_ context.Context, transactionID string) (*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, payment := range f.payments {
		if payment.TransactionID != nil && *payment.TransactionID == transactionID {
			copied := *payment
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var payments []*entity.Payment
	for _, payment := range f.payments {
		if payment.BookingID != nil && *payment.BookingID == bookingID {
			copied := *payment
			payments = append(payments, &copied)
		}
	}
	return payments, nil
}

func (f *fakePaymentRepo) SumCompletedByBookingID(_ context.Context, bookingID uuid.UUID) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum float64
	for _, payment := range f.payments {
		if payment.BookingID != nil && *payment.BookingID == bookingID && payment.Status == entity.PaymentStatusCompleted {
			sum += payment.Amount
		}
	}
	return sum, nil
}

func (f *fakePaymentRepo) ApplyOutcome(_ context.Context, transactionID string, from []entity.PaymentStatus, to entity.PaymentStatus, gatewayResponse []byte) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, payment := range f.payments {
		if payment.TransactionID == nil || *payment.TransactionID != transactionID {
			continue
		}
		for _, status := range from {
			if payment.Status == status {
				payment.Status = to
				payment.GatewayResponse = gatewayResponse
				return 1, nil
			}
		}
	}
	return 0, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMailer) Send(to, subject, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to+": "+subject)
	return nil
}

func newTestRepository(venues map[uuid.UUID]*entity.Venue, tables map[int]*entity.Table) *repository.Repository {
	if venues == nil {
		venues = make(map[uuid.UUID]*entity.Venue)
	}
	if tables == nil {
		tables = make(map[int]*entity.Table)
	}
	return &repository.Repository{
		Venue:        &fakeVenueRepo{venues: venues},
		Table:        &fakeTableRepo{tables: tables},
		Booking:      newFakeBookingRepo(),
		TableBooking: newFakeTableBookingRepo(),
		Payment:      newFakePaymentRepo(),
	}
}

func newTestService(repo *repository.Repository) *Service {
	return NewService(repo, nil, &fakeMailer{}, zap.NewNop())
}
