package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"mysterystays/cache"
	"mysterystays/dto"
	"mysterystays/errors"
	"mysterystays/models"

	"github.com/google/go-cmp/cmp"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) SendMessage(message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) (*StayService, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	local := cache.NewLayered(nil, 100, time.Minute)
	t.Cleanup(local.Stop)
	return NewStayService(StayServiceOptions{
		Store:    NewMemoryStore(),
		Cache:    local,
		Notifier: notifier,
		Now:      fixedNow,
	}), notifier
}

func loft() dto.PropertyRequest {
	return dto.PropertyRequest{
		Name:          "Sunny Loft",
		OriginalPrice: 150,
		Amenities:     []string{"wifi", "kitchen"},
		Bedrooms:      2,
		Location:      models.Location{City: "Lisbon", Country: "Portugal"},
		Address:       "Rua Augusta 1",
	}
}

func cabin() dto.PropertyRequest {
	return dto.PropertyRequest{
		Name:          "Mountain Cabin",
		OriginalPrice: 300,
		Amenities:     []string{"wifi"},
		Bedrooms:      2,
		Location:      models.Location{City: "Athens", Country: "Greece"},
	}
}

func TestAddProperty_AssignsSequentialIDsAndDiscount(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.AddProperty(ctx, loft())
	if err != nil {
		t.Fatalf("AddProperty: %v", err)
	}
	second, err := svc.AddProperty(ctx, cabin())
	if err != nil {
		t.Fatalf("AddProperty: %v", err)
	}
	if first != "prop_1" || second != "prop_2" {
		t.Fatalf("ids = %q, %q; want prop_1, prop_2", first, second)
	}

	stored, err := svc.store.GetProperty(ctx, first)
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if stored.DiscountPrice != 75 {
		t.Errorf("DiscountPrice = %v, want 75", stored.DiscountPrice)
	}
	if stored.Location.City != "Lisbon" {
		t.Errorf("location not stored: %+v", stored.Location)
	}
}

func TestAddProperty_RequiresName(t *testing.T) {
	svc, _ := newTestService(t)
	req := loft()
	req.Name = ""

	_, err := svc.AddProperty(context.Background(), req)
	if !errors.HasCode(err, errors.ErrCodeRequiredField) {
		t.Fatalf("err = %v, want REQUIRED_FIELD", err)
	}
}

func TestMatch_UnknownUserGetsEmptyList(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.AddProperty(context.Background(), loft()); err != nil {
		t.Fatal(err)
	}

	matches, err := svc.Match(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if matches == nil || len(matches) != 0 {
		t.Fatalf("matches = %#v, want empty non-nil slice", matches)
	}
}

func TestMatch_FiltersAndHidesLocation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	for _, p := range []dto.PropertyRequest{loft(), cabin()} {
		if _, err := svc.AddProperty(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	err := svc.RegisterPreferences(ctx, dto.RegisterPreferencesRequest{
		UserID: "user42",
		Preferences: dto.Preferences{
			Amenities: []string{"WiFi", "Kitchen "},
			PriceMax:  dto.Float(90),
			Bedrooms:  dto.Int(2),
		},
	})
	if err != nil {
		t.Fatalf("RegisterPreferences: %v", err)
	}

	matches, err := svc.Match(ctx, "user42")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	want := []dto.MatchedProperty{{
		ID:            "prop_1",
		Name:          "Sunny Loft",
		OriginalPrice: 150,
		DiscountPrice: 75,
		Amenities:     []string{"wifi", "kitchen"},
		Bedrooms:      2,
		Region:        "Lisbon, Portugal",
	}}
	if diff := cmp.Diff(want, matches); diff != "" {
		t.Errorf("matches mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_SeesPropertiesAddedAfterCaching(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if err := svc.RegisterPreferences(ctx, dto.RegisterPreferencesRequest{
		UserID:      "user1",
		Preferences: dto.Preferences{Amenities: []string{"wifi"}},
	}); err != nil {
		t.Fatal(err)
	}

	if matches, _ := svc.Match(ctx, "user1"); len(matches) != 0 {
		t.Fatalf("expected no matches before any property, got %d", len(matches))
	}
	if _, err := svc.AddProperty(ctx, cabin()); err != nil {
		t.Fatal(err)
	}
	matches, err := svc.Match(ctx, "user1")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || matches[0].ID != "prop_1" {
		t.Fatalf("matches = %+v, want prop_1", matches)
	}
}

func TestRegisterPreferences_ReplacesPrevious(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if _, err := svc.AddProperty(ctx, loft()); err != nil {
		t.Fatal(err)
	}

	register := func(bedrooms int) {
		t.Helper()
		err := svc.RegisterPreferences(ctx, dto.RegisterPreferencesRequest{
			UserID:      "user7",
			Preferences: dto.Preferences{Bedrooms: dto.Int(bedrooms)},
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	register(3)
	if matches, _ := svc.Match(ctx, "user7"); len(matches) != 0 {
		t.Fatalf("3 bedrooms should not match, got %d", len(matches))
	}
	register(2)
	if matches, _ := svc.Match(ctx, "user7"); len(matches) != 1 {
		t.Fatalf("2 bedrooms should match, got %d", len(matches))
	}
}

func TestBook_ReturnsLimitedConfirmation(t *testing.T) {
	svc, notifier := newTestService(t)
	ctx := context.Background()
	propertyID, err := svc.AddProperty(ctx, loft())
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Book(ctx, dto.BookingRequest{
		UserID:     "user42",
		PropertyID: propertyID,
		CheckIn:    "2025-05-10",
		CheckOut:   "2025-05-14",
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	want := &dto.BookingConfirmation{
		BookingID:  "book_1",
		UserID:     "user42",
		PropertyID: "prop_1",
		CheckIn:    "2025-05-10",
		CheckOut:   "2025-05-14",
		TotalPrice: 300,
		Status:     models.BookingStatusConfirmed,
		PropertyDetails: dto.LimitedPropertyDetails{
			ID:            "prop_1",
			Name:          "Sunny Loft",
			OriginalPrice: 150,
			DiscountPrice: 75,
			Amenities:     []string{"wifi", "kitchen"},
			Bedrooms:      2,
			Region:        "Lisbon, Portugal",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("confirmation mismatch (-want +got):\n%s", diff)
	}

	if len(notifier.messages) != 1 || !strings.Contains(notifier.messages[0], "book_1") {
		t.Errorf("notifications = %v", notifier.messages)
	}
}

func TestBook_UnknownProperty(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Book(context.Background(), dto.BookingRequest{
		UserID:     "user1",
		PropertyID: "prop_99",
		CheckIn:    "2025-05-10",
		CheckOut:   "2025-05-11",
	})
	if !errors.HasCode(err, errors.ErrCodePropertyNotFound) {
		t.Fatalf("err = %v, want PROPERTY_NOT_FOUND", err)
	}
}

func TestBook_RejectsBadDates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if _, err := svc.AddProperty(ctx, loft()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		code     errors.ErrorCode
	}{
		{"not a date", "10/05/2025", "2025-05-12", errors.ErrCodeInvalidFormat},
		{"check out before check in", "2025-05-12", "2025-05-10", errors.ErrCodeValidation},
		{"same day", "2025-05-12", "2025-05-12", errors.ErrCodeValidation},
		{"missing check out", "2025-05-12", "", errors.ErrCodeRequiredField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Book(ctx, dto.BookingRequest{
				UserID:     "user1",
				PropertyID: "prop_1",
				CheckIn:    tt.checkIn,
				CheckOut:   tt.checkOut,
			})
			if !errors.HasCode(err, tt.code) {
				t.Fatalf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func book(t *testing.T, svc *StayService, checkIn, checkOut string) string {
	t.Helper()
	ctx := context.Background()
	propertyID, err := svc.AddProperty(ctx, loft())
	if err != nil {
		t.Fatal(err)
	}
	confirmation, err := svc.Book(ctx, dto.BookingRequest{
		UserID:     "user1",
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		t.Fatal(err)
	}
	return confirmation.BookingID
}

func TestReveal_DisclosesLocationAndMarksRevealed(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	bookingID := book(t, svc, "2025-05-10", "2025-05-14")

	for i := 0; i < 2; i++ {
		details, err := svc.Reveal(ctx, bookingID)
		if err != nil {
			t.Fatalf("Reveal #%d: %v", i+1, err)
		}
		if details.Location != (models.Location{City: "Lisbon", Country: "Portugal"}) {
			t.Errorf("Location = %+v", details.Location)
		}
		if details.Address != "Rua Augusta 1" {
			t.Errorf("Address = %q", details.Address)
		}
	}

	booking, err := svc.store.GetBooking(ctx, bookingID)
	if err != nil {
		t.Fatal(err)
	}
	if booking.Status != models.BookingStatusRevealed {
		t.Errorf("Status = %q, want revealed", booking.Status)
	}
}

func TestReveal_UnknownBooking(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Reveal(context.Background(), "book_404")
	if !errors.HasCode(err, errors.ErrCodeBookingNotFound) {
		t.Fatalf("err = %v, want BOOKING_NOT_FOUND", err)
	}
}

func TestCancel_BlocksReveal(t *testing.T) {
	svc, notifier := newTestService(t)
	ctx := context.Background()
	bookingID := book(t, svc, "2025-05-10", "2025-05-14")

	booking, err := svc.Cancel(ctx, bookingID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if booking.Status != models.BookingStatusCancelled {
		t.Errorf("Status = %q", booking.Status)
	}
	if last := notifier.messages[len(notifier.messages)-1]; !strings.Contains(last, "cancelled") {
		t.Errorf("last notification = %q", last)
	}

	if _, err := svc.Reveal(ctx, bookingID); !errors.HasCode(err, errors.ErrCodeInvalidOperation) {
		t.Errorf("Reveal after cancel err = %v, want INVALID_OPERATION", err)
	}
	if _, err := svc.Cancel(ctx, bookingID); !errors.HasCode(err, errors.ErrCodeInvalidOperation) {
		t.Errorf("second Cancel err = %v, want INVALID_OPERATION", err)
	}
}

func TestCompletePastBookings(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	past := book(t, svc, "2025-05-01", "2025-05-05")
	revealedPast := book(t, svc, "2025-05-02", "2025-05-09")
	current := book(t, svc, "2025-05-08", "2025-05-10")
	if _, err := svc.Reveal(ctx, revealedPast); err != nil {
		t.Fatal(err)
	}

	n, err := svc.CompletePastBookings(ctx)
	if err != nil {
		t.Fatalf("CompletePastBookings: %v", err)
	}
	if n != 2 {
		t.Fatalf("completed %d, want 2", n)
	}

	want := map[string]string{
		past:         models.BookingStatusCompleted,
		revealedPast: models.BookingStatusCompleted,
		current:      models.BookingStatusConfirmed,
	}
	for id, status := range want {
		b, err := svc.store.GetBooking(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if b.Status != status {
			t.Errorf("%s status = %q, want %q", id, b.Status, status)
		}
	}

	if n, _ := svc.CompletePastBookings(ctx); n != 0 {
		t.Errorf("second run completed %d, want 0", n)
	}
}
