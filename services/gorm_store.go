package services

import (
	"context"
	stderrors "errors"

	"mysterystays/commands"
	"mysterystays/errors"
	"mysterystays/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists to a SQL database through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates or updates the tables the store uses.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&models.Property{}, &models.Preference{}, &models.Booking{})
}

// Advisory lock keys serializing id allocation per table.
const (
	propertySeqLock int64 = 7301
	bookingSeqLock  int64 = 7302
)

// maxSeqAttempts bounds retries when a concurrent insert claimed the same id.
const maxSeqAttempts = 3

// retryOnDuplicate runs fn again while it fails with a duplicate key.
func retryOnDuplicate(attempts int, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); !stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}

// nextSeq returns max(seq)+1 for the model's table inside tx. On postgres it
// first takes a transaction-scoped advisory lock so concurrent writers queue.
func nextSeq(tx *gorm.DB, model interface{}, lockKey int64) (int, error) {
	if tx.Dialector != nil && tx.Dialector.Name() == "postgres" {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", lockKey).Error; err != nil {
			return 0, err
		}
	}
	var maxSeq int
	if err := tx.Model(model).Select("COALESCE(MAX(seq), 0)").Scan(&maxSeq).Error; err != nil {
		return 0, err
	}
	return maxSeq + 1, nil
}

func (s *GormStore) CreateProperty(ctx context.Context, property *models.Property) error {
	err := retryOnDuplicate(maxSeqAttempts, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			seq, err := nextSeq(tx, &models.Property{}, propertySeqLock)
			if err != nil {
				return err
			}
			property.Seq = seq
			property.ID = models.PropertyID(seq)
			return tx.Create(property).Error
		})
	})
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to create property", err)
	}
	return nil
}

func (s *GormStore) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	if err := s.db.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodePropertyNotFound, "Property not found", errors.ErrPropertyNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load property", err)
	}
	return &property, nil
}

func (s *GormStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	if err := s.db.WithContext(ctx).Order("seq").Find(&properties).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list properties", err)
	}
	return properties, nil
}

func (s *GormStore) SavePreference(ctx context.Context, pref *models.Preference) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(pref).Error
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to save preferences", err)
	}
	return nil
}

func (s *GormStore) GetPreference(ctx context.Context, userID string) (*models.Preference, error) {
	var pref models.Preference
	if err := s.db.WithContext(ctx).First(&pref, "user_id = ?", userID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load preferences", err)
	}
	return &pref, nil
}

func (s *GormStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	err := retryOnDuplicate(maxSeqAttempts, func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			seq, err := nextSeq(tx, &models.Booking{}, bookingSeqLock)
			if err != nil {
				return err
			}
			booking.Seq = seq
			booking.ID = models.BookingID(seq)
			return commands.NewCreateBookingCommand(booking, tx).Execute(ctx)
		})
	})
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to create booking", err)
	}
	return nil
}

func (s *GormStore) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, "Booking not found", errors.ErrBookingNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load booking", err)
	}
	return &booking, nil
}

func (s *GormStore) UpdateBookingStatus(ctx context.Context, booking *models.Booking) error {
	if err := commands.NewUpdateBookingStatusCommand(booking, s.db).Execute(ctx); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to update booking", err)
	}
	return nil
}

func (s *GormStore) ListBookingsByStatus(ctx context.Context, statuses ...string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).Where("status IN ?", statuses).Order("seq").Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to list bookings", err)
	}
	return bookings, nil
}
