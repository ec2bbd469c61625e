package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		// idx_bookings_no_duplicate closes the window between the
		// duplicate lookup in the usecase and this insert.
		if isUniqueViolation(err) {
			return httperr.NewBadRequest("booking_exists", "Booking already exists")
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NewNotFound("booking_not_found", "Booking not found")
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) FindDuplicate(
	ctx context.Context,
	start time.Time,
	end time.Time,
	userID uint,
	hotelID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"start_date = ? AND end_date = ? AND user_id = ? AND hotel_id = ?",
			start, end, userID, hotelID,
		).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Hotel").
		Where("user_id = ?", userID).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListByUserEmail(
	ctx context.Context,
	email string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("users.email = ?", email).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.NewBadRequest("booking_exists", "Booking already exists")
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}
