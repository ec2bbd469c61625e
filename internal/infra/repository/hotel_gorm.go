package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

type HotelGormRepository struct {
	db *gorm.DB
}

func NewHotelGormRepository(db *gorm.DB) *HotelGormRepository {
	return &HotelGormRepository{db: db}
}

func (r *HotelGormRepository) Create(
	ctx context.Context,
	h *models.Hotel,
) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HotelGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Hotel, error) {

	var h models.Hotel
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NewNotFound("hotel_not_found", "Hotel not found")
		}
		return nil, err
	}
	return &h, nil
}

func (r *HotelGormRepository) List(
	ctx context.Context,
	orderColumn string,
	limit int,
) ([]models.Hotel, error) {

	var hotels []models.Hotel
	if err := r.db.WithContext(ctx).
		Order(orderColumn + " ASC").
		Limit(limit).
		Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *HotelGormRepository) Update(
	ctx context.Context,
	h *models.Hotel,
) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HotelGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Hotel{}, id).Error
}
