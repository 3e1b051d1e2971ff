package donation

import (
	"context"

	"gorm.io/gorm"

	"strays-backend/entities"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonations(ctx context.Context) ([]*entities.Donation, error)
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		UpdateCoordinates(ctx context.Context, id string, lat, lng float64) error
		CountDonations(ctx context.Context) (int64, error)
		SumQuantity(ctx context.Context) (int64, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonations(ctx context.Context) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) UpdateCoordinates(ctx context.Context, id string, lat, lng float64) error {
	return r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"pickup_latitude":  lat,
			"pickup_longitude": lng,
		}).Error
}

func (r *donationRepository) CountDonations(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *donationRepository) SumQuantity(ctx context.Context) (int64, error) {
	var result struct {
		Total int64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Select("COALESCE(SUM(quantity), 0) as total").
		Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}
