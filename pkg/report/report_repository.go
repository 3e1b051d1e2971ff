package report

import (
	"context"

	"gorm.io/gorm"

	"strays-backend/entities"
)

type (
	ReportRepository interface {
		CreateReport(ctx context.Context, report *entities.Report) error
		GetReports(ctx context.Context, animalType string) ([]*entities.Report, error)
		GetReportByID(ctx context.Context, id string) (*entities.Report, error)
		GetDistinctAnimalTypes(ctx context.Context) ([]string, error)
		UpdateCoordinates(ctx context.Context, id string, lat, lng float64) error
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CreateReport(ctx context.Context, report *entities.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) GetReports(ctx context.Context, animalType string) ([]*entities.Report, error) {
	var reports []*entities.Report
	query := r.db.WithContext(ctx).Preload("Reporter")
	if animalType != "" {
		query = query.Where("animal_type ILIKE ?", "%"+animalType+"%")
	}
	if err := query.Order("report_time DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) GetReportByID(ctx context.Context, id string) (*entities.Report, error) {
	var report entities.Report
	if err := r.db.WithContext(ctx).
		Preload("Reporter").
		Where("id = ?", id).
		First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) GetDistinctAnimalTypes(ctx context.Context) ([]string, error) {
	var animalTypes []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Report{}).
		Distinct("animal_type").
		Order("animal_type ASC").
		Pluck("animal_type", &animalTypes).Error; err != nil {
		return nil, err
	}
	return animalTypes, nil
}

func (r *reportRepository) UpdateCoordinates(ctx context.Context, id string, lat, lng float64) error {
	return r.db.WithContext(ctx).
		Model(&entities.Report{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"latitude":  lat,
			"longitude": lng,
		}).Error
}
