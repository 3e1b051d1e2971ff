package stats

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"strays-backend/entities"
)

type fakeDonationRepo struct {
	donations []*entities.Donation
}

func (f *fakeDonationRepo) CreateDonation(_ context.Context, d *entities.Donation) error {
	f.donations = append(f.donations, d)
	return nil
}

func (f *fakeDonationRepo) GetDonations(_ context.Context) ([]*entities.Donation, error) {
	return f.donations, nil
}

func (f *fakeDonationRepo) GetDonationByID(_ context.Context, _ string) (*entities.Donation, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDonationRepo) UpdateCoordinates(_ context.Context, _ string, _, _ float64) error {
	return nil
}

func (f *fakeDonationRepo) CountDonations(_ context.Context) (int64, error) {
	return int64(len(f.donations)), nil
}

func (f *fakeDonationRepo) SumQuantity(_ context.Context) (int64, error) {
	var total int64
	for _, d := range f.donations {
		total += int64(d.Quantity)
	}
	return total, nil
}

type fakeReportRepo struct {
	reports []*entities.Report
}

func (f *fakeReportRepo) CreateReport(_ context.Context, r *entities.Report) error {
	f.reports = append(f.reports, r)
	return nil
}

func (f *fakeReportRepo) GetReports(_ context.Context, _ string) ([]*entities.Report, error) {
	return f.reports, nil
}

func (f *fakeReportRepo) GetReportByID(_ context.Context, _ string) (*entities.Report, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportRepo) GetDistinctAnimalTypes(_ context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeReportRepo) UpdateCoordinates(_ context.Context, _ string, _, _ float64) error {
	return nil
}

func TestGetStatsAggregates(t *testing.T) {
	jan := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC)

	donations := &fakeDonationRepo{donations: []*entities.Donation{
		{ID: uuid.New(), Quantity: 2, PickupTime: &jan},
		{ID: uuid.New(), Quantity: 3, PickupTime: &jan},
		{ID: uuid.New(), Quantity: 1, PickupTime: nil},
	}}
	reports := &fakeReportRepo{reports: []*entities.Report{
		{ID: uuid.New(), ReportTime: jan},
		{ID: uuid.New(), ReportTime: feb},
	}}

	service := NewStatsService(donations, reports)

	res, err := service.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.TotalDonations)
	assert.Equal(t, int64(6), res.TotalQuantity)

	assert.Equal(t, []string{"2026-01", "Unknown"}, res.DonationData.Labels)
	assert.Equal(t, []int{2, 1}, res.DonationData.Counts)

	assert.Equal(t, []string{"2026-01", "2026-02"}, res.ReportData.Labels)
	assert.Equal(t, []int{1, 1}, res.ReportData.Counts)
}

func TestGetStatsEmpty(t *testing.T) {
	service := NewStatsService(&fakeDonationRepo{}, &fakeReportRepo{})

	res, err := service.GetStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, res.TotalDonations)
	assert.Zero(t, res.TotalQuantity)
	assert.Empty(t, res.DonationData.Labels)
	assert.Empty(t, res.ReportData.Labels)
}
