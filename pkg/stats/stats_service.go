package stats

import (
	"context"
	"time"

	"strays-backend/domain"
	"strays-backend/pkg/donation"
	"strays-backend/pkg/report"
)

const unknownMonthLabel = "Unknown"

type (
	StatsService interface {
		GetStats(ctx context.Context) (domain.StatsResponse, error)
	}

	statsService struct {
		donationRepository donation.DonationRepository
		reportRepository   report.ReportRepository
	}
)

func NewStatsService(donationRepository donation.DonationRepository, reportRepository report.ReportRepository) StatsService {
	return &statsService{
		donationRepository: donationRepository,
		reportRepository:   reportRepository,
	}
}

func (s *statsService) GetStats(ctx context.Context) (domain.StatsResponse, error) {
	totalDonations, err := s.donationRepository.CountDonations(ctx)
	if err != nil {
		return domain.StatsResponse{}, err
	}

	totalQuantity, err := s.donationRepository.SumQuantity(ctx)
	if err != nil {
		return domain.StatsResponse{}, err
	}

	donations, err := s.donationRepository.GetDonations(ctx)
	if err != nil {
		return domain.StatsResponse{}, err
	}
	pickupTimes := make([]*time.Time, 0, len(donations))
	for _, d := range donations {
		pickupTimes = append(pickupTimes, d.PickupTime)
	}

	reports, err := s.reportRepository.GetReports(ctx, "")
	if err != nil {
		return domain.StatsResponse{}, err
	}
	reportTimes := make([]*time.Time, 0, len(reports))
	for _, r := range reports {
		t := r.ReportTime
		reportTimes = append(reportTimes, &t)
	}

	return domain.StatsResponse{
		TotalDonations: totalDonations,
		TotalQuantity:  totalQuantity,
		DonationData:   AggregateByMonth(pickupTimes, unknownMonthLabel),
		ReportData:     AggregateByMonth(reportTimes, ""),
	}, nil
}
