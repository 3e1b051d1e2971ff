package report

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"strays-backend/domain"
	"strays-backend/entities"
	"strays-backend/internal/utils"
	"strays-backend/internal/utils/mailing"
	"strays-backend/internal/utils/storage"
	"strays-backend/pkg/geocode"
	"strays-backend/pkg/user"
)

// points awarded to the reporter on every accepted submission
const PointsPerReport = 5

type (
	ReportService interface {
		CreateReport(ctx context.Context, req domain.CreateReportRequest, userID string) (domain.ReportResponse, error)
		GetReports(ctx context.Context, animalType string) ([]domain.ReportResponse, error)
		GetReportByID(ctx context.Context, id string) (domain.ReportResponse, error)
		GetReportMarkers(ctx context.Context, animalType string) (domain.ReportMapResponse, error)
	}

	reportService struct {
		reportRepository ReportRepository
		userRepository   user.UserRepository
		resolver         geocode.Resolver
		mailer           mailing.Mailer
		s3               storage.AwsS3
	}
)

func NewReportService(
	reportRepository ReportRepository,
	userRepository user.UserRepository,
	resolver geocode.Resolver,
	mailer mailing.Mailer,
	s3 storage.AwsS3,
) ReportService {
	return &reportService{
		reportRepository: reportRepository,
		userRepository:   userRepository,
		resolver:         resolver,
		mailer:           mailer,
		s3:               s3,
	}
}

func (s *reportService) CreateReport(ctx context.Context, req domain.CreateReportRequest, userID string) (domain.ReportResponse, error) {
	reporterUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReportResponse{}, domain.ErrParseUUID
	}

	report := &entities.Report{
		ID:          uuid.New(),
		ReporterID:  reporterUUID,
		AnimalType:  req.AnimalType,
		Description: req.Description,
		Location:    req.Location,
		Contact:     req.Contact,
		ReportTime:  time.Now(),
	}

	// An unusable attachment never blocks the report itself.
	if req.Image != nil {
		s.attachImage(report, req)
	}

	if err := s.reportRepository.CreateReport(ctx, report); err != nil {
		return domain.ReportResponse{}, err
	}

	if err := s.userRepository.AddPoints(ctx, userID, PointsPerReport); err != nil {
		return domain.ReportResponse{}, err
	}

	s.notifyReport(ctx, userID, report)

	return toReportResponse(report), nil
}

func (s *reportService) attachImage(report *entities.Report, req domain.CreateReportRequest) {
	ext := strings.ToLower(filepath.Ext(req.Image.Filename))
	allowed := false
	for _, e := range storage.AllowImage {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		log.Infof("rejecting report attachment with extension %q", ext)
		return
	}

	filename := utils.SecureFilename(req.Image.Filename)
	key := fmt.Sprintf("report-%s-%s", report.ID.String(), filename)
	objectKey, err := s.s3.UploadFile(key, req.Image, "reports", storage.AllowImage...)
	if err != nil {
		log.Errorf("error uploading report image: %v", err)
		return
	}

	report.ImageFilename = filename
	report.ImageURL = s.s3.GetPublicLinkKey(objectKey)
}

func (s *reportService) notifyReport(ctx context.Context, userID string, report *entities.Report) {
	reporter, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Errorf("error loading reporter for notification: %v", err)
		return
	}

	go func() {
		body := fmt.Sprintf("Your report for %s has been submitted.", report.AnimalType)
		if err := s.mailer.Send(reporter.Email, "New Report", body); err != nil {
			log.Errorf("error sending report notification: %v", err)
		}
	}()

	log.Infof("Proximity alert: new report near you: %s", report.Location)
}

func (s *reportService) GetReports(ctx context.Context, animalType string) ([]domain.ReportResponse, error) {
	reports, err := s.reportRepository.GetReports(ctx, animalType)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ReportResponse, 0, len(reports))
	for _, r := range reports {
		result = append(result, toReportResponse(r))
	}
	return result, nil
}

func (s *reportService) GetReportByID(ctx context.Context, id string) (domain.ReportResponse, error) {
	report, err := s.reportRepository.GetReportByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReportResponse{}, domain.ErrReportNotFound
		}
		return domain.ReportResponse{}, err
	}
	return toReportResponse(report), nil
}

// GetReportMarkers resolves report locations lazily. A report whose
// address cannot be resolved still gets a marker at the fallback
// coordinate, so no sighting disappears from the map.
func (s *reportService) GetReportMarkers(ctx context.Context, animalType string) (domain.ReportMapResponse, error) {
	reports, err := s.reportRepository.GetReports(ctx, animalType)
	if err != nil {
		return domain.ReportMapResponse{}, err
	}

	animalTypes, err := s.reportRepository.GetDistinctAnimalTypes(ctx)
	if err != nil {
		return domain.ReportMapResponse{}, err
	}

	pacer := geocode.NewPacer(geocode.ResolveInterval)
	markers := make([]domain.Marker, 0, len(reports))
	heat := make([][]float64, 0, len(reports))

	for _, r := range reports {
		var lat, lng float64
		if r.Latitude != nil && r.Longitude != nil {
			lat, lng = *r.Latitude, *r.Longitude
		} else {
			pacer.Wait()
			coord, found, err := s.resolver.Resolve(ctx, r.Location)
			switch {
			case err != nil:
				log.Errorf("error geocoding address %q: %v, using default coordinates", r.Location, err)
				lat, lng = geocode.Fallback.Lat, geocode.Fallback.Lng
			case !found:
				log.Infof("could not geocode address: %s, using default coordinates", r.Location)
				lat, lng = geocode.Fallback.Lat, geocode.Fallback.Lng
			default:
				lat, lng = coord.Lat, coord.Lng
				if err := s.reportRepository.UpdateCoordinates(ctx, r.ID.String(), lat, lng); err != nil {
					log.Errorf("error persisting report coordinates: %v", err)
				}
			}
		}

		popup := fmt.Sprintf("<strong>%s</strong><br>%s<br><em>%s</em>", r.AnimalType, r.Description, r.Location)
		markers = append(markers, domain.Marker{Lat: lat, Lng: lng, Popup: popup})
		heat = append(heat, []float64{lat, lng, 1})
	}

	return domain.ReportMapResponse{Markers: markers, Heat: heat, AnimalTypes: animalTypes}, nil
}

func toReportResponse(r *entities.Report) domain.ReportResponse {
	res := domain.ReportResponse{
		ID:            r.ID.String(),
		AnimalType:    r.AnimalType,
		Description:   r.Description,
		Location:      r.Location,
		Contact:       r.Contact,
		ReportTime:    r.ReportTime,
		ImageFilename: r.ImageFilename,
		ImageURL:      r.ImageURL,
	}
	if r.Reporter != nil {
		res.ReporterUsername = r.Reporter.Username
	}
	return res
}
