package donation

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"strays-backend/domain"
	"strays-backend/entities"
	"strays-backend/internal/utils/mailing"
	"strays-backend/pkg/geocode"
	"strays-backend/pkg/user"
)

const (
	// points awarded to the donor on every accepted submission
	PointsPerDonation = 10

	pickupTimeLayout = "2006-01-02T15:04"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (domain.DonationResponse, error)
		GetDonations(ctx context.Context) ([]domain.DonationResponse, error)
		GetDonationMarkers(ctx context.Context) (domain.DonationMapResponse, error)
	}

	donationService struct {
		donationRepository DonationRepository
		userRepository     user.UserRepository
		resolver           geocode.Resolver
		mailer             mailing.Mailer
	}
)

func NewDonationService(
	donationRepository DonationRepository,
	userRepository user.UserRepository,
	resolver geocode.Resolver,
	mailer mailing.Mailer,
) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		userRepository:     userRepository,
		resolver:           resolver,
		mailer:             mailer,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (domain.DonationResponse, error) {
	pickupTime, err := time.Parse(pickupTimeLayout, req.PickupTime)
	if err != nil {
		return domain.DonationResponse{}, domain.ErrInvalidPickupTime
	}

	donorUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.DonationResponse{}, domain.ErrParseUUID
	}

	donation := &entities.Donation{
		ID:             uuid.New(),
		DonorID:        donorUUID,
		Description:    req.Description,
		FoodType:       req.FoodType,
		Quantity:       req.Quantity,
		PickupLocation: req.PickupLocation,
		PickupTime:     &pickupTime,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return domain.DonationResponse{}, err
	}

	if err := s.userRepository.AddPoints(ctx, userID, PointsPerDonation); err != nil {
		return domain.DonationResponse{}, err
	}

	s.notifyDonation(ctx, userID, req.Description)

	return domain.DonationResponse{
		ID:             donation.ID.String(),
		Description:    donation.Description,
		FoodType:       donation.FoodType,
		Quantity:       donation.Quantity,
		PickupLocation: donation.PickupLocation,
		PickupTime:     donation.PickupTime,
		CreatedAt:      donation.CreatedAt,
	}, nil
}

// notifyDonation dispatches the best-effort side effects. The donation is
// already committed; failures here are logged and dropped.
func (s *donationService) notifyDonation(ctx context.Context, userID string, description string) {
	donor, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Errorf("error loading donor for notification: %v", err)
		return
	}

	go func() {
		body := fmt.Sprintf("Your donation '%s' has been added.", description)
		if err := s.mailer.Send(donor.Email, "New Donation", body); err != nil {
			log.Errorf("error sending donation notification: %v", err)
		}
	}()

	log.Infof("Social post: New donation added: %s", description)
}

func (s *donationService) GetDonations(ctx context.Context) ([]domain.DonationResponse, error) {
	donations, err := s.donationRepository.GetDonations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.DonationResponse, 0, len(donations))
	for _, d := range donations {
		res := domain.DonationResponse{
			ID:             d.ID.String(),
			Description:    d.Description,
			FoodType:       d.FoodType,
			Quantity:       d.Quantity,
			PickupLocation: d.PickupLocation,
			PickupTime:     d.PickupTime,
			CreatedAt:      d.CreatedAt,
		}
		if d.Donor != nil {
			res.DonorUsername = d.Donor.Username
		}
		result = append(result, res)
	}
	return result, nil
}

// GetDonationMarkers resolves pickup locations lazily. Unlike report
// markers, a donation whose address cannot be resolved is omitted from
// the marker list for this request.
func (s *donationService) GetDonationMarkers(ctx context.Context) (domain.DonationMapResponse, error) {
	donations, err := s.donationRepository.GetDonations(ctx)
	if err != nil {
		return domain.DonationMapResponse{}, err
	}

	pacer := geocode.NewPacer(geocode.ResolveInterval)
	markers := make([]domain.Marker, 0, len(donations))

	for _, d := range donations {
		var lat, lng float64
		if d.PickupLatitude != nil && d.PickupLongitude != nil {
			lat, lng = *d.PickupLatitude, *d.PickupLongitude
		} else {
			pacer.Wait()
			coord, found, err := s.resolver.Resolve(ctx, d.PickupLocation)
			if err != nil {
				log.Errorf("error geocoding donation location %q: %v", d.PickupLocation, err)
				continue
			}
			if !found {
				log.Infof("could not geocode donation location: %s", d.PickupLocation)
				continue
			}
			lat, lng = coord.Lat, coord.Lng
			if err := s.donationRepository.UpdateCoordinates(ctx, d.ID.String(), lat, lng); err != nil {
				log.Errorf("error persisting donation coordinates: %v", err)
			}
		}

		markers = append(markers, domain.Marker{
			Lat:   lat,
			Lng:   lng,
			Popup: fmt.Sprintf("Donation: %s", d.Description),
		})
	}

	return domain.DonationMapResponse{Markers: markers}, nil
}
