package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateDonation = "donation added successfully"
	MessageSuccessGetDonations   = "donations retrieved successfully"
	MessageSuccessGetDonationMap = "donation markers retrieved successfully"

	MessageFailedCreateDonation = "failed to add donation"
	MessageFailedGetDonations   = "failed to retrieve donations"
	MessageFailedGetDonationMap = "failed to retrieve donation markers"

	ErrDonationNotFound  = errors.New("donation not found")
	ErrInvalidPickupTime = errors.New("invalid pickup time")
)

type (
	CreateDonationRequest struct {
		Description    string `json:"description" validate:"required,max=200"`
		FoodType       string `json:"food_type" validate:"omitempty,max=50"`
		Quantity       int    `json:"quantity" validate:"omitempty,min=1"`
		PickupLocation string `json:"pickup_location" validate:"required,max=200"`
		PickupTime     string `json:"pickup_time" validate:"required"`
	}

	DonationResponse struct {
		ID             string     `json:"id"`
		Description    string     `json:"description"`
		FoodType       string     `json:"food_type"`
		Quantity       int        `json:"quantity"`
		PickupLocation string     `json:"pickup_location"`
		PickupTime     *time.Time `json:"pickup_time,omitempty"`
		DonorUsername  string     `json:"donor_username,omitempty"`
		CreatedAt      time.Time  `json:"created_at"`
	}

	DonationMapResponse struct {
		Markers []Marker `json:"markers"`
	}
)
