package domain

var (
	MessageSuccessGetStats = "statistics retrieved successfully"
	MessageFailedGetStats  = "failed to retrieve statistics"
)

type (
	ChartData struct {
		Labels []string `json:"labels"`
		Counts []int    `json:"counts"`
	}

	StatsResponse struct {
		TotalDonations int64     `json:"total_donations"`
		TotalQuantity  int64     `json:"total_quantity"`
		DonationData   ChartData `json:"donation_data"`
		ReportData     ChartData `json:"report_data"`
	}
)
