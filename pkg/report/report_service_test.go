package report

import (
	"context"
	"mime/multipart"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"strays-backend/domain"
	"strays-backend/entities"
	"strays-backend/pkg/geocode"
)

type fakeReportRepo struct {
	reports []*entities.Report
	coords  map[string][2]float64
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{coords: make(map[string][2]float64)}
}

func (f *fakeReportRepo) CreateReport(_ context.Context, r *entities.Report) error {
	f.reports = append(f.reports, r)
	return nil
}

func (f *fakeReportRepo) GetReports(_ context.Context, animalType string) ([]*entities.Report, error) {
	if animalType == "" {
		return f.reports, nil
	}
	var filtered []*entities.Report
	for _, r := range f.reports {
		if strings.Contains(strings.ToLower(r.AnimalType), strings.ToLower(animalType)) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (f *fakeReportRepo) GetReportByID(_ context.Context, id string) (*entities.Report, error) {
	for _, r := range f.reports {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReportRepo) GetDistinctAnimalTypes(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var types []string
	for _, r := range f.reports {
		if !seen[r.AnimalType] {
			seen[r.AnimalType] = true
			types = append(types, r.AnimalType)
		}
	}
	return types, nil
}

func (f *fakeReportRepo) UpdateCoordinates(_ context.Context, id string, lat, lng float64) error {
	f.coords[id] = [2]float64{lat, lng}
	return nil
}

type fakeUserRepo struct {
	users  map[string]*entities.User
	points map[string]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*entities.User),
		points: make(map[string]int),
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *entities.User) error {
	f.users[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, u *entities.User) error {
	f.users[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepo) AddPoints(_ context.Context, id string, delta int) error {
	f.points[id] += delta
	return nil
}

func (f *fakeUserRepo) GetTopUsers(_ context.Context, limit int) ([]*entities.User, error) {
	users := make([]*entities.User, 0, limit)
	for _, u := range f.users {
		users = append(users, u)
	}
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

type fakeResolver struct {
	calls int
	coord geocode.Coordinate
	found bool
	err   error
}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (geocode.Coordinate, bool, error) {
	f.calls++
	return f.coord, f.found, f.err
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMailer) Send(toEmail, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, toEmail)
	return nil
}

type fakeS3 struct {
	keys []string
	fail bool
}

func (f *fakeS3) UploadFile(key string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	if f.fail {
		return "", assert.AnError
	}
	objectKey := folder + "/" + key
	f.keys = append(f.keys, objectKey)
	return objectKey, nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.test.amazonaws.com/" + objectKey
}

func seedReporter(users *fakeUserRepo) uuid.UUID {
	id := uuid.New()
	users.users[id.String()] = &entities.User{
		ID:       id,
		Username: "volunteer1",
		Email:    "volunteer1@example.com",
		Role:     domain.RoleVolunteer,
	}
	return id
}

func TestCreateReportAwardsPoints(t *testing.T) {
	repo := newFakeReportRepo()
	users := newFakeUserRepo()
	reporterID := seedReporter(users)

	service := NewReportService(repo, users, &fakeResolver{}, &fakeMailer{}, &fakeS3{})

	res, err := service.CreateReport(context.Background(), domain.CreateReportRequest{
		AnimalType:  "dog",
		Description: "injured stray near the park",
		Location:    "Cubbon Park",
		Contact:     "9876543210",
	}, reporterID.String())
	require.NoError(t, err)

	require.Len(t, repo.reports, 1)
	assert.Equal(t, PointsPerReport, users.points[reporterID.String()])
	assert.Equal(t, "dog", res.AnimalType)
	assert.False(t, res.ReportTime.IsZero())
}

func TestCreateReportUploadsSanitizedFilename(t *testing.T) {
	repo := newFakeReportRepo()
	users := newFakeUserRepo()
	reporterID := seedReporter(users)
	s3 := &fakeS3{}

	service := NewReportService(repo, users, &fakeResolver{}, &fakeMailer{}, s3)

	res, err := service.CreateReport(context.Background(), domain.CreateReportRequest{
		AnimalType:  "dog",
		Description: "stray with photo",
		Location:    "Cubbon Park",
		Contact:     "9876543210",
		Image:       &multipart.FileHeader{Filename: "..\\..\\stray dog.PNG"},
	}, reporterID.String())
	require.NoError(t, err)

	assert.Equal(t, "stray_dog.png", res.ImageFilename)
	assert.Contains(t, res.ImageURL, "stray_dog.png")
	require.Len(t, s3.keys, 1)
	assert.NotContains(t, s3.keys[0], "..")
	assert.True(t, strings.HasPrefix(s3.keys[0], "reports/"))
}

func TestCreateReportRejectsDisallowedExtension(t *testing.T) {
	repo := newFakeReportRepo()
	users := newFakeUserRepo()
	reporterID := seedReporter(users)
	s3 := &fakeS3{}

	service := NewReportService(repo, users, &fakeResolver{}, &fakeMailer{}, s3)

	res, err := service.CreateReport(context.Background(), domain.CreateReportRequest{
		AnimalType:  "dog",
		Description: "suspicious attachment",
		Location:    "Cubbon Park",
		Contact:     "9876543210",
		Image:       &multipart.FileHeader{Filename: "malware.exe"},
	}, reporterID.String())
	require.NoError(t, err)

	assert.Empty(t, res.ImageFilename)
	assert.Empty(t, res.ImageURL)
	assert.Empty(t, s3.keys)
	require.Len(t, repo.reports, 1)
}

func TestCreateReportSurvivesUploadFailure(t *testing.T) {
	repo := newFakeReportRepo()
	users := newFakeUserRepo()
	reporterID := seedReporter(users)

	service := NewReportService(repo, users, &fakeResolver{}, &fakeMailer{}, &fakeS3{fail: true})

	res, err := service.CreateReport(context.Background(), domain.CreateReportRequest{
		AnimalType:  "cat",
		Description: "kitten stuck on a wall",
		Location:    "Cubbon Park",
		Contact:     "9876543210",
		Image:       &multipart.FileHeader{Filename: "kitten.jpg"},
	}, reporterID.String())
	require.NoError(t, err)

	assert.Empty(t, res.ImageURL)
	require.Len(t, repo.reports, 1)
}

func TestGetReportByIDNotFound(t *testing.T) {
	service := NewReportService(newFakeReportRepo(), newFakeUserRepo(), &fakeResolver{}, &fakeMailer{}, &fakeS3{})

	_, err := service.GetReportByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestReportMarkersFallBackWhenUnresolved(t *testing.T) {
	repo := newFakeReportRepo()
	repo.reports = append(repo.reports, &entities.Report{
		ID:         uuid.New(),
		AnimalType: "dog",
		Location:   "nowhere in particular",
	})

	resolver := &fakeResolver{found: false}
	service := NewReportService(repo, newFakeUserRepo(), resolver, &fakeMailer{}, &fakeS3{})

	res, err := service.GetReportMarkers(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, res.Markers, 1)
	assert.InDelta(t, geocode.Fallback.Lat, res.Markers[0].Lat, 1e-9)
	assert.InDelta(t, geocode.Fallback.Lng, res.Markers[0].Lng, 1e-9)
	assert.Empty(t, repo.coords)
}

func TestReportMarkersFallBackOnResolverError(t *testing.T) {
	repo := newFakeReportRepo()
	repo.reports = append(repo.reports, &entities.Report{
		ID:         uuid.New(),
		AnimalType: "dog",
		Location:   "Indiranagar",
	})

	resolver := &fakeResolver{err: assert.AnError}
	service := NewReportService(repo, newFakeUserRepo(), resolver, &fakeMailer{}, &fakeS3{})

	res, err := service.GetReportMarkers(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, res.Markers, 1)
	assert.InDelta(t, geocode.Fallback.Lat, res.Markers[0].Lat, 1e-9)
	assert.InDelta(t, geocode.Fallback.Lng, res.Markers[0].Lng, 1e-9)
	assert.Empty(t, repo.coords)
}

func TestReportMarkersEmitHeatData(t *testing.T) {
	repo := newFakeReportRepo()
	lat, lng := 12.9, 77.6
	repo.reports = append(repo.reports, &entities.Report{
		ID:         uuid.New(),
		AnimalType: "dog",
		Location:   "Indiranagar",
		Latitude:   &lat,
		Longitude:  &lng,
	})

	service := NewReportService(repo, newFakeUserRepo(), &fakeResolver{}, &fakeMailer{}, &fakeS3{})

	res, err := service.GetReportMarkers(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, res.Heat, 1)
	assert.Equal(t, []float64{12.9, 77.6, 1}, res.Heat[0])
}

func TestReportMarkersResolvesAndPersists(t *testing.T) {
	repo := newFakeReportRepo()
	r := &entities.Report{ID: uuid.New(), AnimalType: "cat", Location: "Indiranagar"}
	repo.reports = append(repo.reports, r)

	resolver := &fakeResolver{coord: geocode.Coordinate{Lat: 12.97, Lng: 77.64}, found: true}
	service := NewReportService(repo, newFakeUserRepo(), resolver, &fakeMailer{}, &fakeS3{})

	res, err := service.GetReportMarkers(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, res.Markers, 1)
	assert.Equal(t, [2]float64{12.97, 77.64}, repo.coords[r.ID.String()])
	assert.Contains(t, res.AnimalTypes, "cat")
}

func TestReportMarkersUseStoredCoordinates(t *testing.T) {
	repo := newFakeReportRepo()
	lat, lng := 12.9, 77.6
	repo.reports = append(repo.reports, &entities.Report{
		ID:         uuid.New(),
		AnimalType: "dog",
		Location:   "Indiranagar",
		Latitude:   &lat,
		Longitude:  &lng,
	})

	resolver := &fakeResolver{found: true}
	service := NewReportService(repo, newFakeUserRepo(), resolver, &fakeMailer{}, &fakeS3{})

	res, err := service.GetReportMarkers(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, res.Markers, 1)
	assert.Zero(t, resolver.calls)
}
