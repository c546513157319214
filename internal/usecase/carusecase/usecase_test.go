package carusecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooficina/internal/domain"
	apperror "gooficina/internal/errors"
	"gooficina/internal/pkg/logger"
	"gooficina/internal/repository/memoryrepo"
	"gooficina/internal/usecase/carusecase"
)

const (
	validType = "sedan"
	validVin  = "9BWZZZ377VT004251"
)

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) Save(ctx context.Context, car *domain.Car) error {
	return m.Called(ctx, car).Error(0)
}

func (m *MockCarRepository) Update(ctx context.Context, car *domain.Car) error {
	return m.Called(ctx, car).Error(0)
}

func (m *MockCarRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCarRepository) FindByID(ctx context.Context, id string) (*domain.Car, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Car)
	return c, args.Error(1)
}

func (m *MockCarRepository) FindAll(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.SearchResponse), args.Error(1)
}

func (m *MockCarRepository) FindByVin(ctx context.Context, vin string) (*domain.Car, error) {
	args := m.Called(ctx, vin)
	c, _ := args.Get(0).(*domain.Car)
	return c, args.Error(1)
}

func (m *MockCarRepository) FindByLicensePlate(ctx context.Context, plate string) (*domain.Car, error) {
	args := m.Called(ctx, plate)
	c, _ := args.Get(0).(*domain.Car)
	return c, args.Error(1)
}

func (m *MockCarRepository) FindByClientID(ctx context.Context, clientID string) ([]*domain.Car, error) {
	args := m.Called(ctx, clientID)
	cs, _ := args.Get(0).([]*domain.Car)
	return cs, args.Error(1)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func baseInput(clientID string) carusecase.CreateCarInput {
	return carusecase.CreateCarInput{
		Brand:    "Volkswagen",
		Model:    "Gol",
		Year:     2015,
		Type:     validType,
		ClientID: clientID,
	}
}

// --- CreateCar ---

func TestCreateCar_WithOptionalAttributes(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewCarRepository()
	uc := carusecase.NewCreateCar(repo, logger.NewNopLogger())

	in := baseInput(domain.NewID())
	in.LicencePlate = strPtr("abc-1234")
	in.Vin = strPtr(validVin)
	in.Transmission = strPtr("manual")
	in.Color = strPtr("Prata")
	in.CilinderCapacity = strPtr("1.6")
	in.Mileage = intPtr(85000)

	id, err := uc.Execute(ctx, in)
	require.NoError(t, err)

	got, err := carusecase.NewFindCarByID(repo).Execute(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ABC1234", got["licence_plate"])
	assert.Equal(t, validVin, got["vin"])
	assert.Equal(t, "manual", got["transmission"])
	assert.Equal(t, 85000, got["mileage"])
	assert.Equal(t, in.ClientID, got["client_id"])
}

func TestCreateCar_DedupByPlateThenVin(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewCarRepository()
	uc := carusecase.NewCreateCar(repo, logger.NewNopLogger())
	owner := domain.NewID()

	in := baseInput(owner)
	in.LicencePlate = strPtr("ABC1D23")
	in.Vin = strPtr(validVin)
	first, err := uc.Execute(ctx, in)
	require.NoError(t, err)

	samePlate := baseInput(owner)
	samePlate.LicencePlate = strPtr("abc-1d23")
	byPlate, err := uc.Execute(ctx, samePlate)
	require.NoError(t, err)

	sameVin := baseInput(owner)
	sameVin.Vin = strPtr(" " + validVin + " ")
	byVin, err := uc.Execute(ctx, sameVin)
	require.NoError(t, err)

	assert.Equal(t, first, byPlate)
	assert.Equal(t, first, byVin)

	res, err := carusecase.NewListCars(repo).Execute(ctx, domain.NewSearchRequest(10, 1, "", "", "", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalItems)
}

func TestCreateCar_WithoutNaturalKeysAlwaysCreates(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewCarRepository()
	uc := carusecase.NewCreateCar(repo, logger.NewNopLogger())
	owner := domain.NewID()

	a, err := uc.Execute(ctx, baseInput(owner))
	require.NoError(t, err)
	b, err := uc.Execute(ctx, baseInput(owner))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCreateCar_InvalidInput(t *testing.T) {
	uc := carusecase.NewCreateCar(memoryrepo.NewCarRepository(), logger.NewNopLogger())
	owner := domain.NewID()

	badYear := baseInput(owner)
	badYear.Year = 1885
	badType := baseInput(owner)
	badType.Type = "spaceship"
	badPlate := baseInput(owner)
	badPlate.LicencePlate = strPtr("12-ABCD")
	badVin := baseInput(owner)
	badVin.Vin = strPtr("IOQ")
	badMileage := baseInput(owner)
	badMileage.Mileage = intPtr(-1)

	tests := []struct {
		name string
		in   carusecase.CreateCarInput
		kind string
	}{
		{"year", badYear, "car"},
		{"type", badType, "car_type"},
		{"plate", badPlate, "licence_plate"},
		{"vin", badVin, "vin"},
		{"mileage", badMileage, "car"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.in)
			var vErr *apperror.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.kind, vErr.Kind)
		})
	}
}

func TestCreateCar_ConcurrentInsertReturnsWinner(t *testing.T) {
	mockRepo := new(MockCarRepository)
	uc := carusecase.NewCreateCar(mockRepo, logger.NewNopLogger())

	winner, err := domain.CreateCar("Volkswagen", "Gol", 2015, validType, domain.NewID())
	require.NoError(t, err)

	mockRepo.On("FindByLicensePlate", mock.Anything, "ABC1234").Return(nil, nil).Once()
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Car")).Return(apperror.NewConflictError("placa já cadastrada")).Once()
	mockRepo.On("FindByLicensePlate", mock.Anything, "ABC1234").Return(winner, nil).Once()

	in := baseInput(domain.NewID())
	in.LicencePlate = strPtr("ABC-1234")
	id, err := uc.Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, winner.ID(), id)
	mockRepo.AssertExpectations(t)
}

// --- UpdateCar / DeleteCar ---

func TestUpdateCar(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewCarRepository()
	id, err := carusecase.NewCreateCar(repo, logger.NewNopLogger()).Execute(ctx, baseInput(domain.NewID()))
	require.NoError(t, err)

	uc := carusecase.NewUpdateCar(repo, logger.NewNopLogger())
	require.NoError(t, uc.Execute(ctx, carusecase.UpdateCarInput{
		ID:           id,
		Year:         intPtr(2016),
		LicencePlate: strPtr("abc-1234"),
		Color:        strPtr("Preto"),
	}))

	got, err := carusecase.NewFindCarByLicensePlate(repo).Execute(ctx, "ABC-1234")
	require.NoError(t, err)
	assert.Equal(t, id, got["id"])
	assert.Equal(t, 2016, got["year"])
	assert.Equal(t, "Preto", got["color"])
	assert.Equal(t, "Volkswagen", got["brand"])

	err = uc.Execute(ctx, carusecase.UpdateCarInput{ID: id, Brand: strPtr("VW")})
	assert.True(t, apperror.IsValidation(err))

	err = uc.Execute(ctx, carusecase.UpdateCarInput{ID: domain.NewID(), Color: strPtr("Azul")})
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteCar(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewCarRepository()
	id, err := carusecase.NewCreateCar(repo, logger.NewNopLogger()).Execute(ctx, baseInput(domain.NewID()))
	require.NoError(t, err)

	del := carusecase.NewDeleteCar(repo, logger.NewNopLogger())
	require.NoError(t, del.Execute(ctx, id))

	_, err = carusecase.NewFindCarByID(repo).Execute(ctx, id)
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, apperror.IsNotFound(del.Execute(ctx, id)))
	assert.True(t, apperror.IsValidation(del.Execute(ctx, "123")))
}

// --- Finders ---

func TestFindCarByVin(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewCarRepository()
	in := baseInput(domain.NewID())
	in.Vin = strPtr(validVin)
	id, err := carusecase.NewCreateCar(repo, logger.NewNopLogger()).Execute(ctx, in)
	require.NoError(t, err)

	uc := carusecase.NewFindCarByVin(repo)
	got, err := uc.Execute(ctx, validVin)
	require.NoError(t, err)
	assert.Equal(t, id, got["id"])

	_, err = uc.Execute(ctx, "1HGCM82633A004352")
	assert.True(t, apperror.IsNotFound(err))

	_, err = uc.Execute(ctx, "curto")
	assert.True(t, apperror.IsValidation(err))
}

func TestFindCarsByClientID(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewCarRepository()
	create := carusecase.NewCreateCar(repo, logger.NewNopLogger())
	owner := domain.NewID()
	for i := 0; i < 3; i++ {
		_, err := create.Execute(ctx, baseInput(owner))
		require.NoError(t, err)
	}
	_, err := create.Execute(ctx, baseInput(domain.NewID()))
	require.NoError(t, err)

	uc := carusecase.NewFindCarsByClientID(repo)
	owned, err := uc.Execute(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, owned, 3)

	none, err := uc.Execute(ctx, domain.NewID())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestListCars_Pagination(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewCarRepository()
	create := carusecase.NewCreateCar(repo, logger.NewNopLogger())
	for i := 0; i < 3; i++ {
		_, err := create.Execute(ctx, baseInput(domain.NewID()))
		require.NoError(t, err)
	}

	res, err := carusecase.NewListCars(repo).Execute(ctx, domain.NewSearchRequest(2, 2, "", "", "", nil))

	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalItems)
	assert.Len(t, res.Items, 1)
}
