package memoryrepo_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooficina/internal/domain"
	apperror "gooficina/internal/errors"
	"gooficina/internal/repository/memoryrepo"
)

// makeCPF gera um CPF válido e distinto para cada seed.
func makeCPF(seed int) string {
	base := fmt.Sprintf("%09d", 100000000+seed*7919)
	digit := func(digits string, weight int) byte {
		sum := 0
		for i, ch := range digits {
			sum += int(ch-'0') * (weight - i)
		}
		r := sum * 10 % 11
		if r == 10 {
			r = 0
		}
		return byte('0' + r)
	}
	withFirst := base + string(digit(base, 10))
	return withFirst + string(digit(withFirst, 11))
}

func newClient(t *testing.T, name string, seed int) *domain.Client {
	t.Helper()
	c, err := domain.CreateClient(name, fmt.Sprintf("cliente%d@oficina.com", seed), makeCPF(seed))
	require.NoError(t, err)
	return c
}

func newCar(t *testing.T, brand string, year int, plate string) *domain.Car {
	t.Helper()
	c, err := domain.CreateCar(brand, "Modelo", year, "sedan", domain.NewID())
	require.NoError(t, err)
	if plate != "" {
		c, err = c.WithLicencePlate(plate)
		require.NoError(t, err)
	}
	return c
}

func TestClientRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewClientRepository()
	c := newClient(t, "Maria Souza", 1)

	require.NoError(t, repo.Save(ctx, c))

	found, err := repo.FindByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, c.ID(), found.ID())

	byDoc, err := repo.FindByDocument(ctx, c.Document())
	require.NoError(t, err)
	assert.Equal(t, c.ID(), byDoc.ID())

	renamed, err := c.WithName("Maria S. Lima")
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, renamed))
	found, _ = repo.FindByID(ctx, c.ID())
	assert.Equal(t, "Maria S. Lima", found.Name())

	require.NoError(t, repo.Delete(ctx, c.ID()))
	found, err = repo.FindByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	err = repo.Delete(ctx, c.ID())
	assert.True(t, apperror.IsNotFound(err))
}

func TestClientRepository_UniqueDocument(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewClientRepository()
	require.NoError(t, repo.Save(ctx, newClient(t, "Ana", 7)))

	err := repo.Save(ctx, newClient(t, "Outra Ana", 7))

	assert.True(t, apperror.IsConflict(err))
}

func TestClientRepository_FindAllPagination(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewClientRepository()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, newClient(t, fmt.Sprintf("Cliente %d", i), i)))
	}

	for _, tc := range []struct{ page, want int }{{1, 2}, {2, 2}, {3, 1}, {4, 0}} {
		res, err := repo.FindAll(ctx, domain.NewSearchRequest(2, tc.page, "", "", "", nil))
		require.NoError(t, err)
		assert.Equal(t, 5, res.TotalItems)
		assert.Len(t, res.Items, tc.want, "page %d", tc.page)
	}
}

func TestClientRepository_FindAllSearch(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewClientRepository()
	require.NoError(t, repo.Save(ctx, newClient(t, "João Pereira", 1)))
	require.NoError(t, repo.Save(ctx, newClient(t, "Ana Pereira", 2)))
	require.NoError(t, repo.Save(ctx, newClient(t, "Carlos Lima", 3)))

	res, err := repo.FindAll(ctx, domain.NewSearchRequest(10, 1, "PEREIRA", "name", "asc", nil))

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalItems)
	assert.Equal(t, "Ana Pereira", res.Items[0]["name"])
	assert.Equal(t, "João Pereira", res.Items[1]["name"])
}

func TestCarRepository_FiltersAndSort(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewCarRepository()
	require.NoError(t, repo.Save(ctx, newCar(t, "Volkswagen", 2010, "ABC1234")))
	require.NoError(t, repo.Save(ctx, newCar(t, "Fiat", 2020, "")))
	require.NoError(t, repo.Save(ctx, newCar(t, "Volkswagen", 2015, "")))

	res, err := repo.FindAll(ctx, domain.NewSearchRequest(10, 1, "", "year", "desc",
		map[string]string{"brand": "Volkswagen"}))

	require.NoError(t, err)
	require.Equal(t, 2, res.TotalItems)
	assert.Equal(t, 2015, res.Items[0]["year"])
	assert.Equal(t, 2010, res.Items[1]["year"])

	res, err = repo.FindAll(ctx, domain.NewSearchRequest(10, 1, "", "", "", map[string]string{"year": "2020"}))
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalItems)
	assert.Equal(t, "Fiat", res.Items[0]["brand"])
}

func TestCarRepository_UnknownSearchColumn(t *testing.T) {
	repo := memoryrepo.NewCarRepository()

	_, err := repo.FindAll(context.Background(), domain.NewSearchRequest(10, 1, "", "owner", "", nil))

	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "search", vErr.Kind)
}

func TestCarRepository_UniquePlateAndVin(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewCarRepository()
	first := newCar(t, "Volkswagen", 2010, "ABC-1234")
	first, err := first.WithVin("9BWZZZ377VT004251")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	samePlate := newCar(t, "Fiat", 2012, "abc1234")
	assert.True(t, apperror.IsConflict(repo.Save(ctx, samePlate)))

	sameVin, err := newCar(t, "Fiat", 2012, "").WithVin("9BWZZZ377VT004251")
	require.NoError(t, err)
	assert.True(t, apperror.IsConflict(repo.Save(ctx, sameVin)))

	// Carros sem placa/VIN não colidem entre si.
	require.NoError(t, repo.Save(ctx, newCar(t, "Honda", 2018, "")))
	require.NoError(t, repo.Save(ctx, newCar(t, "Honda", 2019, "")))

	byPlate, err := repo.FindByLicensePlate(ctx, "ABC1234")
	require.NoError(t, err)
	assert.Equal(t, first.ID(), byPlate.ID())

	byVin, err := repo.FindByVin(ctx, "9BWZZZ377VT004251")
	require.NoError(t, err)
	assert.Equal(t, first.ID(), byVin.ID())
}

func TestVehicleRepository_FindByClientID(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewVehicleRepository()
	owner := domain.NewID()
	for _, brand := range []string{"Scania", "Volvo"} {
		v, err := domain.CreateVehicle(brand, "FH", 2019, "truck", owner)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, v))
	}

	owned, err := repo.FindByClientID(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, owned, 2)

	none, err := repo.FindByClientID(ctx, domain.NewID())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := memoryrepo.NewUserRepository()

	saved, err := repo.Save(ctx, domain.User{Name: "Admin", Email: "admin@oficina.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.True(t, domain.IsValidID(saved.ID))
	assert.False(t, saved.CreatedAt.IsZero())

	_, err = repo.Save(ctx, domain.User{Name: "Outro", Email: "ADMIN@oficina.com"})
	assert.True(t, apperror.IsConflict(err))

	found, err := repo.FindByEmail(ctx, "admin@oficina.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)

	missing, err := repo.FindByEmail(ctx, "ninguem@oficina.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
