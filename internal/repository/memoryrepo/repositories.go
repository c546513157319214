package memoryrepo

import (
	"context"
	"strings"
	"time"

	"gooficina/internal/domain"
	"gooficina/internal/repository/sqlsearch"
)

// ClientRepository é único por documento.
type ClientRepository struct {
	store *store[*domain.Client]
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{store: newStore(sqlsearch.Clients,
		func(c *domain.Client) map[string]any { return c.ToMap() },
		func(candidate, other *domain.Client) string {
			if candidate.Document() == other.Document() {
				return "documento já cadastrado: " + candidate.Document()
			}
			return ""
		},
	)}
}

func (r *ClientRepository) Save(_ context.Context, client *domain.Client) error {
	return r.store.insert(client.ID(), client)
}

func (r *ClientRepository) Update(_ context.Context, client *domain.Client) error {
	return r.store.replace(client.ID(), client)
}

func (r *ClientRepository) Delete(_ context.Context, id string) error {
	return r.store.remove(id)
}

func (r *ClientRepository) FindByID(_ context.Context, id string) (*domain.Client, error) {
	c, _ := r.store.get(id)
	return c, nil
}

func (r *ClientRepository) FindAll(_ context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	return r.store.search(req)
}

func (r *ClientRepository) FindByDocument(_ context.Context, document string) (*domain.Client, error) {
	c, _ := r.store.first(func(c *domain.Client) bool { return c.Document() == document })
	return c, nil
}

// vehicleLike cobre o que Car e Vehicle têm em comum para as chaves únicas.
type vehicleLike interface {
	LicencePlate() string
	Vin() string
}

func vehicleUnique[E vehicleLike](candidate, other E) string {
	if p := candidate.LicencePlate(); p != "" && p == other.LicencePlate() {
		return "placa já cadastrada: " + p
	}
	if v := candidate.Vin(); v != "" && v == other.Vin() {
		return "VIN já cadastrado: " + v
	}
	return ""
}

// CarRepository é único por placa e por VIN (quando informados).
type CarRepository struct {
	store *store[*domain.Car]
}

func NewCarRepository() *CarRepository {
	return &CarRepository{store: newStore(sqlsearch.Cars,
		func(c *domain.Car) map[string]any { return c.ToMap() },
		vehicleUnique[*domain.Car],
	)}
}

func (r *CarRepository) Save(_ context.Context, car *domain.Car) error {
	return r.store.insert(car.ID(), car)
}

func (r *CarRepository) Update(_ context.Context, car *domain.Car) error {
	return r.store.replace(car.ID(), car)
}

func (r *CarRepository) Delete(_ context.Context, id string) error {
	return r.store.remove(id)
}

func (r *CarRepository) FindByID(_ context.Context, id string) (*domain.Car, error) {
	c, _ := r.store.get(id)
	return c, nil
}

func (r *CarRepository) FindAll(_ context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	return r.store.search(req)
}

func (r *CarRepository) FindByVin(_ context.Context, vin string) (*domain.Car, error) {
	c, _ := r.store.first(func(c *domain.Car) bool { return c.Vin() == vin })
	return c, nil
}

func (r *CarRepository) FindByLicensePlate(_ context.Context, plate string) (*domain.Car, error) {
	c, _ := r.store.first(func(c *domain.Car) bool { return c.LicencePlate() == plate })
	return c, nil
}

func (r *CarRepository) FindByClientID(_ context.Context, clientID string) ([]*domain.Car, error) {
	return r.store.all(func(c *domain.Car) bool { return c.ClientID() == clientID }), nil
}

// VehicleRepository segue as mesmas chaves do CarRepository.
type VehicleRepository struct {
	store *store[*domain.Vehicle]
}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{store: newStore(sqlsearch.Vehicles,
		func(v *domain.Vehicle) map[string]any { return v.ToMap() },
		vehicleUnique[*domain.Vehicle],
	)}
}

func (r *VehicleRepository) Save(_ context.Context, vehicle *domain.Vehicle) error {
	return r.store.insert(vehicle.ID(), vehicle)
}

func (r *VehicleRepository) Update(_ context.Context, vehicle *domain.Vehicle) error {
	return r.store.replace(vehicle.ID(), vehicle)
}

func (r *VehicleRepository) Delete(_ context.Context, id string) error {
	return r.store.remove(id)
}

func (r *VehicleRepository) FindByID(_ context.Context, id string) (*domain.Vehicle, error) {
	v, _ := r.store.get(id)
	return v, nil
}

func (r *VehicleRepository) FindAll(_ context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	return r.store.search(req)
}

func (r *VehicleRepository) FindByVin(_ context.Context, vin string) (*domain.Vehicle, error) {
	v, _ := r.store.first(func(v *domain.Vehicle) bool { return v.Vin() == vin })
	return v, nil
}

func (r *VehicleRepository) FindByLicensePlate(_ context.Context, plate string) (*domain.Vehicle, error) {
	v, _ := r.store.first(func(v *domain.Vehicle) bool { return v.LicencePlate() == plate })
	return v, nil
}

func (r *VehicleRepository) FindByClientID(_ context.Context, clientID string) ([]*domain.Vehicle, error) {
	return r.store.all(func(v *domain.Vehicle) bool { return v.ClientID() == clientID }), nil
}

// UserRepository guarda os funcionários, únicos por e-mail.
type UserRepository struct {
	store *store[domain.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{store: newStore(sqlsearch.Spec{Table: "users"},
		func(u domain.User) map[string]any { return map[string]any{"id": u.ID, "email": u.Email} },
		func(candidate, other domain.User) string {
			if strings.EqualFold(candidate.Email, other.Email) {
				return "e-mail já cadastrado"
			}
			return ""
		},
	)}
}

func (r *UserRepository) Save(_ context.Context, user domain.User) (domain.User, error) {
	if user.ID == "" {
		user.ID = domain.NewID()
	}
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	if err := r.store.insert(user.ID, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.store.first(func(u domain.User) bool { return strings.EqualFold(u.Email, email) })
	if !ok {
		return nil, nil
	}
	return &u, nil
}

var (
	_ domain.ClientRepository  = (*ClientRepository)(nil)
	_ domain.CarRepository     = (*CarRepository)(nil)
	_ domain.VehicleRepository = (*VehicleRepository)(nil)
	_ domain.UserRepository    = (*UserRepository)(nil)
)
