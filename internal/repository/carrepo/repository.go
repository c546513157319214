package carrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gooficina/internal/domain"
	apperror "gooficina/internal/errors"
	"gooficina/internal/pkg/cache"
	"gooficina/internal/pkg/database"
	"gooficina/internal/pkg/logger"
	"gooficina/internal/repository/sqlsearch"
)

const selectColumns = `id, brand, model, year, type, client_id, licence_plate, vin, transmission, color, cilinder_capacity, mileage, observations`

// CarRepository implementa domain.CarRepository sobre o PostgreSQL.
type CarRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	cache     cache.Client
	cacheTTL  time.Duration
	mapper    CarMapper
	logger    logger.Logger
}

// NewCarRepository aceita cacheClient nil (cache desligado).
func NewCarRepository(db *sql.DB, dbTimeout time.Duration, cacheClient cache.Client, cacheTTL time.Duration, log logger.Logger) *CarRepository {
	return &CarRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		cache:     cacheClient,
		cacheTTL:  cacheTTL,
		logger:    log,
	}
}

func cacheKey(id string) string { return "car:" + id }

func (r *CarRepository) Save(ctx context.Context, car *domain.Car) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rec := r.mapper.ToPersistence(car)

	_, err := r.DB.ExecContext(ctxTimeout,
		`INSERT INTO cars (`+selectColumns+`, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)`,
		rec.ID, rec.Brand, rec.Model, rec.Year, rec.Type, rec.ClientID, rec.LicencePlate, rec.Vin,
		rec.Transmission, rec.Color, rec.CilinderCapacity, rec.Mileage, rec.Observations, time.Now().UTC(),
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperror.NewKindValidationError("car", "client not found: "+rec.ClientID)
		}
		if database.IsUniqueViolation(err) {
			return apperror.NewConflictErrorWithCause("placa ou VIN já cadastrado", err)
		}
		r.logger.Error("Falha ao inserir carro no DB.", err)
		return apperror.NewDBError("failed to insert car (DB)", err)
	}

	r.logger.Debug("Carro inserido.", map[string]interface{}{"id": rec.ID})
	return nil
}

func (r *CarRepository) Update(ctx context.Context, car *domain.Car) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rec := r.mapper.ToPersistence(car)

	res, err := r.DB.ExecContext(ctxTimeout,
		`UPDATE cars SET brand = $2, model = $3, year = $4, type = $5, client_id = $6,
		        licence_plate = $7, vin = $8, transmission = $9, color = $10,
		        cilinder_capacity = $11, mileage = $12, observations = $13, updated_at = $14
		  WHERE id = $1 AND deleted_at IS NULL`,
		rec.ID, rec.Brand, rec.Model, rec.Year, rec.Type, rec.ClientID, rec.LicencePlate, rec.Vin,
		rec.Transmission, rec.Color, rec.CilinderCapacity, rec.Mileage, rec.Observations, time.Now().UTC(),
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperror.NewKindValidationError("car", "client not found: "+rec.ClientID)
		}
		if database.IsUniqueViolation(err) {
			return apperror.NewConflictErrorWithCause("placa ou VIN já cadastrado", err)
		}
		r.logger.Error("Falha ao atualizar carro no DB.", err)
		return apperror.NewDBError("failed to update car (DB)", err)
	}

	if err := r.checkAffected(res, rec.ID); err != nil {
		return err
	}
	r.invalidate(ctx, rec.ID)
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout,
		`UPDATE cars SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`, id, time.Now().UTC())
	if err != nil {
		r.logger.Error("Falha ao remover carro no DB.", err)
		return apperror.NewDBError("failed to delete car (DB)", err)
	}

	if err := r.checkAffected(res, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CarRepository) FindByID(ctx context.Context, id string) (*domain.Car, error) {
	if rec, ok := cache.GetJSON[CarRecord](ctx, r.cache, cacheKey(id)); ok {
		return r.mapper.ToDomain(rec)
	}

	car, rec, err := r.findOne(ctx, "id = $1", id)
	if err != nil || car == nil {
		return car, err
	}

	if err := cache.SetJSON(ctx, r.cache, cacheKey(id), rec, r.cacheTTL); err != nil {
		r.logger.Warn("Falha ao gravar carro no cache.", map[string]interface{}{"id": id, "error": err.Error()})
	}
	return car, nil
}

func (r *CarRepository) FindByVin(ctx context.Context, vin string) (*domain.Car, error) {
	car, _, err := r.findOne(ctx, "vin = $1", vin)
	return car, err
}

func (r *CarRepository) FindByLicensePlate(ctx context.Context, plate string) (*domain.Car, error) {
	car, _, err := r.findOne(ctx, "licence_plate = $1", plate)
	return car, err
}

func (r *CarRepository) FindByClientID(ctx context.Context, clientID string) ([]*domain.Car, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout,
		`SELECT `+selectColumns+` FROM cars WHERE client_id = $1 AND deleted_at IS NULL ORDER BY created_at, id`, clientID)
	if err != nil {
		r.logger.Error("Falha ao listar carros do cliente.", err)
		return nil, apperror.NewDBError("failed to list cars by client (DB)", err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0)
	for rows.Next() {
		car, err := r.scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("failed to iterate cars (DB)", err)
	}
	return cars, nil
}

func (r *CarRepository) FindAll(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	q, err := sqlsearch.Build(sqlsearch.Cars, selectColumns, req)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctxTimeout, q.Count, q.CountArgs...).Scan(&total); err != nil {
		r.logger.Error("Falha ao contar carros.", err)
		return domain.SearchResponse{}, apperror.NewDBError("failed to count cars (DB)", err)
	}

	rows, err := r.DB.QueryContext(ctxTimeout, q.Select, q.Args...)
	if err != nil {
		r.logger.Error("Falha ao listar carros.", err)
		return domain.SearchResponse{}, apperror.NewDBError("failed to list cars (DB)", err)
	}
	defer rows.Close()

	items := make([]map[string]any, 0, q.Limit)
	for rows.Next() {
		car, err := r.scanCar(rows)
		if err != nil {
			return domain.SearchResponse{}, err
		}
		items = append(items, car.ToMap())
	}
	if err := rows.Err(); err != nil {
		return domain.SearchResponse{}, apperror.NewDBError("failed to iterate cars (DB)", err)
	}

	return domain.SearchResponse{TotalItems: total, Items: items}, nil
}

func (r *CarRepository) findOne(ctx context.Context, where string, arg any) (*domain.Car, CarRecord, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	row := r.DB.QueryRowContext(ctxTimeout,
		`SELECT `+selectColumns+` FROM cars WHERE `+where+` AND deleted_at IS NULL`, arg)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, CarRecord{}, nil
		}
		r.logger.Error("Falha ao buscar carro no DB.", err)
		return nil, CarRecord{}, apperror.NewDBError("failed to find car (DB)", err)
	}

	car, err := r.mapper.ToDomain(rec)
	return car, rec, err
}

func (r *CarRepository) scanCar(rows *sql.Rows) (*domain.Car, error) {
	rec, err := scanRecord(rows)
	if err != nil {
		return nil, apperror.NewDBError("failed to scan car (DB)", err)
	}
	return r.mapper.ToDomain(rec)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (CarRecord, error) {
	var rec CarRecord
	err := s.Scan(&rec.ID, &rec.Brand, &rec.Model, &rec.Year, &rec.Type, &rec.ClientID,
		&rec.LicencePlate, &rec.Vin, &rec.Transmission, &rec.Color, &rec.CilinderCapacity,
		&rec.Mileage, &rec.Observations)
	return rec, err
}

func (r *CarRepository) checkAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.NewDBError("failed to read affected rows (DB)", err)
	}
	if n == 0 {
		return apperror.NewResourceNotFoundError("car", "ID "+id)
	}
	return nil
}

func (r *CarRepository) invalidate(ctx context.Context, id string) {
	if err := cache.Invalidate(ctx, r.cache, cacheKey(id)); err != nil {
		r.logger.Warn("Falha ao invalidar cache do carro.", map[string]interface{}{"id": id, "error": err.Error()})
	}
}
