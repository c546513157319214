package vehiclerepo

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

// VehicleRepository implementa domain.VehicleRepository sobre o PostgreSQL.
type VehicleRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	cache     cache.Client
	cacheTTL  time.Duration
	mapper    VehicleMapper
	logger    logger.Logger
}

// NewVehicleRepository aceita cacheClient nil (cache desligado).
func NewVehicleRepository(db *sql.DB, dbTimeout time.Duration, cacheClient cache.Client, cacheTTL time.Duration, log logger.Logger) *VehicleRepository {
	return &VehicleRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		cache:     cacheClient,
		cacheTTL:  cacheTTL,
		logger:    log,
	}
}

func cacheKey(id string) string { return "vehicle:" + id }

func (r *VehicleRepository) Save(ctx context.Context, vehicle *domain.Vehicle) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rec := r.mapper.ToPersistence(vehicle)

	_, err := r.DB.ExecContext(ctxTimeout,
		`INSERT INTO vehicles (`+selectColumns+`, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)`,
		rec.ID, rec.Brand, rec.Model, rec.Year, rec.Type, rec.ClientID, rec.LicencePlate, rec.Vin,
		rec.Transmission, rec.Color, rec.CilinderCapacity, rec.Mileage, rec.Observations, time.Now().UTC(),
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperror.NewKindValidationError("vehicle", "client not found: "+rec.ClientID)
		}
		if database.IsUniqueViolation(err) {
			return apperror.NewConflictErrorWithCause("placa ou VIN já cadastrado", err)
		}
		r.logger.Error("Falha ao inserir veículo no DB.", err)
		return apperror.NewDBError("failed to insert vehicle (DB)", err)
	}

	r.logger.Debug("Veículo inserido.", map[string]interface{}{"id": rec.ID})
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rec := r.mapper.ToPersistence(vehicle)

	res, err := r.DB.ExecContext(ctxTimeout,
		`UPDATE vehicles SET brand = $2, model = $3, year = $4, type = $5, client_id = $6,
		        licence_plate = $7, vin = $8, transmission = $9, color = $10,
		        cilinder_capacity = $11, mileage = $12, observations = $13, updated_at = $14
		  WHERE id = $1 AND deleted_at IS NULL`,
		rec.ID, rec.Brand, rec.Model, rec.Year, rec.Type, rec.ClientID, rec.LicencePlate, rec.Vin,
		rec.Transmission, rec.Color, rec.CilinderCapacity, rec.Mileage, rec.Observations, time.Now().UTC(),
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperror.NewKindValidationError("vehicle", "client not found: "+rec.ClientID)
		}
		if database.IsUniqueViolation(err) {
			return apperror.NewConflictErrorWithCause("placa ou VIN já cadastrado", err)
		}
		r.logger.Error("Falha ao atualizar veículo no DB.", err)
		return apperror.NewDBError("failed to update vehicle (DB)", err)
	}

	if err := r.checkAffected(res, rec.ID); err != nil {
		return err
	}
	r.invalidate(ctx, rec.ID)
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout,
		`UPDATE vehicles SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`, id, time.Now().UTC())
	if err != nil {
		r.logger.Error("Falha ao remover veículo no DB.", err)
		return apperror.NewDBError("failed to delete vehicle (DB)", err)
	}

	if err := r.checkAffected(res, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	if rec, ok := cache.GetJSON[VehicleRecord](ctx, r.cache, cacheKey(id)); ok {
		return r.mapper.ToDomain(rec)
	}

	vehicle, rec, err := r.findOne(ctx, "id = $1", id)
	if err != nil || vehicle == nil {
		return vehicle, err
	}

	if err := cache.SetJSON(ctx, r.cache, cacheKey(id), rec, r.cacheTTL); err != nil {
		r.logger.Warn("Falha ao gravar veículo no cache.", map[string]interface{}{"id": id, "error": err.Error()})
	}
	return vehicle, nil
}

func (r *VehicleRepository) FindByVin(ctx context.Context, vin string) (*domain.Vehicle, error) {
	vehicle, _, err := r.findOne(ctx, "vin = $1", vin)
	return vehicle, err
}

func (r *VehicleRepository) FindByLicensePlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	vehicle, _, err := r.findOne(ctx, "licence_plate = $1", plate)
	return vehicle, err
}

func (r *VehicleRepository) FindByClientID(ctx context.Context, clientID string) ([]*domain.Vehicle, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout,
		`SELECT `+selectColumns+` FROM vehicles WHERE client_id = $1 AND deleted_at IS NULL ORDER BY created_at, id`, clientID)
	if err != nil {
		r.logger.Error("Falha ao listar veículos do cliente.", err)
		return nil, apperror.NewDBError("failed to list vehicles by client (DB)", err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		vehicle, err := r.scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("failed to iterate vehicles (DB)", err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) FindAll(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	q, err := sqlsearch.Build(sqlsearch.Vehicles, selectColumns, req)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctxTimeout, q.Count, q.CountArgs...).Scan(&total); err != nil {
		r.logger.Error("Falha ao contar veículos.", err)
		return domain.SearchResponse{}, apperror.NewDBError("failed to count vehicles (DB)", err)
	}

	rows, err := r.DB.QueryContext(ctxTimeout, q.Select, q.Args...)
	if err != nil {
		r.logger.Error("Falha ao listar veículos.", err)
		return domain.SearchResponse{}, apperror.NewDBError("failed to list vehicles (DB)", err)
	}
	defer rows.Close()

	items := make([]map[string]any, 0, q.Limit)
	for rows.Next() {
		vehicle, err := r.scanVehicle(rows)
		if err != nil {
			return domain.SearchResponse{}, err
		}
		items = append(items, vehicle.ToMap())
	}
	if err := rows.Err(); err != nil {
		return domain.SearchResponse{}, apperror.NewDBError("failed to iterate vehicles (DB)", err)
	}

	return domain.SearchResponse{TotalItems: total, Items: items}, nil
}

func (r *VehicleRepository) findOne(ctx context.Context, where string, arg any) (*domain.Vehicle, VehicleRecord, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	row := r.DB.QueryRowContext(ctxTimeout,
		`SELECT `+selectColumns+` FROM vehicles WHERE `+where+` AND deleted_at IS NULL`, arg)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, VehicleRecord{}, nil
		}
		r.logger.Error("Falha ao busvehicle veículo no DB.", err)
		return nil, VehicleRecord{}, apperror.NewDBError("failed to find vehicle (DB)", err)
	}

	vehicle, err := r.mapper.ToDomain(rec)
	return vehicle, rec, err
}

func (r *VehicleRepository) scanVehicle(rows *sql.Rows) (*domain.Vehicle, error) {
	rec, err := scanRecord(rows)
	if err != nil {
		return nil, apperror.NewDBError("failed to scan vehicle (DB)", err)
	}
	return r.mapper.ToDomain(rec)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (VehicleRecord, error) {
	var rec VehicleRecord
	err := s.Scan(&rec.ID, &rec.Brand, &rec.Model, &rec.Year, &rec.Type, &rec.ClientID,
		&rec.LicencePlate, &rec.Vin, &rec.Transmission, &rec.Color, &rec.CilinderCapacity,
		&rec.Mileage, &rec.Observations)
	return rec, err
}

func (r *VehicleRepository) checkAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.NewDBError("failed to read affected rows (DB)", err)
	}
	if n == 0 {
		return apperror.NewResourceNotFoundError("vehicle", "ID "+id)
	}
	return nil
}

func (r *VehicleRepository) invalidate(ctx context.Context, id string) {
	if err := cache.Invalidate(ctx, r.cache, cacheKey(id)); err != nil {
		r.logger.Warn("Falha ao invalidar cache do veículo.", map[string]interface{}{"id": id, "error": err.Error()})
	}
}
