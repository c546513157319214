package clientrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gooficina/internal/domain"
	apperror "gooficina/internal/errors"
	"gooficina/internal/pkg/cache"
	"gooficina/internal/pkg/database"
	"gooficina/internal/pkg/logger"
	"gooficina/internal/repository/sqlsearch"
)

const selectColumns = `id, name, email, document, document_type, street, city, state, zip_code, phone, observations`

// ClientRepository implementa domain.ClientRepository sobre o PostgreSQL.
// Remoção é lógica (deleted_at); FindByID passa pelo cache quando houver um.
type ClientRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	cache     cache.Client
	cacheTTL  time.Duration
	mapper    ClientMapper
	logger    logger.Logger
}

// NewClientRepository aceita cacheClient nil (cache desligado).
func NewClientRepository(db *sql.DB, dbTimeout time.Duration, cacheClient cache.Client, cacheTTL time.Duration, log logger.Logger) *ClientRepository {
	return &ClientRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		cache:     cacheClient,
		cacheTTL:  cacheTTL,
		logger:    log,
	}
}

func cacheKey(id string) string { return "client:" + id }

func (r *ClientRepository) Save(ctx context.Context, client *domain.Client) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rec := r.mapper.ToPersistence(client)
	now := time.Now().UTC()

	_, err := r.DB.ExecContext(ctxTimeout,
		`INSERT INTO clients (`+selectColumns+`, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)`,
		rec.ID, rec.Name, rec.Email, rec.Document, rec.DocumentType,
		rec.Street, rec.City, rec.State, rec.ZipCode, rec.Phone, rec.Observations, now,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.NewConflictErrorWithCause(fmt.Sprintf("documento já cadastrado: %s", rec.Document), err)
		}
		r.logger.Error("Falha ao inserir cliente no DB.", err)
		return apperror.NewDBError("failed to insert client (DB)", err)
	}

	r.logger.Debug("Cliente inserido.", map[string]interface{}{"id": rec.ID})
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rec := r.mapper.ToPersistence(client)

	res, err := r.DB.ExecContext(ctxTimeout,
		`UPDATE clients SET name = $2, email = $3, document = $4, document_type = $5,
		        street = $6, city = $7, state = $8, zip_code = $9, phone = $10,
		        observations = $11, updated_at = $12
		  WHERE id = $1 AND deleted_at IS NULL`,
		rec.ID, rec.Name, rec.Email, rec.Document, rec.DocumentType,
		rec.Street, rec.City, rec.State, rec.ZipCode, rec.Phone, rec.Observations, time.Now().UTC(),
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.NewConflictErrorWithCause(fmt.Sprintf("documento já cadastrado: %s", rec.Document), err)
		}
		r.logger.Error("Falha ao atualizar cliente no DB.", err)
		return apperror.NewDBError("failed to update client (DB)", err)
	}

	if err := r.checkAffected(res, rec.ID); err != nil {
		return err
	}
	r.invalidate(ctx, rec.ID)
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout,
		`UPDATE clients SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`, id, time.Now().UTC())
	if err != nil {
		r.logger.Error("Falha ao remover cliente no DB.", err)
		return apperror.NewDBError("failed to delete client (DB)", err)
	}

	if err := r.checkAffected(res, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	// 1. Cache-aside
	if rec, ok := cache.GetJSON[ClientRecord](ctx, r.cache, cacheKey(id)); ok {
		r.logger.Debug("Cliente servido do cache.", map[string]interface{}{"id": id})
		return r.mapper.ToDomain(rec)
	}

	// 2. Banco
	client, rec, err := r.findOne(ctx, "id = $1", id)
	if err != nil || client == nil {
		return client, err
	}

	// 3. Popula o cache
	if err := cache.SetJSON(ctx, r.cache, cacheKey(id), rec, r.cacheTTL); err != nil {
		r.logger.Warn("Falha ao gravar cliente no cache.", map[string]interface{}{"id": id, "error": err.Error()})
	}
	return client, nil
}

func (r *ClientRepository) FindByDocument(ctx context.Context, document string) (*domain.Client, error) {
	client, _, err := r.findOne(ctx, "document = $1", document)
	return client, err
}

func (r *ClientRepository) FindAll(ctx context.Context, req domain.SearchRequest) (domain.SearchResponse, error) {
	q, err := sqlsearch.Build(sqlsearch.Clients, selectColumns, req)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctxTimeout, q.Count, q.CountArgs...).Scan(&total); err != nil {
		r.logger.Error("Falha ao contar clientes.", err)
		return domain.SearchResponse{}, apperror.NewDBError("failed to count clients (DB)", err)
	}

	rows, err := r.DB.QueryContext(ctxTimeout, q.Select, q.Args...)
	if err != nil {
		r.logger.Error("Falha ao listar clientes.", err)
		return domain.SearchResponse{}, apperror.NewDBError("failed to list clients (DB)", err)
	}
	defer rows.Close()

	items := make([]map[string]any, 0, q.Limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return domain.SearchResponse{}, apperror.NewDBError("failed to scan client (DB)", err)
		}
		client, err := r.mapper.ToDomain(rec)
		if err != nil {
			return domain.SearchResponse{}, err
		}
		items = append(items, client.ToMap())
	}
	if err := rows.Err(); err != nil {
		return domain.SearchResponse{}, apperror.NewDBError("failed to iterate clients (DB)", err)
	}

	return domain.SearchResponse{TotalItems: total, Items: items}, nil
}

func (r *ClientRepository) findOne(ctx context.Context, where string, arg any) (*domain.Client, ClientRecord, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	row := r.DB.QueryRowContext(ctxTimeout,
		`SELECT `+selectColumns+` FROM clients WHERE `+where+` AND deleted_at IS NULL`, arg)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ClientRecord{}, nil
		}
		r.logger.Error("Falha ao buscar cliente no DB.", err)
		return nil, ClientRecord{}, apperror.NewDBError("failed to find client (DB)", err)
	}

	client, err := r.mapper.ToDomain(rec)
	return client, rec, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (ClientRecord, error) {
	var rec ClientRecord
	err := s.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Document, &rec.DocumentType,
		&rec.Street, &rec.City, &rec.State, &rec.ZipCode, &rec.Phone, &rec.Observations)
	return rec, err
}

func (r *ClientRepository) checkAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.NewDBError("failed to read affected rows (DB)", err)
	}
	if n == 0 {
		return apperror.NewResourceNotFoundError("client", "ID "+id)
	}
	return nil
}

func (r *ClientRepository) invalidate(ctx context.Context, id string) {
	if err := cache.Invalidate(ctx, r.cache, cacheKey(id)); err != nil {
		r.logger.Warn("Falha ao invalidar cache do cliente.", map[string]interface{}{"id": id, "error": err.Error()})
	}
}
