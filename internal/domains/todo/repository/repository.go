package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"strings"
	"todoapi/infras/otel"
	"todoapi/infras/sqlite"
	"todoapi/internal/domains/todo/model"
	"todoapi/shared/constant"
	"todoapi/shared/logger"
)

type Todo interface {
	Insert(ctx context.Context, content string, completed bool) (int64, error)
	Get(ctx context.Context, id int64) (model.Todo, bool, error)
	GetAll(ctx context.Context) ([]model.Todo, error)
	Exist(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type repositoryImpl struct {
	db   *sqlite.Connection
	otel otel.Otel
}

func New(db *sqlite.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// Insert appends a new record and returns the id assigned by the engine.
// AUTOINCREMENT keeps ids monotonic and never reused, even after deletes.
func (repo *repositoryImpl) Insert(ctx context.Context, content string, completed bool) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (:content, :completed)", model.TableName, model.FieldContent, model.FieldCompleted)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.DB.NamedExecContext(ctx, query, map[string]any{
		"content":   content,
		"completed": completed,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read inserted id (%s): %w", model.EntityName, err)
	}

	return id, nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id int64) (model.Todo, bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf("SELECT %s, %s, %s FROM %s WHERE %s = ?", model.FieldID, model.FieldContent, model.FieldCompleted, model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var todo model.Todo

	err := repo.db.DB.GetContext(ctx, &todo, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return todo, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return todo, false, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return todo, true, nil
}

// GetAll returns every record in insertion order, which under AUTOINCREMENT
// equals ascending id order.
func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Todo, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf("SELECT %s, %s, %s FROM %s ORDER BY %s", model.FieldID, model.FieldContent, model.FieldCompleted, model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	todos := []model.Todo{}

	err := repo.db.DB.SelectContext(ctx, &todos, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return todos, nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int64) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = ?)", model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	err := repo.db.DB.GetContext(ctx, &exist, query, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", model.EntityName, err)
	}

	return exist, nil
}

// Update mutates only the columns present in fields. An empty map is a no-op.
func (repo *repositoryImpl) Update(ctx context.Context, id int64, fields map[string]any) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	if len(fields) == 0 {
		return nil
	}

	updateField := []string{}

	for col := range maps.Keys(fields) {
		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = :%s", model.TableName, strings.Join(updateField, ", "), model.FieldID, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{model.FieldID: id}
	maps.Copy(args, fields)

	_, err := repo.db.DB.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	return nil
}

// Delete removes the record and reports whether it existed.
func (repo *repositoryImpl) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected > 0, nil
}
