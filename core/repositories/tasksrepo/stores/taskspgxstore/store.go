// Package taskspgxstore implements the task storer on Postgres. Task rows
// and their tag associations are written inside one transaction so readers
// never observe a partially reconciled tag set.
package taskspgxstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rsalas/taskdeck/core/repositories/tagsrepo"
	"github.com/rsalas/taskdeck/core/repositories/tasksrepo"
	"github.com/rsalas/taskdeck/infrastructure/postgresdb"
	"github.com/rsalas/taskdeck/sdk/logger"
)

const taskColumns = `task_id, user_id, title, description, priority, status, due_date, created_at, updated_at`

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so tag resolution
// can run inside or outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (s *Store) List(ctx context.Context, userID string) ([]tasksrepo.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = @user_id
		ORDER BY created_at, task_id`

	args := pgx.NamedArgs{"user_id": userID}
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	if err := attachTags(ctx, s.pool, tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (s *Store) GetByID(ctx context.Context, userID string, taskID string) (tasksrepo.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE task_id = @task_id AND user_id = @user_id`

	args := pgx.NamedArgs{
		"task_id": taskID,
		"user_id": userID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	tasks := []tasksrepo.Task{task}
	if err := attachTags(ctx, s.pool, tasks); err != nil {
		return tasksrepo.Task{}, err
	}

	return tasks[0], nil
}

func (s *Store) Create(ctx context.Context, userID string, ct tasksrepo.CreateTask) (tasksrepo.Task, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return tasksrepo.Task{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// COALESCE mirrors the column defaults so an absent priority/status
	// falls through to the schema's value.
	query := `INSERT INTO tasks (task_id, user_id, title, description, priority, status, due_date)
		VALUES (@task_id, @user_id, @title, @description,
			COALESCE(@priority::task_priority, 'MEDIUM'),
			COALESCE(@status::task_status, 'NOT_STARTED'),
			@due_date)
		RETURNING ` + taskColumns

	args := pgx.NamedArgs{
		"task_id":     uuid.NewString(),
		"user_id":     userID,
		"title":       ct.Title,
		"description": ct.Description,
		"priority":    enumArg(ct.Priority),
		"status":      enumArg(ct.Status),
		"due_date":    ct.DueDate,
	}

	rows, err := tx.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	if err := insertTaskTags(ctx, tx, task.TaskID, ct.TagIDs); err != nil {
		return tasksrepo.Task{}, err
	}

	tasks := []tasksrepo.Task{task}
	if err := attachTags(ctx, tx, tasks); err != nil {
		return tasksrepo.Task{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return tasksrepo.Task{}, fmt.Errorf("commit transaction: %w", err)
	}

	return tasks[0], nil
}

func (s *Store) Update(ctx context.Context, userID string, taskID string, ut tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return tasksrepo.Task{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query, args := buildTaskUpdate(userID, taskID, ut)

	rows, err := tx.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	// A provided tag set, even an empty one, replaces every existing
	// association. A nil set leaves them alone.
	if ut.TagIDs != nil {
		delQuery := `DELETE FROM task_tags WHERE task_id = @task_id`
		if _, err := tx.Exec(ctx, delQuery, pgx.NamedArgs{"task_id": task.TaskID}); err != nil {
			return tasksrepo.Task{}, postgresdb.HandlePgError(err)
		}

		if err := insertTaskTags(ctx, tx, task.TaskID, *ut.TagIDs); err != nil {
			return tasksrepo.Task{}, err
		}
	}

	tasks := []tasksrepo.Task{task}
	if err := attachTags(ctx, tx, tasks); err != nil {
		return tasksrepo.Task{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return tasksrepo.Task{}, fmt.Errorf("commit transaction: %w", err)
	}

	return tasks[0], nil
}

func (s *Store) Delete(ctx context.Context, userID string, taskID string) error {
	query := `DELETE FROM tasks
		WHERE task_id = @task_id AND user_id = @user_id`

	args := pgx.NamedArgs{
		"task_id": taskID,
		"user_id": userID,
	}

	tag, err := s.pool.Exec(ctx, query, args)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}

	// Associations are removed by the ON DELETE CASCADE on task_tags.
	if tag.RowsAffected() == 0 {
		return tasksrepo.ErrNotFound
	}

	return nil
}

func (s *Store) Search(ctx context.Context, userID string, filter tasksrepo.TaskFilter) ([]tasksrepo.Task, error) {
	query, args := buildTaskSearch(userID, filter)

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	if err := attachTags(ctx, s.pool, tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// enumArg flattens a typed enum pointer to the *string shape the driver
// expects for enum parameters.
func enumArg[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

// insertTaskTags creates one association row per tag id. A tag id missing
// from the catalog trips the foreign key and surfaces as ErrTagNotFound,
// rolling back the enclosing transaction.
func insertTaskTags(ctx context.Context, tx pgx.Tx, taskID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}

	query := `INSERT INTO task_tags (task_id, tag_id)
		SELECT @task_id, unnest(@tag_ids::text[])`

	args := pgx.NamedArgs{
		"task_id": taskID,
		"tag_ids": tagIDs,
	}

	if _, err := tx.Exec(ctx, query, args); err != nil {
		err = postgresdb.HandlePgError(err)
		if errors.Is(err, postgresdb.ErrDBForeignKey) {
			return tasksrepo.ErrTagNotFound
		}
		if errors.Is(err, postgresdb.ErrDBDuplicatedEntry) {
			return fmt.Errorf("duplicate tag id for task %s: %w", taskID, err)
		}
		return err
	}

	return nil
}

// attachTags resolves the full tag objects for every task in the slice and
// fills the Tags field in place, leaving an empty (non-nil) slice for tasks
// without associations.
func attachTags(ctx context.Context, q querier, tasks []tasksrepo.Task) error {
	for i := range tasks {
		tasks[i].Tags = []tagsrepo.Tag{}
	}

	if len(tasks) == 0 {
		return nil
	}

	ids := make([]string, len(tasks))
	index := make(map[string]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.TaskID
		index[t.TaskID] = i
	}

	query := `SELECT tt.task_id, t.tag_id, t.name, t.created_at
		FROM task_tags tt
		JOIN tags t ON t.tag_id = tt.tag_id
		WHERE tt.task_id = ANY(@task_ids::text[])
		ORDER BY t.name`

	args := pgx.NamedArgs{"task_ids": ids}
	rows, err := q.Query(ctx, query, args)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID string
		var tag tagsrepo.Tag
		if err := rows.Scan(&taskID, &tag.TagID, &tag.Name, &tag.CreatedAt); err != nil {
			return postgresdb.HandlePgError(err)
		}

		i, ok := index[taskID]
		if !ok {
			continue
		}
		tasks[i].Tags = append(tasks[i].Tags, tag)
	}

	return rows.Err()
}
