package tasksrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/rsalas/taskdeck/bridge/scaffolding/errs"
	"github.com/rsalas/taskdeck/bridge/scaffolding/mid"
	"github.com/rsalas/taskdeck/core/repositories/tasksrepo"
	"github.com/rsalas/taskdeck/infrastructure/web"
)

type bridge struct {
	tasksRepository *tasksrepo.Repository
}

func newBridge(tasksRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		tasksRepository: tasksRepository,
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	tasks, err := b.tasksRepository.List(ctx, userID)
	if err != nil {
		return taskError(err)
	}

	return web.NewJSONResponse(MarshalListToBridge(tasks))
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	taskID := web.Param(r, "task_id")

	task, err := b.tasksRepository.GetByID(ctx, userID, taskID)
	if err != nil {
		return taskError(err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	ct, err := MarshalCreateToRepository(input)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.tasksRepository.Create(ctx, userID, ct)
	if err != nil {
		return taskError(err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(task), http.StatusCreated)
}

func (b *bridge) httpSearch(ctx context.Context, r *http.Request) web.Encoder {
	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	filter, err := parseTaskFilter(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tasks, err := b.tasksRepository.Search(ctx, userID, filter)
	if err != nil {
		return taskError(err)
	}

	return web.NewJSONResponse(MarshalListToBridge(tasks))
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	taskID := web.Param(r, "task_id")

	var input UpdateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	ut, err := MarshalUpdateToRepository(input)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.tasksRepository.Update(ctx, userID, taskID, ut)
	if err != nil {
		return taskError(err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpComplete(ctx context.Context, r *http.Request) web.Encoder {
	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	taskID := web.Param(r, "task_id")

	task, err := b.tasksRepository.Complete(ctx, userID, taskID)
	if err != nil {
		return taskError(err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	userID, err := mid.GetUserID(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	taskID := web.Param(r, "task_id")

	if err := b.tasksRepository.Delete(ctx, userID, taskID); err != nil {
		return taskError(err)
	}

	return web.NewJSONResponseWithStatus(struct{}{}, http.StatusNoContent)
}

// taskError maps repository errors to coded web errors.
func taskError(err error) *errs.Error {
	switch {
	case errors.Is(err, tasksrepo.ErrNotFound):
		return errs.Newf(errs.NotFound, "task not found")
	case errors.Is(err, tasksrepo.ErrTagNotFound):
		return errs.Newf(errs.FailedPrecondition, "one or more tags do not exist")
	case errors.Is(err, tasksrepo.ErrTitleRequired):
		return errs.Newf(errs.InvalidArgument, "title is required")
	default:
		return errs.New(errs.InternalOnlyLog, err)
	}
}
