package tagsrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/rsalas/taskdeck/bridge/scaffolding/errs"
	"github.com/rsalas/taskdeck/core/repositories/tagsrepo"
	"github.com/rsalas/taskdeck/infrastructure/web"
)

type bridge struct {
	tagsRepository *tagsrepo.Repository
}

func newBridge(tagsRepository *tagsrepo.Repository) *bridge {
	return &bridge{
		tagsRepository: tagsRepository,
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	tags, err := b.tagsRepository.List(ctx)
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	return web.NewJSONResponse(MarshalListToBridge(tags))
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	tagID := web.Param(r, "tag_id")

	tag, err := b.tagsRepository.GetByID(ctx, tagID)
	if err != nil {
		if errors.Is(err, tagsrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "tag not found")
		}
		return errs.New(errs.InternalOnlyLog, err)
	}

	return web.NewJSONResponse(MarshalToBridge(tag))
}
