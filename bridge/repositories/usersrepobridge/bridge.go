package usersrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/rsalas/taskdeck/bridge/scaffolding/errs"
	"github.com/rsalas/taskdeck/core/repositories/usersrepo"
	"github.com/rsalas/taskdeck/infrastructure/web"
	"github.com/rsalas/taskdeck/sdk/tokens"
)

type bridge struct {
	usersRepository *usersrepo.Repository
	tokens          *tokens.Tokens
}

func newBridge(usersRepository *usersrepo.Repository, tokens *tokens.Tokens) *bridge {
	return &bridge{
		usersRepository: usersRepository,
		tokens:          tokens,
	}
}

func (b *bridge) httpSignup(ctx context.Context, r *http.Request) web.Encoder {
	var input SignupInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	user, err := b.usersRepository.Register(ctx, usersrepo.NewUser{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usersrepo.ErrEmailTaken):
			return errs.Newf(errs.Aborted, "email already registered")
		case errors.Is(err, usersrepo.ErrInvalidEmail), errors.Is(err, usersrepo.ErrPasswordTooShort):
			return errs.New(errs.InvalidArgument, err)
		default:
			return errs.New(errs.InternalOnlyLog, err)
		}
	}

	resp := SignupResponse{
		Message: "user registered successfully",
		UserID:  user.UserID,
	}

	return web.NewJSONResponseWithStatus(resp, http.StatusCreated)
}

func (b *bridge) httpLogin(ctx context.Context, r *http.Request) web.Encoder {
	var input LoginInput
	if err := web.Decode(r, &input); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	user, err := b.usersRepository.Authenticate(ctx, usersrepo.Credentials{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, usersrepo.ErrAuthenticationFailed) {
			return errs.Newf(errs.Unauthenticated, "invalid email or password")
		}
		return errs.New(errs.InternalOnlyLog, err)
	}

	token, err := b.tokens.Generate(user.UserID)
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	return web.NewJSONResponse(LoginResponse{Token: token})
}
