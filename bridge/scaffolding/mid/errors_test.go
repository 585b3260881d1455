package mid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rsalas/taskdeck/bridge/scaffolding/errs"
	"github.com/rsalas/taskdeck/infrastructure/web"
	"github.com/rsalas/taskdeck/sdk/logger"
)

func TestErrorsPassesSuccessThrough(t *testing.T) {
	mw := Errors(logger.NewDefault())
	handler := mw(func(ctx context.Context, r *http.Request) web.Encoder {
		return okEncoder{}
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if resp := handler(context.Background(), r); isError(resp) != nil {
		t.Fatalf("success response was turned into an error: %v", isError(resp))
	}
}

func TestErrorsKeepsCodedErrors(t *testing.T) {
	mw := Errors(logger.NewDefault())
	handler := mw(func(ctx context.Context, r *http.Request) web.Encoder {
		return errs.Newf(errs.NotFound, "task not found")
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := handler(context.Background(), r)

	appErr, ok := resp.(*errs.Error)
	if !ok {
		t.Fatalf("expected *errs.Error, got %T", resp)
	}

	if appErr.Code != errs.NotFound || appErr.Message != "task not found" {
		t.Errorf("coded error was rewritten: %+v", appErr)
	}
}

func TestErrorsSanitizesInternalOnlyLog(t *testing.T) {
	mw := Errors(logger.NewDefault())
	handler := mw(func(ctx context.Context, r *http.Request) web.Encoder {
		return errs.Newf(errs.InternalOnlyLog, "pq: secret connection string leaked")
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := handler(context.Background(), r)

	appErr, ok := resp.(*errs.Error)
	if !ok {
		t.Fatalf("expected *errs.Error, got %T", resp)
	}

	if appErr.Message != "Internal Server Error" {
		t.Errorf("internal detail leaked to the client: %q", appErr.Message)
	}

	if appErr.HTTPStatus() != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", appErr.HTTPStatus())
	}
}

func TestPanicsRecovers(t *testing.T) {
	mw := Panics()
	handler := mw(func(ctx context.Context, r *http.Request) web.Encoder {
		panic("boom")
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := handler(context.Background(), r)

	if isError(resp) == nil {
		t.Fatal("expected an error response after a panic")
	}
}
