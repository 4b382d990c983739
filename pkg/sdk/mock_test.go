package shelf

import (
	"context"

	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	"github.com/kailas-cloud/shelf/internal/domain/search/result"
	healthuc "github.com/kailas-cloud/shelf/internal/usecase/health"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, req *request.Request) (*result.Response, error)
}

func (m *mockSearchUC) Search(ctx context.Context, req *request.Request) (*result.Response, error) {
	return m.searchFn(ctx, req)
}

// --- pinger mock ---

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

// --- helpers ---

func testClient(searchSvc searchUseCase, p pinger) *Client {
	return &Client{
		pinger:    p,
		searchSvc: searchSvc,
		healthSvc: healthuc.New(p, nil),
		limits:    request.DefaultLimits(),
	}
}
