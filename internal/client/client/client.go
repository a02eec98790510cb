package client

import (
	"context"

	"github.com/dmitrijs2005/credittransfer/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, username, password string) (models.Credential, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Ping(ctx context.Context) error

	PendingRequests(ctx context.Context) ([]models.TransferRequest, error)
	RequestDetail(ctx context.Context, requestID int) (models.TransferRequest, error)
	UpdateItemStatus(ctx context.Context, itemID int, status models.Status) error
	History(ctx context.Context) ([]models.TransferRequest, error)
	DeleteRequest(ctx context.Context, requestID int) error
	DownloadReport(ctx context.Context, requestID int, kind models.ReportKind) ([]byte, error)

	Notifications(ctx context.Context) ([]models.TransferRequest, error)
	StudentRequests(ctx context.Context) ([]models.TransferRequest, error)
}

// TokenSource yields the access token attached to protected calls.
// An empty token means the call is sent without Authorization.
type TokenSource interface {
	AccessToken() string
}

// TokenFunc adapts a plain function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) AccessToken() string { return f() }
