// Package services contains application services for the credit-transfer
// client. This file defines the authentication service: login, logout,
// register and the liveness probe.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/credittransfer/internal/client/models"
	"github.com/dmitrijs2005/credittransfer/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server, open a session, return the landing screen.
//   - Logout: close the session and return the public entry screen.
//   - Register: create a new account on the server.
//   - Ping: check server liveness.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username, password string) (session.Screen, error)
	Logout(ctx context.Context) (session.Screen, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Ping(ctx context.Context) error
}

// AuthClient is the part of the API client the auth service uses.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (models.Credential, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Ping(ctx context.Context) error
}

// SessionGate is satisfied by *session.Gate.
type SessionGate interface {
	SignIn(ctx context.Context, cred models.Credential) (session.Screen, error)
	SignOut(ctx context.Context) (session.Screen, error)
}

type authService struct {
	client AuthClient
	gate   SessionGate
}

func NewAuthService(client AuthClient, gate SessionGate) AuthService {
	return &authService{client: client, gate: gate}
}

// Login exchanges username and password for a credential and hands it to the
// session gate. The gate is left untouched when the server rejects the login.
func (a *authService) Login(ctx context.Context, username, password string) (session.Screen, error) {
	cred, err := a.client.Login(ctx, username, password)
	if err != nil {
		return session.ScreenEntry, fmt.Errorf("login error: %w", err)
	}

	screen, err := a.gate.SignIn(ctx, cred)
	if err != nil {
		return session.ScreenEntry, fmt.Errorf("sign in error: %w", err)
	}
	return screen, nil
}

func (a *authService) Logout(ctx context.Context) (session.Screen, error) {
	return a.gate.SignOut(ctx)
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	if req.Username == "" || req.Password == "" {
		return fmt.Errorf("register: username and password are required")
	}
	if err := a.client.Register(ctx, req); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
