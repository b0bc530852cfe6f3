// Package session tracks the single admin-authenticated flag for the
// process and persists it to the backing store so the session survives a
// restart. There is exactly one implicit administrator; this is not a
// multi-account system.
package session

import (
	"context"
	"crypto/subtle"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/clementmotivates/core/internal/pkg/kv"
)

// authKey is the backing-store key holding the session flag.
const authKey = "cm_auth"

// CredentialVerifier decides whether an identifier/secret pair belongs to
// the administrator. Swapping the implementation changes the credential
// check without touching the gate's state machine.
type CredentialVerifier interface {
	Verify(identifier, secret string) bool
}

// StaticCredentials verifies against a fixed pair in constant time.
type StaticCredentials struct {
	Identifier string
	Secret     string
}

func (c StaticCredentials) Verify(identifier, secret string) bool {
	idOK := subtle.ConstantTimeCompare([]byte(identifier), []byte(c.Identifier)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(secret), []byte(c.Secret)) == 1
	return idOK && secretOK
}

// BcryptCredentials verifies the secret against a bcrypt hash.
type BcryptCredentials struct {
	Identifier string
	Hash       string
}

func (c BcryptCredentials) Verify(identifier, secret string) bool {
	if subtle.ConstantTimeCompare([]byte(identifier), []byte(c.Identifier)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.Hash), []byte(secret)) == nil
}

// Gate holds the authenticated flag.
type Gate struct {
	mu       sync.RWMutex
	kv       kv.Store
	verifier CredentialVerifier
	log      *zap.Logger

	authenticated bool
}

// New hydrates the flag from the backing store: only the exact literal
// "true" counts as an existing session.
func New(ctx context.Context, backing kv.Store, verifier CredentialVerifier, logger *zap.Logger) (*Gate, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Gate{kv: backing, verifier: verifier, log: logger}
	raw, ok, err := backing.Get(ctx, authKey)
	if err != nil {
		return nil, err
	}
	g.authenticated = ok && raw == "true"
	return g, nil
}

// Login checks the credentials, and on success sets and persists the flag.
// A failed login leaves the gate untouched. A persist failure is logged but
// does not fail the login; the session then simply does not survive a
// restart.
func (g *Gate) Login(ctx context.Context, identifier, secret string) bool {
	if !g.verifier.Verify(identifier, secret) {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.kv.Set(ctx, authKey, "true"); err != nil {
		g.log.Warn("could not persist session flag", zap.Error(err))
	}
	g.authenticated = true
	return true
}

// Logout clears the flag and removes the persisted value.
func (g *Gate) Logout(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.authenticated = false
	return g.kv.Remove(ctx, authKey)
}

// IsAuthenticated reports the in-memory flag; it never touches the backing
// store.
func (g *Gate) IsAuthenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.authenticated
}
