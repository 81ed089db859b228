package auth

import (
	"errors"
	"strings"
)

var (
	ErrEmptyToken         = errors.New("credential token is empty")
	ErrInvalidActorClass  = errors.New("invalid actor class")
	ErrInvalidCredentials = errors.New("invalid session credentials")
)

// ActorClass selects the endpoint family and the ledger partition.
type ActorClass string

const (
	ActorGuest         ActorClass = "guest"
	ActorAuthenticated ActorClass = "authenticated"
)

func (a ActorClass) String() string {
	return string(a)
}

func (a ActorClass) IsValid() bool {
	switch a {
	case ActorGuest, ActorAuthenticated:
		return true
	default:
		return false
	}
}

func ParseActorClass(s string) (ActorClass, error) {
	a := ActorClass(strings.ToLower(strings.TrimSpace(s)))
	if !a.IsValid() {
		return "", ErrInvalidActorClass
	}
	return a, nil
}

type CredentialKind string

const (
	CredentialFederated    CredentialKind = "federated"
	CredentialLocalSession CredentialKind = "local_session"
)

// Credential is a short-lived bearer value. The zero value means no credential.
type Credential struct {
	kind  CredentialKind
	token string
}

func NewFederatedToken(token string) (Credential, error) {
	return newCredential(CredentialFederated, token)
}

func NewLocalSessionToken(token string) (Credential, error) {
	return newCredential(CredentialLocalSession, token)
}

func newCredential(kind CredentialKind, token string) (Credential, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Credential{}, ErrEmptyToken
	}
	return Credential{kind: kind, token: token}, nil
}

func (c Credential) Kind() CredentialKind {
	return c.kind
}

func (c Credential) Token() string {
	return c.token
}

func (c Credential) IsZero() bool {
	return c.token == ""
}

// SessionCredentials is what a local login hands to the session store.
type SessionCredentials struct {
	token  string
	userID string
}

func NewSessionCredentials(token, userID string) (SessionCredentials, error) {
	token = strings.TrimSpace(token)
	userID = strings.TrimSpace(userID)
	if token == "" || userID == "" {
		return SessionCredentials{}, ErrInvalidCredentials
	}
	return SessionCredentials{token: token, userID: userID}, nil
}

func (s SessionCredentials) Token() string {
	return s.token
}

func (s SessionCredentials) UserID() string {
	return s.userID
}
