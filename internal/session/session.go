package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
)

const (
	CookieName = "sessionId"
	CookiePath = "/"
	MaxAge     = 7 * 24 * time.Hour
)

// ErrMissing is returned when a session-scoped read arrives without a session cookie.
var ErrMissing = errors.New("session cookie missing")

// Resolution is the outcome of resolving a request's session.
// Issued is true when the ID was generated for this request and the caller
// must attach it to the response with Cookie.
type Resolution struct {
	ID     string
	Issued bool
}

type Resolver struct {
	newID func() (uuid.UUID, error)
}

// NewResolver returns a Resolver issuing ids from gen, uuid.NewV4 when gen is nil.
func NewResolver(gen func() (uuid.UUID, error)) *Resolver {
	if gen == nil {
		gen = uuid.NewV4
	}
	return &Resolver{newID: gen}
}

// Resolve returns the session carried by cookieValue, issuing a new one when it is empty.
func (r *Resolver) Resolve(cookieValue string) (Resolution, error) {
	if cookieValue != "" {
		return Resolution{ID: cookieValue}, nil
	}

	id, err := r.newID()
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{ID: id.String(), Issued: true}, nil
}

// Require returns cookieValue or ErrMissing.
func (r *Resolver) Require(cookieValue string) (string, error) {
	if cookieValue == "" {
		return "", ErrMissing
	}
	return cookieValue, nil
}

// Cookie builds the session cookie for a newly issued id.
func Cookie(id string) http.Cookie {
	return http.Cookie{
		Name:   CookieName,
		Value:  id,
		Path:   CookiePath,
		MaxAge: int(MaxAge.Seconds()),
	}
}
