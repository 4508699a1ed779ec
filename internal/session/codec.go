package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Decode for cookies that fail verification
// or carry impossible counters.
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the signed cookie payload.
type Claims struct {
	Correct  int               `json:"correct"`
	Attempts int               `json:"attempts"`
	Answers  map[string]string `json:"answers,omitempty"`
	jwt.RegisteredClaims
}

// Codec converts a State to and from an HS256-signed token.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// NewCodec returns a codec signing with secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), now: time.Now}
}

// Encode signs s.
func (c *Codec) Encode(s State) (string, error) {
	claims := &Claims{
		Correct:  s.Correct,
		Attempts: s.Attempts,
		Answers:  s.Answers,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       s.ID,
			IssuedAt: jwt.NewNumericDate(c.now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// Decode verifies token and returns the State it carries.
func (c *Codec) Decode(token string) (State, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(c.now))
	if err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return State{}, ErrInvalidToken
	}
	if claims.Correct < 0 || claims.Attempts < 0 || claims.Correct > claims.Attempts {
		return State{}, fmt.Errorf("%w: counters out of range", ErrInvalidToken)
	}

	s := State{
		ID:       claims.ID,
		Correct:  claims.Correct,
		Attempts: claims.Attempts,
		Answers:  claims.Answers,
	}
	if s.Answers == nil {
		s.Answers = map[string]string{}
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return s, nil
}
