package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the access token claims issued by the HR identity provider. The
// subject is the employee id.
type Claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`

	jwt.RegisteredClaims
}

// EmployeeID parses the subject claim.
func (c *Claims) EmployeeID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject %q: %w", c.Subject, err)
	}
	if id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("invalid subject: nil uuid")
	}
	return id, nil
}
