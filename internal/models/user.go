package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

// User represents an account in the system
type User struct {
	ID              int64     `json:"id" db:"id"`
	Email           string    `json:"email" db:"email"`
	Name            string    `json:"name" db:"nombre"`
	Phone           *string   `json:"phone,omitempty" db:"telefono"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty" db:"imagen_perfil"`
	CreatedAt       time.Time `json:"created_at" db:"fecha_creacion"`
}

// NewUser builds a user and enforces the required fields. Email and name are
// mandatory; phone and profile image are optional.
func NewUser(email, name string, phone, profileImageURL *string) (*User, error) {
	var result *multierror.Error

	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	if email == "" {
		result = multierror.Append(result, fmt.Errorf("email is required"))
	}
	if name == "" {
		result = multierror.Append(result, fmt.Errorf("name is required"))
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &User{
		Email:           email,
		Name:            name,
		Phone:           phone,
		ProfileImageURL: profileImageURL,
	}, nil
}
