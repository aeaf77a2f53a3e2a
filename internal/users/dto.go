package users

import (
	"time"

	"github.com/davidcastanon/shopmart-backend/pkg/db/models"
)

// UserDTO is the transport shape that omits the stored credential.
type UserDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	ID       string
	Email    string
	Password *string
	Name     string
	Image    string
	Provider string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		Provider:  u.Provider,
		CreatedAt: u.CreatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	provider := c.Provider
	if provider == "" {
		provider = "credentials"
	}

	return &models.User{
		ID:       c.ID,
		Email:    c.Email,
		Password: c.Password,
		Name:     c.Name,
		Image:    c.Image,
		Provider: provider,
	}
}
