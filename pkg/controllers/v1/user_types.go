package v1

import (
	"fmt"

	"github.com/ecoechos/backend/pkg/auth"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type UserCreate struct {
	Username string `json:"username" example:"greenhouse"`    // Name used to log in, 3 to 64 characters without whitespace
	Password string `json:"password" example:"s3cret-garden"` // At least 8 characters
}

// UserEditable contains the fields that can be updated. Omitted fields
// are left unchanged.
type UserEditable struct {
	Username *string `json:"username" example:"bluehouse"`
	Password *string `json:"password" example:"an0ther-s3cret"`
}

type UserLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/users/5f2a9a3e-7d53-4f1a-9a0f-3a7c2c1e8b11"`                  // The user itself
	Days   string `json:"days" example:"https://example.com/api/v1/users/5f2a9a3e-7d53-4f1a-9a0f-3a7c2c1e8b11/days/YYYY-MM-DD"`  // URL template of the daily records
	Months string `json:"months" example:"https://example.com/api/v1/users/5f2a9a3e-7d53-4f1a-9a0f-3a7c2c1e8b11/months/YYYY-MM"` // URL template of the monthly summaries
}

// User is the API v1 representation of a user.
type User struct {
	models.User
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/users/%s", url, model.ID)

	return User{
		User: model,
		Links: UserLinks{
			Self:   self,
			Days:   self + "/days/YYYY-MM-DD",
			Months: self + "/months/YYYY-MM",
		},
	}
}

type UserResponse struct {
	Data User `json:"data"` // Data for the user
}

type Credentials struct {
	Username string `json:"username" example:"greenhouse"`
	Password string `json:"password" example:"s3cret-garden"`
}

type Login struct {
	Token auth.Token `json:"token"` // Access token to send as bearer token
	User  User       `json:"user"`  // The authenticated user
}

type LoginResponse struct {
	Data Login `json:"data"`
}
