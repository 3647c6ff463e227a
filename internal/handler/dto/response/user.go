package response

import "guidely/internal/usecase/queries"

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role" example:"learner"`
}

func FromContactView(v *queries.ContactView) (*UserResponse, error) {
	return fromView[UserResponse](v)
}
