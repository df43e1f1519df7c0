package model

const (
	EntityName = "guest"
)

// Guest is the user-service record the back office reads for labeling
// and the guest directory screens.
type Guest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Phone       string `json:"phone,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}
