package domain

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type Client struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (c Client) EntityID() int64 {
	return c.ID
}

// ClientWithPets is a derived view, never stored or persisted.
type ClientWithPets struct {
	Client
	Pets []Pet `json:"pets"`
}
