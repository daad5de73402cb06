package models

// Client represents a customer the organization bills.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (c Client) EntityID() string { return c.ID }

func (c Client) WithID(id string) Client {
	c.ID = id
	return c
}
