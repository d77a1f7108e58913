package request

// ClientRequest creates or updates a client record. Active defaults to true
// on creation; updates take the submitted value.
type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Active  *bool  `json:"active"`
}
