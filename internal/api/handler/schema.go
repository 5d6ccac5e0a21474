package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// cartLineRequest documents the cart line body for the API docs. Handlers
// decode into domain.CartLine so that extra client fields are kept.
type cartLineRequest struct {
	Product struct {
		Product struct {
			ID string `json:"id"`
		} `json:"product"`
		Quantity int `json:"quantity"`
	} `json:"product"`
}
