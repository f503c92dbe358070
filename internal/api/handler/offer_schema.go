package handler

type createOfferRequest struct {
	NeedID   string  `json:"needId"`
	Amount   float64 `json:"amount"`
	Message  string  `json:"message"`
	Currency string  `json:"currency"`
}

type respondOfferRequest struct {
	Action string `json:"action"`
	Status string `json:"status"`
}
