package handler

import (
	"time"

	"github.com/pllumaj/results/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createNeedRequest struct {
	Title          string     `json:"title"          validate:"required"`
	Description    string     `json:"description"    validate:"required"`
	BudgetAmount   *float64   `json:"budgetAmount"`
	BudgetCurrency string     `json:"budgetCurrency"`
	CategoryID     string     `json:"categoryId"`
	CityID         string     `json:"cityId"`
	TimeEarliest   *time.Time `json:"timeEarliest"`
	TimeLatest     *time.Time `json:"timeLatest"`
}

// clientRef is the nested client view on the public need listing.
type clientRef struct {
	Email string `json:"email"`
}

type needListItem struct {
	domain.Need
	Client clientRef `json:"client"`
}
