package domain

import (
	"errors"
	"time"
)

const NeedStatusPosted = "POSTED"

var ErrNeedNotFound = errors.New("need not found")
var ErrNeedFieldsRequired = errors.New("title and description are required")

// Category groups needs by trade (plumbing, electrics, ...).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// City locates a need geographically.
type City struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	State     string  `json:"state,omitempty"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Need is a client's posted service request. Category and city always
// reference existing records: unknown ids are substituted by the fallback
// resolution policy at creation time.
type Need struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	BudgetAmount   *float64   `json:"budgetAmount"`
	BudgetCurrency string     `json:"budgetCurrency"`
	CategoryID     string     `json:"categoryId"`
	CityID         string     `json:"cityId"`
	ClientID       string     `json:"clientId"`
	Status         string     `json:"status"`
	TimeEarliest   time.Time  `json:"timeEarliest"`
	TimeLatest     *time.Time `json:"timeLatest"`
	CreatedAt      time.Time  `json:"createdAt"`
}
