package response

import (
	"time"

	"car-rental-core/internal/pkg/confirmtoken"
	"car-rental-core/internal/usecase/queries"
)

type RentalResponse struct {
	ID         int64     `json:"id"`
	OfferID    int64     `json:"offerId"`
	Status     string    `json:"status"`
	CarID      int64     `json:"carId"`
	CarName    string    `json:"carName"`
	CustomerID int64     `json:"customerId"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	TotalPrice string    `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

type RentalListResponse struct {
	Items []*RentalResponse `json:"items"`
	Next  string            `json:"next,omitempty"`
}

type ReturnResponse struct {
	ID                   int64     `json:"id"`
	RentalID             int64     `json:"rentalId"`
	ReturnDate           time.Time `json:"returnDate"`
	ConditionDescription string    `json:"conditionDescription"`
	PhotoURL             string    `json:"photoUrl,omitempty"`
	ProcessedBy          int64     `json:"processedBy"`
	CreatedAt            time.Time `json:"createdAt"`
}

type SendConfirmationResponse struct {
	OfferID   int64     `json:"offerId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type TokenValidationResponse struct {
	Valid      bool      `json:"valid"`
	OfferID    int64     `json:"offerId"`
	CustomerID int64     `json:"customerId"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

func FromRentalView(v *queries.RentalView) (*RentalResponse, error) {
	var res RentalResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromRentalList(items []*queries.RentalView, next *queries.Cursor) (*RentalListResponse, error) {
	res := &RentalListResponse{Items: make([]*RentalResponse, 0, len(items))}
	for _, v := range items {
		item, err := FromRentalView(v)
		if err != nil {
			return nil, err
		}
		res.Items = append(res.Items, item)
	}
	if next != nil {
		res.Next = next.After
	}
	return res, nil
}

func FromReturnView(v *queries.ReturnView) (*ReturnResponse, error) {
	var res ReturnResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromTokenClaims(c confirmtoken.Claims) *TokenValidationResponse {
	return &TokenValidationResponse{
		Valid:      true,
		OfferID:    c.OfferID,
		CustomerID: c.CustomerID,
		ExpiresAt:  c.ExpiresAt,
	}
}
