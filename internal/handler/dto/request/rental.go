package request

import (
	"strings"
	"time"

	"car-rental-core/internal/usecase/commands"
)

type SendConfirmationRequest struct {
	OfferID int64 `json:"offerId" binding:"required,gt=0"`
}

type ConfirmRentalRequest struct {
	Token string `json:"token" binding:"required"`
}

type AcceptReturnRequest struct {
	ReturnDate           time.Time `json:"returnDate" binding:"required"`
	ConditionDescription string    `json:"conditionDescription" binding:"required,max=2000"`
	PhotoURL             string    `json:"photoUrl" binding:"omitempty,url"`
}

func (r AcceptReturnRequest) ToCommand(rentalID, employeeID int64) commands.ProcessReturnRequest {
	return commands.ProcessReturnRequest{
		RentalID:             rentalID,
		ReturnDate:           r.ReturnDate,
		ConditionDescription: strings.TrimSpace(r.ConditionDescription),
		PhotoURL:             strings.TrimSpace(r.PhotoURL),
		ProcessedBy:          employeeID,
	}
}
