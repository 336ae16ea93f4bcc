package http

import (
	"rescue/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON envelope for request failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for registering a new rescue order.
type CreateOrderRequest struct {
	ServiceID      string  `json:"serviceId"`
	CompanyID      string  `json:"companyId"`
	EstimatedPrice *string `json:"estimatedPrice,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

// CreateOrderResponse carries the identifier of the registered order.
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

// DispatchVehicleRequest is the payload for dispatching a rescue vehicle.
type DispatchVehicleRequest struct {
	VehicleID string `json:"vehicleId"`
}

// UpdatePriceRequest is the payload for setting the final price after
// inspection.
type UpdatePriceRequest struct {
	Price string `json:"price"`
	Notes string `json:"notes,omitempty"`
}

// AssignmentResponse describes the active dispatch assignment of an order.
type AssignmentResponse struct {
	ID           string  `json:"id"`
	VehicleID    string  `json:"vehicleId"`
	VehiclePlate string  `json:"vehiclePlate"`
	Status       string  `json:"status"`
	DispatchedAt string  `json:"dispatchedAt"`
	ArrivedAt    *string `json:"arrivedAt,omitempty"`
}

// OrderResponse describes an order with its pricing and dispatch state.
type OrderResponse struct {
	ID             string              `json:"id"`
	RequesterID    string              `json:"requesterId"`
	ServiceID      string              `json:"serviceId"`
	CompanyID      string              `json:"companyId"`
	Status         string              `json:"status"`
	EstimatedPrice *string             `json:"estimatedPrice,omitempty"`
	FinalPrice     *string             `json:"finalPrice,omitempty"`
	Notes          string              `json:"notes,omitempty"`
	CreatedAt      string              `json:"createdAt"`
	Assignment     *AssignmentResponse `json:"assignment,omitempty"`
}

// VehicleResponse describes a rescue vehicle with its availability.
type VehicleResponse struct {
	ID     string `json:"id"`
	Plate  string `json:"plate"`
	Status string `json:"status"`
}

// InvoiceResponse describes the invoice issued for an order.
type InvoiceResponse struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Amount   string `json:"amount"`
	IssuedAt string `json:"issuedAt"`
	DueDate  string `json:"dueDate"`
	Status   string `json:"status"`
}

// PresenceResponse lists the users currently online.
type PresenceResponse struct {
	Users []string `json:"users"`
}

func toOrderResponse(view queries.GetOrderQueryResponse) OrderResponse {
	response := OrderResponse{
		ID:             view.ID.String(),
		RequesterID:    view.RequesterID.String(),
		ServiceID:      view.ServiceID.String(),
		CompanyID:      view.CompanyID.String(),
		Status:         view.Status,
		EstimatedPrice: view.EstimatedPrice,
		FinalPrice:     view.FinalPrice,
		Notes:          view.Notes,
		CreatedAt:      view.CreatedAt.Format(timeFormat),
	}

	if view.Assignment != nil {
		assignment := AssignmentResponse{
			ID:           view.Assignment.ID.String(),
			VehicleID:    view.Assignment.VehicleID.String(),
			VehiclePlate: view.Assignment.VehiclePlate,
			Status:       view.Assignment.Status,
			DispatchedAt: view.Assignment.DispatchedAt.Format(timeFormat),
		}
		if view.Assignment.ArrivedAt != nil {
			arrivedAt := view.Assignment.ArrivedAt.Format(timeFormat)
			assignment.ArrivedAt = &arrivedAt
		}
		response.Assignment = &assignment
	}

	return response
}

func toVehicleResponses(views []queries.GetCompanyVehiclesQueryResponse) []VehicleResponse {
	responses := make([]VehicleResponse, len(views))
	for i, view := range views {
		responses[i] = VehicleResponse{
			ID:     view.ID.String(),
			Plate:  view.Plate,
			Status: view.Status,
		}
	}
	return responses
}

func toInvoiceResponse(view queries.GetOrderInvoiceQueryResponse) InvoiceResponse {
	return InvoiceResponse{
		ID:       view.ID.String(),
		Number:   view.Number,
		Amount:   view.Amount,
		IssuedAt: view.IssuedAt.Format(timeFormat),
		DueDate:  view.DueDate.Format(timeFormat),
		Status:   view.Status,
	}
}
