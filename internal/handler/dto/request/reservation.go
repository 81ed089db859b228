package request

import (
	"strings"

	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/pkg/patch"
)

type CreateReservationRequest struct {
	StoreID         string   `json:"storeId" binding:"required"`
	StoreName       string   `json:"storeName"`
	StoreImage      string   `json:"storeImage"`
	StoreAddress    string   `json:"storeAddress"`
	StoreLatitude   *float64 `json:"storeLatitude,omitempty"`
	StoreLongitude  *float64 `json:"storeLongitude,omitempty"`
	Quantity        int      `json:"quantity" binding:"required,min=1"`
	OriginalPrice   float64  `json:"originalPrice" binding:"min=0"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
	PaymentType     string   `json:"paymentType"`
	PickupTime      string   `json:"pickupTime"`
	Name            string   `json:"name"`
	CustomerName    string   `json:"customerName"`
	Email           string   `json:"email"`
	CustomerEmail   string   `json:"customerEmail"`
	Phone           string   `json:"phone"`
	PhoneNumber     string   `json:"phoneNumber"`
	ClientRequestID string   `json:"clientRequestId"`
}

// ToDomain accepts both the short and customer-prefixed contact field names.
// A non-empty idempotencyKey overrides the body's clientRequestId.
func (r CreateReservationRequest) ToDomain(idempotencyKey string) reservation.CreateRequest {
	return reservation.CreateRequest{
		StoreID:         strings.TrimSpace(r.StoreID),
		StoreName:       r.StoreName,
		StoreImage:      r.StoreImage,
		StoreAddress:    r.StoreAddress,
		StoreLatitude:   r.StoreLatitude,
		StoreLongitude:  r.StoreLongitude,
		Quantity:        r.Quantity,
		OriginalPrice:   r.OriginalPrice,
		DiscountedPrice: r.DiscountedPrice,
		PaymentType:     r.PaymentType,
		PickupTime:      r.PickupTime,
		Contact: reservation.ContactInfo{
			Name:  patch.FirstNonEmpty(r.Name, r.CustomerName),
			Email: patch.FirstNonEmpty(r.Email, r.CustomerEmail),
			Phone: patch.FirstNonEmpty(r.Phone, r.PhoneNumber),
		},
		ClientRequestID: patch.FirstNonEmpty(strings.TrimSpace(idempotencyKey), strings.TrimSpace(r.ClientRequestID)),
	}
}

type UpdateStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	CurrentStatus string `json:"currentStatus" binding:"required"`
}

func (r UpdateStatusRequest) ToDomain() (from, to reservation.Status) {
	return reservation.NormalizeStatus(r.CurrentStatus), reservation.NormalizeStatus(r.Status)
}
