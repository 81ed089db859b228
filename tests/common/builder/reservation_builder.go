//go:build unit || e2e

package builder

import (
	"time"

	"savor-sync/internal/domain/reservation"
	reqdto "savor-sync/internal/handler/dto/request"
)

type ReservationBuilder struct {
	ID              string
	StoreID         string
	StoreName       string
	StoreAddress    string
	Quantity        int
	OriginalPrice   float64
	DiscountedPrice *float64
	Status          reservation.Status
	PaymentType     string
	PickupTime      string
	CreatedAt       time.Time
	Name            string
	Email           string
	Phone           string
	UserID          string
	ClientRequestID string
	SyncState       reservation.SyncState
}

func NewReservationBuilder() *ReservationBuilder {
	discounted := 5.99
	return &ReservationBuilder{
		ID:              "r-1001",
		StoreID:         "store-1",
		StoreName:       "Boulangerie du Coin",
		StoreAddress:    "12 rue des Lilas",
		Quantity:        2,
		OriginalPrice:   11.50,
		DiscountedPrice: &discounted,
		Status:          reservation.StatusConfirmed,
		PaymentType:     reservation.DefaultPaymentType,
		PickupTime:      "18:00 - 19:00",
		CreatedAt:       time.Date(2025, 3, 14, 17, 0, 0, 0, time.UTC),
		Name:            "Camille Martin",
		Email:           "camille@example.com",
		Phone:           "+33 6 12 34 56 78",
		ClientRequestID: "8b4f9c1e-0b5a-4a8e-9d7c-2f1e3a4b5c6d",
		SyncState:       reservation.SyncConfirmed,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithID(id string) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithCreatedAt(t time.Time) *ReservationBuilder {
	b.CreatedAt = t
	return b
}

func (b *ReservationBuilder) WithClientRequestID(id string) *ReservationBuilder {
	b.ClientRequestID = id
	return b
}

// AsLocal marks the record as queued on the device.
func (b *ReservationBuilder) AsLocal(id string) *ReservationBuilder {
	b.ID = id
	b.Status = reservation.StatusPending
	b.SyncState = reservation.SyncPendingLocalOnly
	return b
}

func (b *ReservationBuilder) contact() reservation.ContactInfo {
	return reservation.ContactInfo{Name: b.Name, Email: b.Email, Phone: b.Phone}
}

func (b *ReservationBuilder) unitPrice() float64 {
	if b.DiscountedPrice != nil && *b.DiscountedPrice > 0 {
		return *b.DiscountedPrice
	}
	return b.OriginalPrice
}

// Build methods

func (b *ReservationBuilder) BuildDomain() reservation.Reservation {
	discounted := 0.0
	if b.DiscountedPrice != nil {
		discounted = *b.DiscountedPrice
	}
	unit, _ := reservation.NewMoneyFromAmount(b.unitPrice())
	return reservation.Reservation{
		ID:              b.ID,
		StoreID:         b.StoreID,
		StoreName:       b.StoreName,
		StoreAddress:    b.StoreAddress,
		Quantity:        b.Quantity,
		TotalAmount:     unit.Multiply(b.Quantity).Amount(),
		OriginalPrice:   b.OriginalPrice,
		DiscountedPrice: discounted,
		Status:          b.Status,
		PaymentType:     b.PaymentType,
		PickupTime:      b.PickupTime,
		CreatedAt:       b.CreatedAt,
		Contact:         b.contact(),
		UserID:          b.UserID,
		ClientRequestID: b.ClientRequestID,
		SyncState:       b.SyncState,
	}
}

func (b *ReservationBuilder) BuildCreateRequest() reservation.CreateRequest {
	return reservation.CreateRequest{
		StoreID:         b.StoreID,
		StoreName:       b.StoreName,
		StoreAddress:    b.StoreAddress,
		Quantity:        b.Quantity,
		OriginalPrice:   b.OriginalPrice,
		DiscountedPrice: b.DiscountedPrice,
		PaymentType:     b.PaymentType,
		PickupTime:      b.PickupTime,
		Contact:         b.contact(),
		ClientRequestID: b.ClientRequestID,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		StoreID:         b.StoreID,
		StoreName:       b.StoreName,
		StoreAddress:    b.StoreAddress,
		Quantity:        b.Quantity,
		OriginalPrice:   b.OriginalPrice,
		DiscountedPrice: b.DiscountedPrice,
		PaymentType:     b.PaymentType,
		PickupTime:      b.PickupTime,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		ClientRequestID: b.ClientRequestID,
	}
}
