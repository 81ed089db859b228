package response

import (
	"time"

	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/usecase/commands"
	"savor-sync/internal/usecase/queries"
)

type BadgeResponse struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type ReservationResponse struct {
	ID              string        `json:"id"`
	StoreID         string        `json:"storeId"`
	StoreName       string        `json:"storeName"`
	StoreImage      string        `json:"storeImage,omitempty"`
	StoreAddress    string        `json:"storeAddress,omitempty"`
	StoreLatitude   *float64      `json:"storeLatitude,omitempty"`
	StoreLongitude  *float64      `json:"storeLongitude,omitempty"`
	Quantity        int           `json:"quantity"`
	TotalAmount     float64       `json:"totalAmount"`
	OriginalPrice   float64       `json:"originalPrice"`
	DiscountedPrice float64       `json:"discountedPrice"`
	Status          string        `json:"status"`
	StatusBadge     BadgeResponse `json:"statusBadge"`
	OwnerStatus     string        `json:"ownerStatus"`
	PaymentType     string        `json:"paymentType"`
	PickupTime      string        `json:"pickupTime,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	CustomerName    string        `json:"customerName,omitempty"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	PhoneNumber     string        `json:"phoneNumber,omitempty"`
	UserID          string        `json:"userId,omitempty"`
	ClientRequestID string        `json:"clientRequestId,omitempty"`
	SyncState       string        `json:"syncState"`
	IsLocalOnly     bool          `json:"isLocalOnly"`
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Count        int                    `json:"count"`
}

type GroupedReservationsResponse struct {
	CurrentReservations []*ReservationResponse `json:"currentReservations"`
	PastReservations    []*ReservationResponse `json:"pastReservations"`
	CurrentCount        int                    `json:"currentCount"`
	PastCount           int                    `json:"pastCount"`
}

type ResyncResponse struct {
	Attempted int                    `json:"attempted"`
	Synced    []*ReservationResponse `json:"synced"`
	Remaining []*ReservationResponse `json:"remaining"`
}

func FromReservation(r reservation.Reservation, locale string) *ReservationResponse {
	badge := r.Status.Display(locale)
	return &ReservationResponse{
		ID:              r.ID,
		StoreID:         r.StoreID,
		StoreName:       r.StoreName,
		StoreImage:      r.StoreImage,
		StoreAddress:    r.StoreAddress,
		StoreLatitude:   r.StoreLatitude,
		StoreLongitude:  r.StoreLongitude,
		Quantity:        r.Quantity,
		TotalAmount:     r.TotalAmount,
		OriginalPrice:   r.OriginalPrice,
		DiscountedPrice: r.DiscountedPrice,
		Status:          r.Status.String(),
		StatusBadge:     BadgeResponse{Label: badge.Label, Color: badge.Color},
		OwnerStatus:     string(r.Status.OwnerView()),
		PaymentType:     r.PaymentType,
		PickupTime:      r.PickupTime,
		CreatedAt:       r.CreatedAt,
		CustomerName:    r.Contact.Name,
		CustomerEmail:   r.Contact.Email,
		PhoneNumber:     r.Contact.Phone,
		UserID:          r.UserID,
		ClientRequestID: r.ClientRequestID,
		SyncState:       r.SyncState.String(),
		IsLocalOnly:     r.IsLocalOnly(),
	}
}

// FromReservations never returns nil so the JSON is always an array.
func FromReservations(records []reservation.Reservation, locale string) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromReservation(r, locale))
	}
	return out
}

func FromReservationList(records []reservation.Reservation, locale string) *ReservationListResponse {
	return &ReservationListResponse{
		Reservations: FromReservations(records, locale),
		Count:        len(records),
	}
}

func FromGroupedView(v *queries.GroupedView, locale string) *GroupedReservationsResponse {
	return &GroupedReservationsResponse{
		CurrentReservations: FromReservations(v.Current, locale),
		PastReservations:    FromReservations(v.Past, locale),
		CurrentCount:        v.CurrentCount,
		PastCount:           v.PastCount,
	}
}

func FromResyncResult(res *commands.ResyncResult, locale string) *ResyncResponse {
	return &ResyncResponse{
		Attempted: res.Attempted,
		Synced:    FromReservations(res.Synced, locale),
		Remaining: FromReservations(res.Remaining, locale),
	}
}
