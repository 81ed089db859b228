package converter

import (
	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/domain/store"
	"savor-sync/internal/pkg/patch"

	"github.com/jinzhu/copier"
)

// Record is the reservation wire shape shared by backend responses and the
// device ledger. Contact fields exist under two historical names.
type Record struct {
	RawID           FlexString `json:"id,omitempty"`
	DocumentID      FlexString `json:"_id,omitempty"`
	RawStoreID      FlexString `json:"storeId,omitempty"`
	StoreName       string     `json:"storeName,omitempty"`
	StoreImage      string     `json:"storeImage,omitempty"`
	StoreAddress    string     `json:"storeAddress,omitempty"`
	StoreLatitude   *float64   `json:"storeLatitude,omitempty"`
	StoreLongitude  *float64   `json:"storeLongitude,omitempty"`
	Quantity        int        `json:"quantity"`
	TotalAmount     FlexNumber `json:"totalAmount"`
	OriginalPrice   FlexNumber `json:"originalPrice"`
	DiscountedPrice FlexNumber `json:"discountedPrice"`
	RawStatus       string     `json:"status"`
	PaymentType     string     `json:"paymentType,omitempty"`
	PickupTime      FlexString `json:"pickupTime,omitempty"`
	CreatedAtRaw    FlexString `json:"createdAt,omitempty"`
	Name            string     `json:"name,omitempty"`
	CustomerName    string     `json:"customerName,omitempty"`
	Email           string     `json:"email,omitempty"`
	CustomerEmail   string     `json:"customerEmail,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	PhoneNumber     string     `json:"phoneNumber,omitempty"`
	UserID          FlexString `json:"userId,omitempty"`
	ClientRequestID string     `json:"clientRequestId,omitempty"`
	RawSyncState    string     `json:"syncState,omitempty"`
}

func (r Record) ID() string {
	return patch.FirstNonEmpty(r.RawID.String(), r.DocumentID.String())
}

// RecordToDomain normalizes both naming conventions into one Reservation.
// A record with no sync tag is confirmed unless its id is in the local namespace.
func RecordToDomain(rec Record) (reservation.Reservation, error) {
	var r reservation.Reservation
	if err := copier.Copy(&r, &rec); err != nil {
		return reservation.Reservation{}, err
	}

	r.ID = rec.ID()
	r.StoreID = rec.RawStoreID.String()
	r.TotalAmount = float64(rec.TotalAmount)
	r.OriginalPrice = float64(rec.OriginalPrice)
	r.DiscountedPrice = float64(rec.DiscountedPrice)
	r.Status = reservation.NormalizeStatus(rec.RawStatus)
	r.PickupTime = rec.PickupTime.String()
	r.CreatedAt = ParseTimestamp(rec.CreatedAtRaw.String())
	r.UserID = rec.UserID.String()
	r.Contact = reservation.ContactInfo{
		Name:  patch.FirstNonEmpty(rec.Name, rec.CustomerName),
		Email: patch.FirstNonEmpty(rec.Email, rec.CustomerEmail),
		Phone: patch.FirstNonEmpty(rec.Phone, rec.PhoneNumber),
	}.Normalized()

	switch reservation.SyncState(rec.RawSyncState) {
	case reservation.SyncPendingLocalOnly:
		r.SyncState = reservation.SyncPendingLocalOnly
	case reservation.SyncConfirmed:
		r.SyncState = reservation.SyncConfirmed
	case reservation.SyncDeleted:
		r.SyncState = reservation.SyncDeleted
	default:
		if reservation.IsLocalID(r.ID) {
			r.SyncState = reservation.SyncPendingLocalOnly
		} else {
			r.SyncState = reservation.SyncConfirmed
		}
	}
	return r, nil
}

func RecordsToDomain(recs []Record) ([]reservation.Reservation, error) {
	out := make([]reservation.Reservation, 0, len(recs))
	for _, rec := range recs {
		r, err := RecordToDomain(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// DomainToRecord writes the canonical field names only.
func DomainToRecord(r reservation.Reservation) Record {
	return Record{
		RawID:           FlexString(r.ID),
		RawStoreID:      FlexString(r.StoreID),
		StoreName:       r.StoreName,
		StoreImage:      r.StoreImage,
		StoreAddress:    r.StoreAddress,
		StoreLatitude:   r.StoreLatitude,
		StoreLongitude:  r.StoreLongitude,
		Quantity:        r.Quantity,
		TotalAmount:     FlexNumber(r.TotalAmount),
		OriginalPrice:   FlexNumber(r.OriginalPrice),
		DiscountedPrice: FlexNumber(r.DiscountedPrice),
		RawStatus:       r.Status.String(),
		PaymentType:     r.PaymentType,
		PickupTime:      FlexString(r.PickupTime),
		CreatedAtRaw:    FlexString(FormatTimestamp(r.CreatedAt)),
		Name:            r.Contact.Name,
		Email:           r.Contact.Email,
		Phone:           r.Contact.Phone,
		UserID:          FlexString(r.UserID),
		ClientRequestID: r.ClientRequestID,
		RawSyncState:    r.SyncState.String(),
	}
}

func DomainsToRecords(rs []reservation.Reservation) []Record {
	out := make([]Record, 0, len(rs))
	for _, r := range rs {
		out = append(out, DomainToRecord(r))
	}
	return out
}

// CreatePayload is the POST /reservations body.
type CreatePayload struct {
	StoreID         string   `json:"storeId"`
	StoreName       string   `json:"storeName,omitempty"`
	StoreImage      string   `json:"storeImage,omitempty"`
	StoreAddress    string   `json:"storeAddress,omitempty"`
	StoreLatitude   *float64 `json:"storeLatitude,omitempty"`
	StoreLongitude  *float64 `json:"storeLongitude,omitempty"`
	Quantity        int      `json:"quantity"`
	TotalAmount     float64  `json:"totalAmount"`
	OriginalPrice   float64  `json:"originalPrice"`
	DiscountedPrice float64  `json:"discountedPrice"`
	PaymentType     string   `json:"paymentType"`
	PickupTime      string   `json:"pickupTime,omitempty"`
	CustomerName    string   `json:"customerName"`
	CustomerEmail   string   `json:"customerEmail,omitempty"`
	PhoneNumber     string   `json:"phoneNumber"`
	ClientRequestID string   `json:"clientRequestId,omitempty"`
}

func CreatePayloadFrom(req reservation.CreateRequest) (CreatePayload, error) {
	total, err := req.TotalAmount()
	if err != nil {
		return CreatePayload{}, err
	}
	var p CreatePayload
	if err := copier.Copy(&p, &req); err != nil {
		return CreatePayload{}, err
	}
	p.TotalAmount = total.Amount()
	p.DiscountedPrice = req.UnitPrice()
	p.CustomerName = req.Contact.Name
	p.CustomerEmail = req.Contact.Email
	p.PhoneNumber = req.Contact.Phone
	return p, nil
}

type StatusPayload struct {
	Status string `json:"status"`
}

// StoreRecord is the my-store response body.
type StoreRecord struct {
	RawID      FlexString `json:"id"`
	DocumentID FlexString `json:"_id"`
	Name       string     `json:"name"`
	StoreName  string     `json:"storeName"`
	Address    string     `json:"address"`
	ImageURL   string     `json:"imageUrl"`
	Image      string     `json:"image"`
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
}

func StoreRecordToDomain(rec StoreRecord) store.Info {
	return store.Info{
		ID:        patch.FirstNonEmpty(rec.RawID.String(), rec.DocumentID.String()),
		Name:      patch.FirstNonEmpty(rec.Name, rec.StoreName),
		Address:   rec.Address,
		ImageURL:  patch.FirstNonEmpty(rec.ImageURL, rec.Image),
		Latitude:  rec.Latitude,
		Longitude: rec.Longitude,
	}
}
