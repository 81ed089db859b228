package reservation

import (
	"strconv"
	"strings"
	"sync"

	"savor-sync/internal/pkg/clock"
)

const DefaultPaymentType = "pay at pickup"

// CreateRequest carries the creation fields submitted to the backend.
type CreateRequest struct {
	StoreID         string
	StoreName       string
	StoreImage      string
	StoreAddress    string
	StoreLatitude   *float64
	StoreLongitude  *float64
	Quantity        int
	OriginalPrice   float64
	DiscountedPrice *float64
	PaymentType     string
	PickupTime      string
	Contact         ContactInfo
	ClientRequestID string
}

// UnitPrice is the discounted price when one is set, otherwise the original price.
func (r CreateRequest) UnitPrice() float64 {
	if r.DiscountedPrice != nil && *r.DiscountedPrice > 0 {
		return *r.DiscountedPrice
	}
	return r.OriginalPrice
}

func (r CreateRequest) TotalAmount() (Money, error) {
	if r.Quantity < 1 {
		return Money{}, ErrInvalidQuantity
	}
	unit, err := NewMoneyFromAmount(r.UnitPrice())
	if err != nil {
		return Money{}, err
	}
	return unit.Multiply(r.Quantity), nil
}

func (r CreateRequest) Validate() error {
	if r.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if r.OriginalPrice < 0 || (r.DiscountedPrice != nil && *r.DiscountedPrice < 0) {
		return ErrNegativePrice
	}
	return r.Contact.Validate()
}

// Normalized trims contact fields and applies the default payment type.
func (r CreateRequest) Normalized() CreateRequest {
	r.Contact = r.Contact.Normalized()
	r.PaymentType = strings.TrimSpace(r.PaymentType)
	if r.PaymentType == "" {
		r.PaymentType = DefaultPaymentType
	}
	return r
}

// CreateRequestFrom rebuilds the request a local record was synthesized from.
func CreateRequestFrom(r Reservation) CreateRequest {
	req := CreateRequest{
		StoreID:         r.StoreID,
		StoreName:       r.StoreName,
		StoreImage:      r.StoreImage,
		StoreAddress:    r.StoreAddress,
		StoreLatitude:   r.StoreLatitude,
		StoreLongitude:  r.StoreLongitude,
		Quantity:        r.Quantity,
		OriginalPrice:   r.OriginalPrice,
		PaymentType:     r.PaymentType,
		PickupTime:      r.PickupTime,
		Contact:         r.Contact,
		ClientRequestID: r.ClientRequestID,
	}
	if r.DiscountedPrice > 0 {
		discounted := r.DiscountedPrice
		req.DiscountedPrice = &discounted
	}
	return req
}

// LocalIDGenerator issues local-namespace ids from a millisecond timestamp.
// Two ids issued within the same millisecond still differ.
type LocalIDGenerator struct {
	mu    sync.Mutex
	clock clock.Clock
	last  int64
}

func NewLocalIDGenerator(clk clock.Clock) *LocalIDGenerator {
	return &LocalIDGenerator{clock: clk}
}

func (g *LocalIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.clock.Now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return LocalIDPrefix + strconv.FormatInt(ms, 10)
}

type Factory struct {
	Clock clock.Clock
	IDs   *LocalIDGenerator
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{
		Clock: clk,
		IDs:   NewLocalIDGenerator(clk),
	}
}

// NewLocalReservation synthesizes the record kept on the device when the
// backend did not accept the write.
func (f *Factory) NewLocalReservation(req CreateRequest, userID string) (Reservation, error) {
	req = req.Normalized()
	total, err := req.TotalAmount()
	if err != nil {
		return Reservation{}, err
	}

	var discounted float64
	if req.DiscountedPrice != nil {
		discounted = *req.DiscountedPrice
	}

	return Reservation{
		ID:              f.IDs.Next(),
		StoreID:         req.StoreID,
		StoreName:       req.StoreName,
		StoreImage:      req.StoreImage,
		StoreAddress:    req.StoreAddress,
		StoreLatitude:   req.StoreLatitude,
		StoreLongitude:  req.StoreLongitude,
		Quantity:        req.Quantity,
		TotalAmount:     total.Amount(),
		OriginalPrice:   req.OriginalPrice,
		DiscountedPrice: discounted,
		Status:          StatusPending,
		PaymentType:     req.PaymentType,
		PickupTime:      req.PickupTime,
		CreatedAt:       f.Clock.Now().UTC(),
		Contact:         req.Contact,
		UserID:          userID,
		ClientRequestID: req.ClientRequestID,
		SyncState:       SyncPendingLocalOnly,
	}, nil
}
