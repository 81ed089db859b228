package gateway

import (
	"bytes"
	"encoding/json"

	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/infra/converter"
	"savor-sync/internal/pkg/errs"
	"savor-sync/internal/usecase/shared"
)

var (
	errUnknownListShape = errs.New("unrecognized reservation list shape")
	errMissingID        = errs.New("reservation record has no id")
)

const (
	keyCurrent      = "currentReservations"
	keyPast         = "pastReservations"
	keyCurrentCount = "currentCount"
	keyPastCount    = "pastCount"
	keyReservations = "reservations"
	keyData         = "data"
	keyReservation  = "reservation"
)

// DecodeList normalizes the three list shapes the backend has answered with:
// a partitioned object, a flat array, and a {reservations: [...]} wrapper.
// Missing or null arrays are empty.
func DecodeList(body []byte) (shared.RemoteReservations, error) {
	trimmed := bytes.TrimSpace(body)
	out := shared.EmptyRemote()
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out, nil
	}

	switch trimmed[0] {
	case '[':
		flat, err := decodeRecords(trimmed)
		if err != nil {
			return shared.RemoteReservations{}, err
		}
		out.Flat = flat
		return out, nil
	case '{':
	default:
		return shared.RemoteReservations{}, errUnknownListShape
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return shared.RemoteReservations{}, err
	}

	_, hasCurrent := fields[keyCurrent]
	_, hasPast := fields[keyPast]
	if hasCurrent || hasPast {
		current, err := decodeRecords(fields[keyCurrent])
		if err != nil {
			return shared.RemoteReservations{}, err
		}
		past, err := decodeRecords(fields[keyPast])
		if err != nil {
			return shared.RemoteReservations{}, err
		}
		out.Shape = shared.ListShapePartitioned
		out.Current = current
		out.Past = past
		out.CurrentCount = decodeCount(fields[keyCurrentCount], len(current))
		out.PastCount = decodeCount(fields[keyPastCount], len(past))
		return out, nil
	}

	for _, key := range []string{keyReservations, keyData} {
		if raw, ok := fields[key]; ok {
			flat, err := decodeRecords(raw)
			if err != nil {
				return shared.RemoteReservations{}, err
			}
			out.Shape = shared.ListShapeWrapped
			out.Flat = flat
			return out, nil
		}
	}
	return shared.RemoteReservations{}, errUnknownListShape
}

func decodeRecords(raw json.RawMessage) ([]reservation.Reservation, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []reservation.Reservation{}, nil
	}
	var recs []converter.Record
	if err := json.Unmarshal(trimmed, &recs); err != nil {
		return nil, err
	}
	return converter.RecordsToDomain(recs)
}

func decodeCount(raw json.RawMessage, fallback int) int {
	var n *int
	if len(raw) == 0 || json.Unmarshal(raw, &n) != nil || n == nil {
		return fallback
	}
	return *n
}

// DecodeReservation accepts a bare record or one wrapped under
// "reservation" or "data".
func DecodeReservation(body []byte) (reservation.Reservation, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return reservation.Reservation{}, errUnknownListShape
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return reservation.Reservation{}, err
	}
	payload := trimmed
	for _, key := range []string{keyReservation, keyData} {
		if raw, ok := fields[key]; ok && len(bytes.TrimSpace(raw)) > 0 && bytes.TrimSpace(raw)[0] == '{' {
			payload = raw
			break
		}
	}

	var rec converter.Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return reservation.Reservation{}, err
	}
	if rec.ID() == "" {
		return reservation.Reservation{}, errMissingID
	}
	r, err := converter.RecordToDomain(rec)
	if err != nil {
		return reservation.Reservation{}, err
	}
	return r.Confirmed(), nil
}
