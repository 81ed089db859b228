package reservation

import "sort"

// Merge concatenates remote then local and keeps the first record per id, so a
// remote copy always shadows a local one. A local-only record is also retired
// once a confirmed record carrying the same client request id is present.
// Ids with a local tombstone are dropped from both sources.
func Merge(remote, local []Reservation) []Reservation {
	deleted := make(map[string]struct{})
	for _, r := range local {
		if r.IsTombstone() && r.ID != "" {
			deleted[r.ID] = struct{}{}
		}
	}

	all := make([]Reservation, 0, len(remote)+len(local))
	all = append(all, remote...)
	all = append(all, local...)

	seen := make(map[string]struct{}, len(all))
	deduped := make([]Reservation, 0, len(all))
	for _, r := range all {
		if r.IsTombstone() {
			continue
		}
		if _, gone := deleted[r.ID]; gone {
			continue
		}
		if r.ID != "" {
			if _, dup := seen[r.ID]; dup {
				continue
			}
			seen[r.ID] = struct{}{}
		}
		deduped = append(deduped, r)
	}

	confirmedRequests := make(map[string]struct{})
	for _, r := range deduped {
		if r.ClientRequestID != "" && !r.IsLocalOnly() {
			confirmedRequests[r.ClientRequestID] = struct{}{}
		}
	}
	if len(confirmedRequests) == 0 {
		return deduped
	}

	merged := deduped[:0]
	for _, r := range deduped {
		if r.IsLocalOnly() && r.ClientRequestID != "" {
			if _, synced := confirmedRequests[r.ClientRequestID]; synced {
				continue
			}
		}
		merged = append(merged, r)
	}
	return merged
}

// PendingLocalOnly returns the records that still exist only on this device.
func PendingLocalOnly(records []Reservation) []Reservation {
	pending := make([]Reservation, 0)
	for _, r := range records {
		if r.IsLocalOnly() {
			pending = append(pending, r)
		}
	}
	return pending
}

func SortByCreatedAtDesc(records []Reservation) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}

// Group splits records into current and past, each newest first. Both
// slices are non-nil.
func Group(records []Reservation) (current, past []Reservation) {
	current = make([]Reservation, 0)
	past = make([]Reservation, 0)
	for _, r := range records {
		if r.IsCurrent() {
			current = append(current, r)
		} else {
			past = append(past, r)
		}
	}
	SortByCreatedAtDesc(current)
	SortByCreatedAtDesc(past)
	return current, past
}
