package availability

import "dentalcare/models"

// ComputeAvailability returns a copy of treatments where each slot list only
// keeps the slots not booked for date. Bookings are matched to treatments by
// exact name and to slots by exact label; bookings for other dates or for
// treatments missing from the catalog have no effect. The relative order of
// the remaining slots is preserved and the inputs are not modified.
func ComputeAvailability(date string, treatments []models.Treatment, bookings []models.Booking) []models.Treatment {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookings {
		if b.Date != date {
			continue
		}
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]models.Treatment, len(treatments))
	for i, t := range treatments {
		out[i] = t
		taken := booked[t.Name]
		free := make([]string, 0, len(t.Slots))
		for _, s := range t.Slots {
			if _, ok := taken[s]; ok {
				continue
			}
			free = append(free, s)
		}
		out[i].Slots = free
	}
	return out
}
