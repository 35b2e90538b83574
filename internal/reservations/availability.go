package reservations

// Candidate slots offered for booking, in the order the site presents
// them.
var (
	LunchSlots  = []string{"12:00", "12:30", "13:00", "13:30", "14:00"}
	DinnerSlots = []string{"19:00", "19:30", "20:00", "20:30", "21:00", "21:30"}
)

// SlotCapacity is the advisory per-slot cap consulted when deriving
// available times. It is not enforced at creation time.
const SlotCapacity = 10

type Availability struct {
	Lunch  []string `json:"lunch"`
	Dinner []string `json:"dinner"`
}

// AvailableSlots derives the bookable lunch and dinner times from one
// day's reservations. A slot stays open while its occupancy is
// strictly below SlotCapacity. Times outside the candidate lists are
// counted but match no slot, so they never close anything.
func AvailableSlots(reservations []*Reservation) Availability {
	occupancy := make(map[string]int, len(reservations))
	for _, r := range reservations {
		occupancy[r.Time]++
	}

	return Availability{
		Lunch:  openSlots(LunchSlots, occupancy),
		Dinner: openSlots(DinnerSlots, occupancy),
	}
}

func openSlots(slots []string, occupancy map[string]int) []string {
	open := make([]string, 0, len(slots))
	for _, slot := range slots {
		if occupancy[slot] < SlotCapacity {
			open = append(open, slot)
		}
	}
	return open
}
