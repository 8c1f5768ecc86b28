package domain

// BookingStatus categorizes the outcome of a booking commit.
type BookingStatus int

const (
	// BookingConfirmed means the calendar event was created.
	BookingConfirmed BookingStatus = iota
	// BookingAuthRequired means calendar authorization was denied or revoked.
	BookingAuthRequired
	// BookingSlotTaken means the availability check found a conflict.
	BookingSlotTaken
	// BookingFailed means event creation failed (API or network error).
	BookingFailed
)

// BookingResult is the user-facing outcome of submitting a draft to the
// calendar gateway. Message is always safe to show verbatim.
type BookingResult struct {
	Status  BookingStatus
	Message string
}

// Success reports whether the booking was committed.
func (r BookingResult) Success() bool {
	return r.Status == BookingConfirmed
}
