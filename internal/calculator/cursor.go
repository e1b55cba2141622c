package calculator

// DayCursor tracks the selected day of a trip's itinerary.
// It always points inside [1, Days]; moves that would leave the range are
// ignored. A trip with zero days has no valid position and Day reports 0.
type DayCursor struct {
	day  int
	days int
}

// NewDayCursor positions a cursor on day 1 of a trip lasting days days.
func NewDayCursor(days int) *DayCursor {
	c := &DayCursor{days: days}
	if days > 0 {
		c.day = 1
	}
	return c
}

// Day returns the selected day.
func (c *DayCursor) Day() int { return c.day }

// Days returns the number of days the cursor ranges over.
func (c *DayCursor) Days() int { return c.days }

// HasPrev reports whether Prev would move.
func (c *DayCursor) HasPrev() bool { return c.day > 1 }

// HasNext reports whether Next would move.
func (c *DayCursor) HasNext() bool { return c.day < c.days }

// Prev moves one day back and reports whether it moved.
func (c *DayCursor) Prev() bool {
	if !c.HasPrev() {
		return false
	}
	c.day--
	return true
}

// Next moves one day forward and reports whether it moved.
func (c *DayCursor) Next() bool {
	if !c.HasNext() {
		return false
	}
	c.day++
	return true
}

// Select jumps to day and reports whether it was within range.
func (c *DayCursor) Select(day int) bool {
	if day < 1 || day > c.days {
		return false
	}
	c.day = day
	return true
}
