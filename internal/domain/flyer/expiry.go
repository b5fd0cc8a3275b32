package flyer

import "time"

// expiringSoonWindowDays is how many days before the expiry date a flyer is
// surfaced as expiring soon.
const expiringSoonWindowDays = 3

// DateOf truncates t to midnight of its calendar date in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// ClassifyExpiry derives the temporal status of a flyer from its expiry date
// and the current time. Pure and date-granular:
//   - Expired iff now's date is strictly after the expiry date
//   - ExpiringSoon iff not expired and the expiry date is within 3 days
//   - Active otherwise
func ClassifyExpiry(expiryDate, now time.Time, loc *time.Location) ExpiryStatus {
	today := DateOf(now, loc)
	expiry := DateOf(expiryDate, loc)

	if today.After(expiry) {
		return StatusExpired
	}
	if !expiry.After(today.AddDate(0, 0, expiringSoonWindowDays)) {
		return StatusExpiringSoon
	}
	return StatusActive
}
