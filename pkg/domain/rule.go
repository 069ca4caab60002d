package domain

import "time"

// Timestamps of a filesystem entry. A zero value means the filesystem does
// not expose that timestamp.
type Timestamps struct {
	Created  time.Time
	Modified time.Time
	Accessed time.Time
}

// Rule is a retention policy: an entry is deletable once every enabled
// timestamp is at least Age old.
type Rule struct {
	Age      time.Duration
	Created  bool
	Modified bool
	Accessed bool
}

func (r Rule) ShouldDelete(ts Timestamps) bool {
	return r.ShouldDeleteAt(ts, time.Now())
}

func (r Rule) ShouldDeleteAt(ts Timestamps, now time.Time) bool {
	if !(r.Created || r.Modified || r.Accessed) {
		return false
	}

	// Anything we can't check stays.
	if ts.Created.IsZero() && ts.Modified.IsZero() && ts.Accessed.IsZero() {
		return false
	}

	limit := now.Add(-r.Age)
	checked := false

	for _, c := range []struct {
		enabled bool
		t       time.Time
	}{
		{r.Created, ts.Created},
		{r.Modified, ts.Modified},
		{r.Accessed, ts.Accessed},
	} {
		if !c.enabled || c.t.IsZero() {
			continue
		}
		if c.t.After(limit) {
			return false
		}
		checked = true
	}

	return checked
}

func (r Rule) IsEnabled() bool {
	return r.Created || r.Modified || r.Accessed
}
