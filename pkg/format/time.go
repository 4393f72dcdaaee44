// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateTime requires an RFC 3339 date-time,
// such as "1985-04-12T23:20:50.52Z".
func dateTime(s string) error {
	i := strings.IndexAny(s, "Tt")
	if i < 0 {
		return fmt.Errorf("%q is not a date-time: missing T separator", s)
	}
	if !validDate(s[:i]) {
		return fmt.Errorf("%q is not a date-time: invalid date", s)
	}
	if !validTime(s[i+1:]) {
		return fmt.Errorf("%q is not a date-time: invalid time", s)
	}
	return nil
}

// digits parses a fixed-width unsigned decimal field.
func digits(s string) (int, bool) {
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// validDate reports whether s is YYYY-MM-DD naming a real day.
func validDate(s string) bool {
	if len(s) != len("2006-01-02") || s[4] != '-' || s[7] != '-' {
		return false
	}
	y, ok1 := digits(s[:4])
	m, ok2 := digits(s[5:7])
	d, ok3 := digits(s[8:])
	if !ok1 || !ok2 || !ok3 || m < 1 || m > 12 || d < 1 {
		return false
	}
	// time.Date normalizes Feb 30 to Mar 2.
	_, nm, nd := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Date()
	return int(nm) == m && nd == d
}

// validTime reports whether s is HH:MM:SS[.frac] followed by
// "Z" or a numeric offset. A leap second is accepted only
// when it falls at 23:59:60 UTC.
func validTime(s string) bool {
	if len(s) < len("15:04:05Z") || s[2] != ':' || s[5] != ':' {
		return false
	}
	hh, ok1 := digits(s[:2])
	mm, ok2 := digits(s[3:5])
	ss, ok3 := digits(s[6:8])
	if !ok1 || !ok2 || !ok3 || hh > 23 || mm > 59 || ss > 60 {
		return false
	}

	rest := s[8:]
	if strings.HasPrefix(rest, ".") {
		n := 1
		for n < len(rest) && '0' <= rest[n] && rest[n] <= '9' {
			n++
		}
		if n == 1 {
			return false
		}
		rest = rest[n:]
	}

	var offset int // minutes east of UTC
	switch {
	case rest == "Z" || rest == "z":
	case len(rest) == len("+07:00") && (rest[0] == '+' || rest[0] == '-') && rest[3] == ':':
		oh, ok1 := digits(rest[1:3])
		om, ok2 := digits(rest[4:])
		if !ok1 || !ok2 || oh > 23 || om > 59 {
			return false
		}
		offset = oh*60 + om
		if rest[0] == '-' {
			offset = -offset
		}
	default:
		return false
	}

	if ss == 60 {
		utc := ((hh*60+mm-offset)%(24*60) + 24*60) % (24 * 60)
		return utc == 23*60+59
	}
	return true
}
