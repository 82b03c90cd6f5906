package booking

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const referenceDateFormat = "20060102"

var referencePattern = regexp.MustCompile(`^HAV-(\d{8})-(\d{4})$`)

// Reference is the human-readable booking identifier shown to guests,
// distinct from the internal UUID. Format: HAV-YYYYMMDD-NNNN where the date
// is the creation date and NNNN a random 4-digit suffix. The format alone
// guarantees nothing about uniqueness; the store enforces a unique index.
type Reference struct {
	date   time.Time
	suffix int
}

func NewReference(now time.Time) Reference {
	return Reference{
		date:   ToCalendarDate(now),
		suffix: randomSuffix(),
	}
}

func ParseReference(s string) (Reference, error) {
	m := referencePattern.FindStringSubmatch(s)
	if m == nil {
		return Reference{}, ErrInvalidReference
	}
	date, err := time.ParseInLocation(referenceDateFormat, m[1], time.UTC)
	if err != nil {
		return Reference{}, ErrInvalidReference
	}
	suffix, err := strconv.Atoi(m[2])
	if err != nil {
		return Reference{}, ErrInvalidReference
	}
	return Reference{date: date, suffix: suffix}, nil
}

func (r Reference) String() string {
	return fmt.Sprintf("HAV-%s-%04d", r.date.Format(referenceDateFormat), r.suffix)
}

func (r Reference) Date() time.Time {
	return r.date
}

func (r Reference) Sequence() int {
	return r.suffix
}

func (r Reference) IsZero() bool {
	return r.date.IsZero()
}

func randomSuffix() int {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return int(time.Now().UnixNano() % 10000)
	}
	return int(binary.BigEndian.Uint32(buf[:]) % 10000)
}
