package billing

import (
	"fmt"
	"time"

	"kirana/utils"
)

// NewBillNumber builds a display identifier of the form
// <prefix>-<six time digits>-<three random digits>. The time digits are the
// low-order decimal digits of the current unix-millisecond clock, so bills
// issued back to back in one session stay distinguishable; the random suffix
// covers rapid successive calls. Not unique across restarts.
func NewBillNumber(prefix string) string {
	ts := time.Now().UnixMilli() % 1_000_000
	return fmt.Sprintf("%s-%06d-%s", prefix, ts, utils.GenerateRandomDigitString(3))
}
