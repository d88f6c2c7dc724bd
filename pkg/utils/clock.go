package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clock12Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)

// To24Hour "2:30 PM" biçimindeki saati "14:30" olarak çevirir.
// 12 AM gece yarısıdır (00), 12 PM öğlendir. Kalıba uymayan ya da
// saat 1-12 aralığı dışındaki girdiler kısmi ayrıştırma yapılmadan reddedilir.
func To24Hour(value string) (string, error) {
	m := clock12Pattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return "", fmt.Errorf("invalid time format: %q", value)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if hours < 1 || hours > 12 || minutes > 59 {
		return "", fmt.Errorf("invalid time format: %q", value)
	}

	period := strings.ToUpper(m[3])
	if period == "PM" && hours < 12 {
		hours += 12
	}
	if period == "AM" && hours == 12 {
		hours = 0
	}

	return fmt.Sprintf("%02d:%s", hours, m[2]), nil
}
