package utils

import (
	"fmt"
	"strings"
)

const (
	sizeUnitStep        = 1024
	zeroSizeLabel       = "0b"
	plainBytesFormat    = "%db"
	singleDecimalFormat = "%.1f"
	wholeNumberFormat   = "%.0f%s"
	droppedDecimalZero  = ".0"
)

var sizeUnitSuffixes = []string{"b", "kb", "mb", "gb", "tb", "pb"}

// FormatFileSize renders a byte count with a lower-case unit suffix. Scaled
// values below ten keep one decimal place, with a trailing ".0" dropped.
func FormatFileSize(sizeInBytes int64) string {
	if sizeInBytes < 0 {
		return zeroSizeLabel
	}

	scaledValue := float64(sizeInBytes)
	suffixIndex := 0
	for scaledValue >= sizeUnitStep && suffixIndex < len(sizeUnitSuffixes)-1 {
		scaledValue /= sizeUnitStep
		suffixIndex++
	}

	if suffixIndex == 0 {
		return fmt.Sprintf(plainBytesFormat, sizeInBytes)
	}
	if scaledValue < 10 {
		formattedValue := strings.TrimSuffix(fmt.Sprintf(singleDecimalFormat, scaledValue), droppedDecimalZero)
		return formattedValue + sizeUnitSuffixes[suffixIndex]
	}
	return fmt.Sprintf(wholeNumberFormat, scaledValue, sizeUnitSuffixes[suffixIndex])
}
