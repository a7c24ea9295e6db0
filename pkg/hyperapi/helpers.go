package hyperapi

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// InfBps is returned by BpsDiff when the reference price is too close to
// zero for the ratio to mean anything.
const InfBps = uint16(math.MaxUint16)

const epsilon = 1e-9

// UUIDToHexString renders the uuid as a 0x-prefixed 32-digit hex string,
// the format the exchange uses for client order ids.
func UUIDToHexString(id uuid.UUID) string {
	return "0x" + strings.ReplaceAll(id.String(), "-", "")
}

// NewClientOrderID generates a random client order id.
func NewClientOrderID() string {
	return UUIDToHexString(uuid.New())
}

// TruncateFloat cuts the float down to the given number of decimals. With
// roundUp set, the truncated value is bumped by one unit of the last kept
// decimal.
func TruncateFloat(x float64, decimals int, roundUp bool) float64 {
	pow10 := math.Pow10(decimals)
	scaled := uint64(x * pow10)
	if roundUp {
		scaled++
	}

	return float64(scaled) / pow10
}

// BpsDiff measures how far y drifted away from x in basis points,
// saturating at InfBps.
func BpsDiff(x, y float64) uint16 {
	if math.Abs(x) < epsilon {
		return InfBps
	}

	bps := math.Abs(y-x) / x * 10000.0
	if bps < 0 {
		return 0
	}
	if bps >= float64(InfBps) {
		return InfBps
	}

	return uint16(bps)
}
