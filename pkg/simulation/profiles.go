package simulation

// ProfileLevel grades a supplier's behavior on one performance dimension.
type ProfileLevel int

const (
	LowProfile ProfileLevel = iota
	RegularProfile
	HighProfile
)

// String method for ProfileLevel enum
func (p ProfileLevel) String() string {
	switch p {
	case LowProfile:
		return "low"
	case RegularProfile:
		return "regular"
	case HighProfile:
		return "high"
	default:
		return "unknown"
	}
}

// SupplierProfile bundles the four behavioral dimensions of a simulated
// supplier. The zero value is a regular supplier on every dimension.
type SupplierProfile struct {
	Price       ProfileLevel
	Quotation   ProfileLevel
	Punctuality ProfileLevel
	Delivery    ProfileLevel
}

type meanStd struct {
	mean, std float64
}

// Price factors multiply the configured per-complexity price statistics.
var priceProfileFactors = map[ProfileLevel]meanStd{
	LowProfile:     {0.85, 0.85},
	RegularProfile: {1, 1},
	HighProfile:    {1.2, 1.1},
}

// Quotation turnaround in days, fitted from historical quotation logs.
var quotationProfiles = map[ProfileLevel]meanStd{
	LowProfile:     {28.975, 25.1133753461483},
	RegularProfile: {27.7241379310345, 21.5974276436511},
	HighProfile:    {24.9444444444444, 10.258266234788},
}

// Probability that a delivery lands on or before its ETA.
var punctualityProbability = map[ProfileLevel]float64{
	LowProfile:     0.19047619047619,
	RegularProfile: 0.473684210526316,
	HighProfile:    0.638888888888889,
}

// Days between the actual delivery and the ETA, fitted separately for
// punctual and late deliveries.
var (
	punctualETADifference   = meanStd{0.888888888888889, 1.01273936708367}
	unpunctualETADifference = meanStd{4.24137931034483, 2.69463981708917}
)

// Delivery factors multiply the base delivery-time statistics.
var deliveryProfileFactors = map[ProfileLevel]meanStd{
	LowProfile:     {0.8, 0.8},
	RegularProfile: {1, 1},
	HighProfile:    {1, 1.3},
}

// Base delivery-time statistics in days, fitted from sample deliveries.
const (
	baseDeliveryMean    = 34.6206896551724
	baseDeliveryStdDev  = 16.2802512871323
	baseDeliveryMinimum = 12.0

	minimumQuotationTimeDays = 9
)
