package tab

// Encoding is the default text encoding.
const Encoding = "utf-8"

var (
	DefTrues  = []string{"yes", "y", "true", "t"}
	DefFalses = []string{"no", "n", "false", "f"}
	DefNulls  = []string{"na", "n/a", "none", "null", "."}
)

// Currencies are the symbols stripped from numeric strings.
var Currencies = []string{
	"$", "£", "€", "¥", "¢", "₹", "₽", "₩", "₦", "₪", "₫", "₱", "₲", "₴", "₵", "₸", "₺", "₼", "₾", "฿", "元", "円",
}

// Separators is the (thousand, decimal) separator pair of a localized number.
type Separators struct {
	Thousand string `yaml:"thousand_sep" json:"thousand_sep"`
	Decimal  string `yaml:"decimal_sep" json:"decimal_sep"`
}

var DefaultSeparators = Separators{Thousand: ",", Decimal: "."}

// Swapped returns the pair with thousand and decimal exchanged.
func (s Separators) Swapped() Separators {
	return Separators{Thousand: s.Decimal, Decimal: s.Thousand}
}

// OrDefault fills empty members from DefaultSeparators.
func (s Separators) OrDefault() Separators {
	if s.Thousand == "" {
		s.Thousand = DefaultSeparators.Thousand
	}
	if s.Decimal == "" {
		s.Decimal = DefaultSeparators.Decimal
	}
	return s
}
