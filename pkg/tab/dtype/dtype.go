package dtype

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ib-77/tabutils/pkg/tab"
)

type Dialect string

const (
	Numpy    Dialect = "numpy"
	Array    Dialect = "array"
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
)

// Column kinds understood by Get. Unknown kinds resolve to Text.
const (
	Null     = "null"
	Bool     = "bool"
	Int      = "int"
	Float    = "float"
	Double   = "double"
	Decimal  = "decimal"
	Datetime = "datetime"
	Time     = "time"
	Date     = "date"
	Text     = "text"
)

var tables = map[Dialect]map[string]string{
	Numpy: {
		Null:     "bool",
		Bool:     "bool",
		Int:      "i",
		Float:    "f",
		Double:   "d",
		Decimal:  "d",
		Datetime: "datetime64[us]",
		Time:     "timedelta64[us]",
		Date:     "datetime64[D]",
		Text:     "object_",
	},
	Array: {
		Null:    "B",
		Bool:    "B",
		Int:     "i",
		Float:   "f",
		Double:  "d",
		Decimal: "d",
		Text:    "u",
	},
	Postgres: {
		Null:     "boolean",
		Bool:     "boolean",
		Int:      "integer",
		Float:    "real",
		Double:   "double precision",
		Decimal:  "decimal",
		Datetime: "timestamp",
		Time:     "time",
		Date:     "date",
		Text:     "text",
	},
	MySQL: {
		Null:     "CHAR(0)",
		Bool:     "BOOL",
		Int:      "INT",
		Float:    "FLOAT",
		Double:   "DOUBLE",
		Decimal:  "DECIMAL",
		Datetime: "DATETIME",
		Time:     "TIME",
		Date:     "DATE",
		Text:     "TEXT",
	},
	SQLite: {
		Null:     "INT",
		Bool:     "INT",
		Int:      "INT",
		Float:    "REAL",
		Double:   "REAL",
		Decimal:  "REAL",
		Datetime: "TEXT",
		Time:     "TEXT",
		Date:     "TEXT",
		Text:     "TEXT",
	},
}

// arrayNull holds the zero value stored for nulls in each array type code.
var arrayNull = map[string]any{
	"B": false,
	"i": 0,
	"f": 0.0,
	"d": 0.0,
	"u": "",
}

// Get returns the dialect's type name for kind, falling back to the
// dialect's text type for kinds it does not know.
func Get(kind string, dialect Dialect) (string, error) {
	table, ok := tables[Dialect(strings.ToLower(string(dialect)))]
	if !ok {
		return "", fmt.Errorf("%w: %q", tab.ErrUnknownDialect, dialect)
	}
	if name, ok := table[strings.ToLower(kind)]; ok {
		return name, nil
	}
	return table[Text], nil
}

// ArrayNull returns the null placeholder for an array type code.
func ArrayNull(code string) (any, bool) {
	v, ok := arrayNull[code]
	return v, ok
}

// FromKind maps a value kind to the column kind used by Get.
func FromKind(k tab.Kind) string {
	switch k {
	case tab.KindNull:
		return Null
	case tab.KindBool:
		return Bool
	case tab.KindNumeric:
		return Decimal
	}
	return Text
}

func Dialects() []Dialect {
	return slices.Sorted(maps.Keys(tables))
}
