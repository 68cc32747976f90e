// Package dtype maps column kinds ("int", "decimal", "datetime" ...) to the
// type names used by numpy, python arrays and SQL dialects.
package dtype
