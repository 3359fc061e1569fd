package output

import (
	"fmt"
	"strings"

	"github.com/sipgo/investment-calculator/internal/domain"
)

// GenerateReport writes a date-stamped report file in the requested format,
// or every registered format for "all". It returns the written filename(s).
func GenerateReport(result *domain.ProjectionResult, format string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		files := make([]string, 0, len(builtInFormatters))
		for _, f := range builtInFormatters {
			name, err := WriteFormatted(f, result)
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	name, err := WriteFormatted(f, result)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// ContentType maps a formatter to the MIME type used for HTTP downloads.
func ContentType(f Formatter) string {
	switch f.Ext() {
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		return "application/pdf"
	case "csv":
		return "text/csv"
	case "json":
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}
