package output

import (
	"io"

	"github.com/debtplan/payoff-engine/internal/domain"
)

// GenerateReport writes the result in the named format to a timestamped file
// in dir. The format "all" writes one file per registered formatter.
func GenerateReport(results *domain.PlanResult, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, f := range builtInFormatters {
			name, err := WriteFormatted(f, results, dir)
			if err != nil {
				return written, err
			}
			written = append(written, name)
		}
		return written, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	name, err := WriteFormatted(f, results, dir)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// WriteReport renders the result in the named format to w.
func WriteReport(w io.Writer, results *domain.PlanResult, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupported(format)
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
