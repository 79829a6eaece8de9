package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/debtplan/payoff-engine/internal/domain"
	"github.com/debtplan/payoff-engine/pkg/money"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"rate":    FormatRateString,
	"months":  FormatMonths,
	"date":    FormatDate,
	"label":   PlanLabel,
	"skipped": skippedLabel,
	"deref":   func(c *money.Cents) money.Cents { return *c },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.PlanResult) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.PlanResult
		Analysis        PlanAnalysis
		AssumptionLines []string
	}{
		PlanResult:      results,
		Analysis:        AnalyzePlans(results),
		AssumptionLines: reportAssumptions(results),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
