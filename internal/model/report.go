package model

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/hamlet-ml/hamlet/internal/dataset"
)

// ReportData feeds the markdown validation report.
type ReportData struct {
	GeneratedAt time.Time
	ModelPath   string
	ModelID     string
	Ham         Evaluation
	Spam        Evaluation
	Manifest    *dataset.Manifest
}

const reportTemplate = `# Validation report

- Generated: {{ dateInZone "2006-01-02 15:04:05 MST" .GeneratedAt "UTC" }}
- Model: ` + "`{{ .ModelPath }}`" + `{{ with .ModelID }} (id ` + "`{{ . }}`" + `){{ end }}

## Results

| Class | Correct | Total | Accuracy |
| ----- | ------: | ----: | -------: |
| ham   | {{ .Ham.Correct }} | {{ .Ham.Total }} | {{ printf "%.2f%%" (mulf .Ham.Accuracy 100.0) }} |
| spam  | {{ .Spam.Correct }} | {{ .Spam.Total }} | {{ printf "%.2f%%" (mulf .Spam.Accuracy 100.0) }} |
{{- with .Manifest }}

## Dataset

Split run ` + "`{{ .RunID }}`" + ` ({{ .CreatedAt }}, ratio {{ .Ratio }}) from ` + "`{{ .Source }}`" + `:
{{ .TrainHam }} train ham, {{ .ValidateHam }} validate ham, {{ .TrainSpam }} train spam, {{ .ValidateSpam }} validate spam.
{{- end }}
`

// RenderReport renders the validation report as markdown.
func RenderReport(data ReportData) (string, error) {
	tmpl, err := template.New("report").Funcs(sprig.FuncMap()).Parse(reportTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return b.String(), nil
}
