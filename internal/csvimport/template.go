package csvimport

import (
	"bytes"
	"encoding/csv"
)

// TemplateFilename is the suggested name of the downloadable template
const TemplateFilename = "services_template.csv"

// TemplateHeaders is the canonical header row, one column per field
func TemplateHeaders() []string {
	headers := make([]string, len(Fields))
	for i, f := range Fields {
		headers[i] = string(f)
	}
	return headers
}

// TemplateCSV renders the header-only template. Every header is detected by DetectMapping
// with the default aliases.
func TemplateCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(TemplateHeaders())
	w.Flush()
	return buf.Bytes()
}
