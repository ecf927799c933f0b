package recon

import "strings"

// RenderCSV serializes the receipt export: an unquoted header row of
// column names, then one row per record with every field quoted and
// embedded quotes doubled. encoding/csv is deliberately not used here;
// it quotes only when required, and the downstream consumer of this
// attachment expects every data field quoted.
func RenderCSV(columns []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Join(columns, ","))
	b.WriteByte('\n')

	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}

	return b.String()
}
