package table

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// wrapWidth is the column width of the wrapped blob, chosen so the
// encoded table embeds cleanly as a source-file literal.
const wrapWidth = 88

// createStmt declares the serialized table schema. Field order is fixed:
// race times by distance, then paces from easy to repetition.
const createStmt = `CREATE TABLE vdot (
  v           INTEGER PRIMARY KEY,
  five_k_time INTEGER NOT NULL,
  ten_k_time  INTEGER NOT NULL,
  hm_time     INTEGER NOT NULL,
  m_time      INTEGER NOT NULL,
  e_pace_1    INTEGER NOT NULL,
  e_pace_2    INTEGER NOT NULL,
  m_pace      INTEGER NOT NULL,
  t_pace      INTEGER NOT NULL,
  i_pace      INTEGER NOT NULL,
  r_pace      INTEGER NOT NULL
) WITHOUT ROWID, STRICT;
`

// Encode serializes rows into the embeddable blob: an SQL dump of the
// table, gzipped, base64-encoded, and wrapped to a fixed column width.
// Decoding reverses exactly these steps.
func Encode(rows []Row) (string, error) {
	var dump bytes.Buffer

	dump.WriteString("BEGIN TRANSACTION;\n")
	dump.WriteString(createStmt)
	for _, r := range rows {
		fmt.Fprintf(&dump, "INSERT INTO vdot VALUES(%d,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d);\n",
			r.V, r.FiveK, r.TenK, r.Half, r.Marathon,
			r.EasySlow, r.EasyFast, r.MarathonPace, r.Threshold, r.Interval, r.Repetition)
	}
	dump.WriteString("COMMIT;\n")

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	if _, err := zw.Write(dump.Bytes()); err != nil {
		return "", fmt.Errorf("compressing table dump: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("compressing table dump: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(compressed.Bytes())
	return wrap(encoded, wrapWidth), nil
}

// DecodeBlob reverses the encoding and returns the SQL dump bytes.
func DecodeBlob(blob string) ([]byte, error) {
	joined := strings.Join(strings.Fields(blob), "")

	compressed, err := base64.StdEncoding.DecodeString(joined)
	if err != nil {
		return nil, fmt.Errorf("decoding table blob: %w", err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("decompressing table blob: %w", err)
	}
	defer zr.Close()

	dump, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompressing table blob: %w", err)
	}

	return dump, nil
}

// wrap splits s into newline-separated lines of at most width characters.
func wrap(s string, width int) string {
	var b strings.Builder
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteByte('\n')
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}
