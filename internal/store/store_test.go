package store

import (
	"errors"
	"testing"

	"vdot/internal/analysis"
	"vdot/internal/table"
)

func TestOpen_EmbeddedBlob(t *testing.T) {
	s, err := Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	row, err := s.Lookup(50.0)
	if err != nil {
		t.Fatalf("Lookup(50.0) error = %v", err)
	}

	// Marathon at VDOT 50 is 3:10:49 within rounding.
	if abs(row.Marathon-11449) > 1 {
		t.Errorf("marathon time = %v, want ~11449", row.Marathon)
	}

	// 50.0 is not < 50.0, so the stored repetition pace is interval-15.
	if row.Repetition != row.Interval-15 {
		t.Errorf("repetition = %v, want interval-15 = %v", row.Repetition, row.Interval-15)
	}
}

func TestLookup_Boundary(t *testing.T) {
	s, err := Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	for _, vdot := range []float64{29.9, 85.1, 0, -50, 1000} {
		if _, err := s.Lookup(vdot); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Lookup(%v) error = %v, want ErrOutOfRange", vdot, err)
		}
	}

	for _, vdot := range []float64{30.0, 85.0} {
		if _, err := s.Lookup(vdot); err != nil {
			t.Errorf("Lookup(%v) error = %v, want success", vdot, err)
		}
	}
}

func TestLookup_Canonicalization(t *testing.T) {
	s, err := Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	// 51.44 and 51.4 round to the same grid index and must return the
	// same stored row.
	exact, err := s.Lookup(51.4)
	if err != nil {
		t.Fatalf("Lookup(51.4) error = %v", err)
	}
	near, err := s.Lookup(51.44)
	if err != nil {
		t.Fatalf("Lookup(51.44) error = %v", err)
	}
	if exact != near {
		t.Errorf("Lookup(51.44) = %+v, want same row as Lookup(51.4) = %+v", near, exact)
	}
}

func TestGridLiveAgreement(t *testing.T) {
	// The embedded table and the live calculator must agree within one
	// second at every grid point, for every race time and pace.
	s, err := Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	for v := table.MinIndex; v <= table.MaxIndex; v++ {
		vdot := float64(v) / 10

		stored, err := s.Lookup(vdot)
		if err != nil {
			t.Fatalf("Lookup(%v) error = %v", vdot, err)
		}

		live, err := table.ComputeRow(vdot)
		if err != nil {
			t.Fatalf("ComputeRow(%v) error = %v", vdot, err)
		}

		fields := []struct {
			name         string
			stored, live int
		}{
			{"5K", stored.FiveK, live.FiveK},
			{"10K", stored.TenK, live.TenK},
			{"half", stored.Half, live.Half},
			{"marathon", stored.Marathon, live.Marathon},
			{"easy slow", stored.EasySlow, live.EasySlow},
			{"easy fast", stored.EasyFast, live.EasyFast},
			{"marathon pace", stored.MarathonPace, live.MarathonPace},
			{"threshold", stored.Threshold, live.Threshold},
			{"interval", stored.Interval, live.Interval},
			{"repetition", stored.Repetition, live.Repetition},
		}
		for _, f := range fields {
			if abs(f.stored-f.live) > 1 {
				t.Errorf("index %d %s: stored %v, live %v", v, f.name, f.stored, f.live)
			}
		}
	}
}

func TestForwardScoreConsistentWithTable(t *testing.T) {
	s, err := Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	// A 40:00 10K maps to a grid row whose stored 10K time is close to
	// the input performance.
	vdot := analysis.CalculateVDOT(analysis.Distance10K, 2400)
	row, err := s.Lookup(vdot)
	if err != nil {
		t.Fatalf("Lookup(%v) error = %v", vdot, err)
	}
	if abs(row.TenK-2400) > 15 {
		t.Errorf("stored 10K time for VDOT %.1f = %v, want within 15s of 2400", vdot, row.TenK)
	}
}

func TestRoundTrip_GeneratedTable(t *testing.T) {
	rows, err := table.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	blob, err := table.Encode(rows)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	s, err := OpenBlob(blob)
	if err != nil {
		t.Fatalf("OpenBlob() error = %v", err)
	}
	defer s.Close()

	decoded, err := s.Rows()
	if err != nil {
		t.Fatalf("Rows() error = %v", err)
	}

	if len(decoded) != len(rows) {
		t.Fatalf("decoded %d rows, want %d", len(decoded), len(rows))
	}
	for i := range rows {
		if decoded[i] != rows[i] {
			t.Errorf("row %d: decoded %+v, want %+v", i, decoded[i], rows[i])
		}
	}
}

func TestOpenBlob_Malformed(t *testing.T) {
	if _, err := OpenBlob("not a table"); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("OpenBlob with garbage: error = %v, want ErrMalformedTable", err)
	}

	// A structurally valid blob holding an incomplete table is also
	// malformed: no partial tables.
	partial, err := table.Encode([]table.Row{{V: 300, FiveK: 1, TenK: 2, Half: 3, Marathon: 4}})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if _, err := OpenBlob(partial); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("OpenBlob with partial table: error = %v, want ErrMalformedTable", err)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
