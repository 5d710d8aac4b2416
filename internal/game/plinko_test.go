package game

import "testing"

func TestPlinkoTablesShape(t *testing.T) {
	for _, rows := range PlinkoRows {
		for _, risk := range []string{RiskLow, RiskMedium, RiskHigh} {
			table := PlinkoTable(rows, risk)
			if len(table) != rows+1 {
				t.Fatalf("rows=%d risk=%s: %d buckets, want %d", rows, risk, len(table), rows+1)
			}
			// symmetric boards
			for i := range table {
				if table[i] != table[len(table)-1-i] {
					t.Fatalf("rows=%d risk=%s: table asymmetric at %d", rows, risk, i)
				}
			}
		}
	}
}

func TestValidPlinko(t *testing.T) {
	if !ValidPlinko(8, RiskLow) || !ValidPlinko(16, RiskHigh) {
		t.Fatal("rejected valid board")
	}
	if ValidPlinko(10, RiskLow) || ValidPlinko(8, "extreme") {
		t.Fatal("accepted invalid board")
	}
}

func TestDropPlinkoAllRight(t *testing.T) {
	src := &scriptSource{floats: []float64{0.9}}
	d := DropPlinko(src, 100, 8, RiskHigh)
	if d.Bucket != 8 {
		t.Fatalf("bucket = %d, want 8", d.Bucket)
	}
	if d.Multiplier != 29 || d.Win != 2900 {
		t.Fatalf("multiplier=%v win=%d, want 29 and 2900", d.Multiplier, d.Win)
	}
	if len(d.Path) != 8 {
		t.Fatalf("path length %d", len(d.Path))
	}
}

func TestDropPlinkoBucketMatchesPath(t *testing.T) {
	src := NewSeededSource(9)
	for i := 0; i < 100; i++ {
		d := DropPlinko(src, 100, 16, RiskMedium)
		rights := 0
		for _, step := range d.Path {
			if step == "R" {
				rights++
			}
		}
		if rights != d.Bucket {
			t.Fatalf("bucket %d but %d rights in path", d.Bucket, rights)
		}
		if d.Multiplier != PlinkoTable(16, RiskMedium)[d.Bucket] {
			t.Fatalf("multiplier mismatch for bucket %d", d.Bucket)
		}
	}
}
