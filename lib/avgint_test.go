package lib

import "testing"

// TestAverageInt64 feeds AverageInt64 a small stream of doubling
// byte sizes, the kind of values Stats() accumulates over free
// regions.
func TestAverageInt64(t *testing.T) {
	avg := &AverageInt64{}

	if mean := avg.Mean(); mean != 0 {
		t.Errorf("expected 0, got %v", mean)
	} else if variance := avg.Variance(); variance != 0 {
		t.Errorf("expected 0, got %v", variance)
	} else if sd := avg.SD(); sd != 0 {
		t.Errorf("expected 0, got %v", sd)
	}

	sizes := []int64{64, 128, 256, 512}
	for _, size := range sizes {
		avg.Add(size)
	}

	if x, y := int64(64), avg.Min(); x != y {
		t.Errorf("Min() expected %v, got %v", x, y)
	} else if x, y := int64(512), avg.Max(); x != y {
		t.Errorf("Max() expected %v, got %v", x, y)
	} else if x, y := int64(4), avg.Samples(); x != y {
		t.Errorf("Samples() expected %v, got %v", x, y)
	} else if x, y := int64(960), avg.Sum(); x != y {
		t.Errorf("Sum() expected %v, got %v", x, y)
	} else if x, y := int64(240), avg.Mean(); x != y {
		t.Errorf("Mean() expected %v, got %v", x, y)
	} else if x, y := float64(29440), avg.Variance(); x != y {
		t.Errorf("Variance() expected %v, got %v", x, y)
	} else if x, y := int64(171), int64(avg.SD()); x != y {
		t.Errorf("SD() expected %v, got %v", x, y)
	}

	stats := avg.Stats()
	if x, y := int64(64), stats["min"].(int64); x != y {
		t.Errorf("min expected %v, got %v", x, y)
	} else if x, y := int64(512), stats["max"].(int64); x != y {
		t.Errorf("max expected %v, got %v", x, y)
	} else if x, y := int64(4), stats["samples"].(int64); x != y {
		t.Errorf("samples expected %v, got %v", x, y)
	} else if x, y := int64(240), stats["mean"].(int64); x != y {
		t.Errorf("mean expected %v, got %v", x, y)
	} else if x, y := float64(29440), stats["variance"].(float64); x != y {
		t.Errorf("variance expected %v, got %v", x, y)
	}

	clone := avg.Clone()
	if x, y := avg.Mean(), clone.Mean(); x != y {
		t.Errorf("Clone() Mean() expected %v, got %v", x, y)
	} else if x, y := avg.Sum(), clone.Sum(); x != y {
		t.Errorf("Clone() Sum() expected %v, got %v", x, y)
	}

	// mutating the clone must not affect the original.
	clone.Add(1024)
	if avg.Samples() == clone.Samples() {
		t.Errorf("Clone() should be independent of the original")
	}
}

// BenchmarkAvgintAdd measures accumulating a stream of allocation
// sizes, the hot path Stats() runs once per free region.
func BenchmarkAvgintAdd(b *testing.B) {
	avg := &AverageInt64{}
	for i := 0; i <= b.N; i++ {
		avg.Add(int64(64 + i%4096))
	}
}

func BenchmarkAvgintMean(b *testing.B) {
	avg := &AverageInt64{}
	for i := 0; i <= b.N; i++ {
		avg.Add(int64(64 + i%4096))
	}
	b.ResetTimer()
	for i := 0; i <= b.N; i++ {
		avg.Mean()
	}
}

func BenchmarkAvgintVar(b *testing.B) {
	avg := &AverageInt64{}
	for i := 0; i <= b.N; i++ {
		avg.Add(int64(64 + i%4096))
	}
	b.ResetTimer()
	for i := 0; i <= b.N; i++ {
		avg.Variance()
	}
}
