package curvefit

import "testing"

func BenchmarkFitSingleCurve(b *testing.B) {
	ns := []int{8, 16, 32, 64, 128, 256, 512, 1024}
	times := synthesize(ns, 3.0, ONLogN)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Fit(ns, times, ONLogN)
	}
}

func BenchmarkFitAuto(b *testing.B) {
	ns := []int{8, 16, 32, 64, 128, 256, 512, 1024}
	times := synthesize(ns, 3.0, ONSquared)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Fit(ns, times, OAuto)
	}
}
