package reaction

import "testing"

func benchmarkGrayScott(b *testing.B, n int) {
	g := NewGrayScott(n, n, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}

func BenchmarkGrayScottStep128(b *testing.B) { benchmarkGrayScott(b, 128) }
func BenchmarkGrayScottStep256(b *testing.B) { benchmarkGrayScott(b, 256) }
func BenchmarkGrayScottStep512(b *testing.B) { benchmarkGrayScott(b, 512) }

func BenchmarkLifeGeneration256(b *testing.B) {
	l := NewLife(256, 256, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Advance()
	}
}

func BenchmarkPlasmaFrame256(b *testing.B) {
	p := NewPlasma(256, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Advance()
	}
}
