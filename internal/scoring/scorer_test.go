package scoring

import "testing"

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name       string
		similarity float64
		coverage   float64
		want       float64
	}{
		{"perfect match", 1.0, 1.0, 100.0},
		{"no signal", 0.0, 0.0, 0.0},
		{"similarity only", 1.0, 0.0, 60.0},
		{"coverage only", 0.0, 1.0, 40.0},
		{"mixed", 0.5, 0.5, 50.0},
		{"rounded to two decimals", 0.333, 0.5, 39.98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallScore(tt.similarity, tt.coverage); got != tt.want {
				t.Errorf("OverallScore(%v, %v) = %v, want %v", tt.similarity, tt.coverage, got, tt.want)
			}
		})
	}
}
