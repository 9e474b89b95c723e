package shiny

import (
	"log/slog"
	"testing"
)

func TestDefaultBuilderOptions(t *testing.T) {
	o := defaultBuilderOptions()
	if o.capacity != 8 {
		t.Errorf("default capacity = %d, want 8", o.capacity)
	}
	if o.logger != nil {
		t.Error("default logger should be nil (use package logger)")
	}
}

func TestWithCapacity(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"positive", 64, 64},
		{"one", 1, 1},
		{"zero ignored", 0, 8},
		{"negative ignored", -5, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewPathBuilder(WithCapacity(tt.n))
			if b.opts.capacity != tt.want {
				t.Errorf("capacity = %d, want %d", b.opts.capacity, tt.want)
			}
			b.MoveTo(V2(0, 0))
			if got := cap(b.current.segments); got != tt.want {
				t.Errorf("segment capacity = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWithLogger(t *testing.T) {
	l := slog.Default()
	b := NewPathBuilder(WithLogger(l))
	if b.logger() != l {
		t.Error("WithLogger did not set the builder logger")
	}

	b = NewPathBuilder()
	if b.logger() != Logger() {
		t.Error("builder without WithLogger should use the package logger")
	}
}

func TestBuilderOptionsSurviveBuild(t *testing.T) {
	b := NewPathBuilder(WithCapacity(32))
	b.MoveTo(V2(0, 0))
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if b.opts.capacity != 32 {
		t.Errorf("capacity after Build = %d, want 32", b.opts.capacity)
	}
}
