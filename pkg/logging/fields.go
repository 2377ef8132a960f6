package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain helpers

func Component(name string) Field {
	return String("component", name)
}

func RunID(id string) Field {
	return String("run_id", id)
}

func Iteration(n int) Field {
	return Int("iteration", n)
}

func Modularity(q float64) Field {
	return Float64("modularity", q)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}
