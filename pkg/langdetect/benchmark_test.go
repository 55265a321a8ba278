package langdetect_test

import (
	"testing"

	"github.com/yaklabco/spellint/pkg/langdetect"
)

func BenchmarkDetectGo(b *testing.B) {
	code := []byte(`package main

import "fmt"

func main() {
	fmt.Println("Hello, World!")
}`)
	b.ResetTimer()
	for range b.N {
		langdetect.Detect(code)
	}
}

func BenchmarkDetectJSON(b *testing.B) {
	code := []byte(`{
  "name": "test",
  "version": "1.0.0",
  "dependencies": {
    "package": "^1.0.0"
  }
}`)
	b.ResetTimer()
	for range b.N {
		langdetect.Detect(code)
	}
}

func BenchmarkDetectSmall(b *testing.B) {
	code := []byte("hello")
	b.ResetTimer()
	for range b.N {
		langdetect.Detect(code)
	}
}
