package render

import (
	"strings"
	"testing"
)

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" width="10" height="10"><rect width="10" height="10" fill="white"/></svg>`

func TestToPDF(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}

	pdf, err := ToPDF([]byte(sampleSVG))
	if err != nil {
		t.Fatalf("ToPDF() = %v, want nil", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Error("ToPDF() output should start with %PDF")
	}
}

func TestToPNG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}

	png, err := ToPNG([]byte(sampleSVG), 2.0)
	if err != nil {
		t.Fatalf("ToPNG() = %v, want nil", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("ToPNG() output should carry the PNG signature")
	}
}
