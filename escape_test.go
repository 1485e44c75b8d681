package main

import "testing"

func TestEscapePathSegment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Berlin", expected: "Berlin"},
		{name: "space", input: "Frankfurt am Main", expected: "Frankfurt%20am%20Main"},
		{name: "sub-delims kept", input: "A(b)!$'*,;&=@:+", expected: "A(b)!$'*,;&=@:+"},
		{name: "slash and query escaped", input: "a/b?c#d", expected: "a%2Fb%3Fc%23d"},
		{name: "umlaut as UTF-8", input: "Köln", expected: "K%C3%B6ln"},
		{name: "sharp s", input: "Gießen", expected: "Gie%C3%9Fen"},
		{name: "percent", input: "100%", expected: "100%25"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := escapePathSegment(tt.input)
			if result != tt.expected {
				t.Errorf("escapePathSegment(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEscapeFormParameter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "space as plus", input: "a b", expected: "a+b"},
		{name: "star kept", input: "a*b-c_d.e", expected: "a*b-c_d.e"},
		{name: "tilde escaped", input: "~", expected: "%7E"},
		{name: "plus escaped", input: "+", expected: "%2B"},
		{name: "newline", input: "a\nb", expected: "a%0Ab"},
		{name: "angle brackets", input: "<x>", expected: "%3Cx%3E"},
		{name: "question mark", input: "?data", expected: "%3Fdata"},
		{name: "non-ascii", input: "é", expected: "%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := escapeFormParameter(tt.input)
			if result != tt.expected {
				t.Errorf("escapeFormParameter(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
