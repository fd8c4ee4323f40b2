package normalize

import "testing"

func TestURLEquivalence(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"tracking params and trailing slash", "http://EX.com/a/?utm_source=x", "http://ex.com/a"},
		{"trailing slash", "http://ex.com/a/", "http://ex.com/a"},
		{"fragment", "http://ex.com/a#section", "http://ex.com/a"},
		{"host case", "http://EXAMPLE.COM/path", "http://example.com/path"},
		{"scheme case", "HTTP://ex.com/a", "http://ex.com/a"},
		{"all tracking removed", "https://ex.com/p?gclid=1&fbclid=2&ref=nav", "https://ex.com/p"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := URL(tt.a), URL(tt.b); got != want {
				t.Errorf("URL(%q) = %q, URL(%q) = %q; want equal", tt.a, got, tt.b, want)
			}
		})
	}
}

func TestURLCanonicalForm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://EX.com/a/?utm_source=x", "http://ex.com/a"},
		{"http://ex.com/", "http://ex.com/"},
		{"http://ex.com/a//", "http://ex.com/a"},
		{"http://ex.com/p?id=1&utm_medium=email&q=&ref=nav", "http://ex.com/p?id=1&q="},
		{"http://ex.com/p?a=1&a=2", "http://ex.com/p?a=1&a=2"},
		{"http://ex.com/A", "http://ex.com/A"}, // path case is significant
		{"", ""},
	}
	for _, tt := range tests {
		if got := URL(tt.in); got != tt.want {
			t.Errorf("URL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestURLIdempotent(t *testing.T) {
	inputs := []string{
		"http://EX.com/a/?utm_source=x&id=7",
		"http://ex.com/",
		"http://ex.com/p?a+b=c+d",
		"https://ex.com/x?q=%2Bplus#frag",
		"not a url at all",
	}
	for _, in := range inputs {
		once := URL(in)
		if twice := URL(once); twice != once {
			t.Errorf("URL not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestURLParseFailureFallsBack(t *testing.T) {
	// A space in the host makes url.Parse fail; the input must come
	// back unchanged rather than aborting processing.
	in := "http://ex ample.com/a"
	if got := URL(in); got != in {
		t.Errorf("URL(%q) = %q, want input unchanged", in, got)
	}
}

func TestURLKeepsQueryOrder(t *testing.T) {
	in := "http://ex.com/p?z=1&a=2&m=3"
	if got := URL(in); got != in {
		t.Errorf("URL(%q) = %q, want pair order preserved", in, got)
	}
}
