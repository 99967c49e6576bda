package enrichment

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title>Glass Act Window Cleaning</title>
<meta name="description" content="Family-run window cleaners covering Plymouth and South Devon since 1998.">
<script>console.log("ignore me")</script>
</head>
<body>
<p>We accept all major cookies on this site.</p>
<p>Glass Act has been keeping Plymouth's windows spotless for over twenty-five years.</p>
<ul>
<li>Home</li>
<li>Window cleaning</li>
<li>Gutter clearing</li>
<li>Conservatory roof cleaning</li>
<li>Contact us</li>
</ul>
<p>Opening hours: Monday to Friday, 8am to 6pm</p>
</body>
</html>`

func parseSample(t *testing.T) *pageContent {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("parse sample page: %v", err)
	}
	return extractContent(doc)
}

func TestExtractContent(t *testing.T) {
	page := parseSample(t)

	if page.Title != "Glass Act Window Cleaning" {
		t.Fatalf("unexpected title: %q", page.Title)
	}
	if !strings.HasPrefix(page.MetaDescription, "Family-run window cleaners") {
		t.Fatalf("unexpected meta description: %q", page.MetaDescription)
	}
	if len(page.Paragraphs) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d: %v", len(page.Paragraphs), page.Paragraphs)
	}
	if len(page.ListItems) != 5 {
		t.Fatalf("expected 5 list items, got %d", len(page.ListItems))
	}
	for _, paragraph := range page.Paragraphs {
		if strings.Contains(paragraph, "ignore me") {
			t.Fatalf("script content leaked into paragraphs: %q", paragraph)
		}
	}
}

func TestBuildProfile(t *testing.T) {
	profile := buildProfile("Glass Act Window Cleaning", parseSample(t))

	if !strings.HasPrefix(profile.Description, "Family-run window cleaners") {
		t.Fatalf("expected meta description used, got %q", profile.Description)
	}
	want := []string{"Window cleaning", "Gutter clearing", "Conservatory roof cleaning"}
	if len(profile.Services) != len(want) {
		t.Fatalf("expected %d services, got %v", len(want), profile.Services)
	}
	for i, service := range want {
		if profile.Services[i] != service {
			t.Fatalf("expected service %q at %d, got %q", service, i, profile.Services[i])
		}
	}
	if !strings.Contains(profile.OpeningHours, "Monday to Friday") {
		t.Fatalf("expected opening hours extracted, got %q", profile.OpeningHours)
	}
}

func TestBuildProfile_FallsBackToParagraph(t *testing.T) {
	page := &pageContent{
		Paragraphs: []string{
			"We use cookies to improve your experience on this site.",
			"RapidFlow Plumbing handles emergency callouts across Greater Manchester day and night.",
		},
	}

	profile := buildProfile("RapidFlow Plumbing", page)

	if !strings.HasPrefix(profile.Description, "RapidFlow Plumbing handles") {
		t.Fatalf("expected cookie banner skipped, got %q", profile.Description)
	}
}

func TestLooksLikeService(t *testing.T) {
	tests := []struct {
		item string
		want bool
	}{
		{"Window cleaning", true},
		{"Home", false},
		{"Contact us", false},
		{"Privacy policy", false},
		{"ab", false},
		{strings.Repeat("x", 80), false},
	}
	for _, tt := range tests {
		if got := looksLikeService(tt.item); got != tt.want {
			t.Fatalf("looksLikeService(%q) = %v, want %v", tt.item, got, tt.want)
		}
	}
}
