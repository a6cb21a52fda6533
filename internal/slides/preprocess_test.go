package slides

import "testing"

func TestPreprocess_RemovesLeadingFrontMatter(t *testing.T) {
	input := "---\nmarp: true\ntheme: gaia\n---\n# Slide\ntext"
	got := Preprocess(input)
	if got != "# Slide\ntext" {
		t.Errorf("expected %q, got %q", "# Slide\ntext", got)
	}
}

func TestPreprocess_OnlyFirstBlockRemoved(t *testing.T) {
	input := "---\na: 1\n---\n# One\n---\n# Two\n---\n"
	got := Preprocess(input)
	want := "# One\n---\n# Two\n---"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPreprocess_NonLeadingBlockUntouched(t *testing.T) {
	input := "# Intro\n\n---\nkey: value\n---\nmore"
	got := Preprocess(input)
	if got != input {
		t.Errorf("expected input unchanged, got %q", got)
	}
}

func TestPreprocess_UnclosedFrontMatterKept(t *testing.T) {
	input := "---\ntitle: x\nno closing line"
	got := Preprocess(input)
	if got != input {
		t.Errorf("expected input unchanged, got %q", got)
	}
}

func TestPreprocess_StyleBlocks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "block and inline",
			input: "<style>\nh1 { color: red }\n</style>\n# Title\n<style scoped>p{}</style>body",
			want:  "# Title\nbody",
		},
		{
			name:  "non-greedy",
			input: "<style>a</style>keep<style>b</style>",
			want:  "keep",
		},
		{
			name:  "case-insensitive",
			input: "<STYLE type=\"text/css\">x</Style>text",
			want:  "text",
		},
		{
			name:  "unclosed style is left alone",
			input: "<style>dangling",
			want:  "<style>dangling",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preprocess(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPreprocess_TrimsAndNormalizes(t *testing.T) {
	got := Preprocess("\r\n\r\n# A\r\nbody\r\n\r\n")
	if got != "# A\nbody" {
		t.Errorf("expected %q, got %q", "# A\nbody", got)
	}
}

func TestSplitFrontMatter_Meta(t *testing.T) {
	input := "---\ntitle: My Deck\nauthor: Ann Lee\nmarp: true\n---\nbody"
	meta, rest := SplitFrontMatter(input)
	if meta.Title != "My Deck" {
		t.Errorf("expected title %q, got %q", "My Deck", meta.Title)
	}
	if meta.Author != "Ann Lee" {
		t.Errorf("expected author %q, got %q", "Ann Lee", meta.Author)
	}
	if rest != "body" {
		t.Errorf("expected rest %q, got %q", "body", rest)
	}
}

func TestSplitFrontMatter_EmptyBlock(t *testing.T) {
	meta, rest := SplitFrontMatter("---\n---\n# A")
	if meta != (Meta{}) {
		t.Errorf("expected zero meta, got %+v", meta)
	}
	if rest != "# A" {
		t.Errorf("expected rest %q, got %q", "# A", rest)
	}
}

func TestSplitFrontMatter_NoBlock(t *testing.T) {
	meta, rest := SplitFrontMatter("# Heading\ntext")
	if meta != (Meta{}) {
		t.Errorf("expected zero meta, got %+v", meta)
	}
	if rest != "# Heading\ntext" {
		t.Errorf("expected text unchanged, got %q", rest)
	}
}

func TestSplitFrontMatter_ByteOrderMark(t *testing.T) {
	meta, rest := SplitFrontMatter("\ufeff---\ntitle: BOM\n---\nbody")
	if meta.Title != "BOM" {
		t.Errorf("expected title %q, got %q", "BOM", meta.Title)
	}
	if rest != "body" {
		t.Errorf("expected rest %q, got %q", "body", rest)
	}
}
