package lint

import "testing"

func TestTagsBasic(t *testing.T) {
	src := NewSource("a.html.erb", []byte(`<p><%= user.name %></p>`))
	tags := src.Tags()

	if len(tags) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(tags))
	}
	tag := tags[0]
	if tag.Open != "<%=" {
		t.Errorf("open = %q", tag.Open)
	}
	if tag.Close != "%>" {
		t.Errorf("close = %q", tag.Close)
	}
	if got := string(src.Raw[tag.Inner.Begin:tag.Inner.End]); got != " user.name " {
		t.Errorf("inner = %q", got)
	}
	if tag.Begin != 3 || tag.End != 19 {
		t.Errorf("range = [%d,%d), want [3,19)", tag.Begin, tag.End)
	}
}

func TestTagsMultiple(t *testing.T) {
	src := NewSource("a.html.erb", []byte("<% if a %>x<% end %>"))
	tags := src.Tags()
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(tags))
	}
	if tags[0].Open != "<%" || tags[1].Open != "<%" {
		t.Errorf("opens = %q, %q", tags[0].Open, tags[1].Open)
	}
}

func TestTagsComment(t *testing.T) {
	src := NewSource("a.html.erb", []byte("<%# note %>"))
	tags := src.Tags()
	if len(tags) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(tags))
	}
	if !tags[0].Comment() {
		t.Error("expected a comment tag")
	}
}

func TestTagsTrimMarkers(t *testing.T) {
	src := NewSource("a.html.erb", []byte("<%- code -%>\n<%= other =%>"))
	tags := src.Tags()
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(tags))
	}
	if tags[0].Open != "<%-" || tags[0].Close != "-%>" {
		t.Errorf("tag 0 = %q...%q", tags[0].Open, tags[0].Close)
	}
	if tags[1].Close != "=%>" {
		t.Errorf("tag 1 close = %q", tags[1].Close)
	}
}

func TestTagsUnclosed(t *testing.T) {
	src := NewSource("a.html.erb", []byte("before <% broken"))
	tags := src.Tags()
	if len(tags) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(tags))
	}
	if tags[0].Close != "" {
		t.Errorf("close = %q, want empty", tags[0].Close)
	}
	if tags[0].End != len(src.Raw) {
		t.Errorf("unclosed tag must extend to EOF, end = %d", tags[0].End)
	}
}

func TestStrayClosers(t *testing.T) {
	src := NewSource("a.html.erb", []byte("text %> more <% ok %>"))
	strays := src.StrayClosers()
	if len(strays) != 1 {
		t.Fatalf("expected 1 stray closer, got %d", len(strays))
	}
	if strays[0] != 5 {
		t.Errorf("stray offset = %d, want 5", strays[0])
	}
}

func TestStrayClosersNoneInWellFormed(t *testing.T) {
	src := NewSource("a.html.erb", []byte("<% a %><%= b %>"))
	if strays := src.StrayClosers(); len(strays) != 0 {
		t.Errorf("expected no strays, got %v", strays)
	}
}
