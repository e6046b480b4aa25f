package domain

import (
	"reflect"
	"testing"
)

func TestTag_Add(t *testing.T) {
	tests := []struct {
		name  string
		posts []PostID
	}{
		{name: "No posts", posts: nil},
		{name: "Distinct posts", posts: []PostID{0, 1, 2}},
		{name: "Repeated post is counted twice", posts: []PostID{3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := NewTag("go", TagURL("go"))
			for _, id := range tt.posts {
				tag.Add(id)
			}

			if tag.Num() != len(tt.posts) {
				t.Errorf("Num() = %d, want %d", tag.Num(), len(tt.posts))
			}
			if len(tag.Posts()) != tag.Num() {
				t.Errorf("len(Posts()) = %d, Num() = %d", len(tag.Posts()), tag.Num())
			}
			if len(tt.posts) > 0 && !reflect.DeepEqual(tag.Posts(), tt.posts) {
				t.Errorf("Posts() = %v, want %v", tag.Posts(), tt.posts)
			}
		})
	}
}

func TestTagURL(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "hello", want: "/blog/tags/hello.html"},
		{name: "c#", want: "/blog/tags/c%23.html"},
		{name: "what?", want: "/blog/tags/what%3F.html"},
		{name: "two words", want: "/blog/tags/two%20words.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := NewTag(tt.name, TagURL(tt.name))
			if tag.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", tag.Name(), tt.name)
			}
			if tag.URL() != tt.want {
				t.Errorf("URL() = %q, want %q", tag.URL(), tt.want)
			}
		})
	}
}

func TestValidTagName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "go", want: true},
		{name: "c#", want: true},
		{name: "v1.2", want: true},
		{name: "", want: false},
		{name: "..", want: false},
		{name: "../../escaped", want: false},
		{name: "a/b", want: false},
		{name: `a\b`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidTagName(tt.name); got != tt.want {
				t.Errorf("ValidTagName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
