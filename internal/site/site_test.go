package site

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
title: Ada
profile:
  name: Hi, I'm Ada.
  subtitle: Engine whisperer
  avatar: /images/ada.png
  bio: Notes on the [Analytical Engine](https://example.com/engine).
social_links:
  - id: github
    href: https://github.com/ada
    icon: GitHub
    icon_color: "#f0f0f0"
    hover_icon_color: "#000000"
  - id: linked-in
    href: https://linkedin.com/in/ada
    icon: linkedin
    icon_color: "#0077b5"
    hover_icon_color: "#ffffff"
    label: LinkedIn
projects:
  - href: https://example.com/engine
    image_src: /images/engine.png
    title: Engine
    description: A general purpose computer.
posts:
  - href: "#"
    title: Note G
    date: "1843"
footer: Ada © 1843
`

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, Prepare(s))

	assert.Len(t, s.SocialLinks, 4)
	assert.Len(t, s.Projects, 2)
	assert.Len(t, s.Posts, 5)
	assert.Contains(t, s.Profile.BioHTML, "<p>As a Full Stack Developer")
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Posts[0].Title = "changed"
	assert.NotEqual(t, "changed", Default().Posts[0].Title)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Pagimos", s.Title)
	assert.NotEmpty(t, s.Profile.BioHTML)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Ada", s.Title)
	assert.Equal(t, "Hi, I'm Ada.", s.Profile.Name)
	require.Len(t, s.SocialLinks, 2)
	assert.Equal(t, "github", s.SocialLinks[0].Icon, "icon names are case-folded")
	assert.Equal(t, "Github", s.SocialLinks[0].Label, "label falls back to the id")
	assert.Equal(t, "LinkedIn", s.SocialLinks[1].Label)
	require.Len(t, s.Posts, 1)
	assert.Equal(t, "1843", s.Posts[0].Date)
	assert.Equal(t, "Ada © 1843", s.Footer)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseBadYAML(t *testing.T) {
	_, err := Parse([]byte("title: [unclosed"), "bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestPrepareRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Site)
		want   string
	}{
		{
			name:   "duplicate social id",
			mutate: func(s *Site) { s.SocialLinks[1].ID = s.SocialLinks[0].ID },
			want:   "SocialLinks must not repeat ID",
		},
		{
			name:   "duplicate project title",
			mutate: func(s *Site) { s.Projects[1].Title = s.Projects[0].Title },
			want:   "Projects must not repeat Title",
		},
		{
			name:   "duplicate post title",
			mutate: func(s *Site) { s.Posts[4].Title = s.Posts[0].Title },
			want:   "Posts must not repeat Title",
		},
		{
			name:   "unknown icon",
			mutate: func(s *Site) { s.SocialLinks[2].Icon = "myspace" },
			want:   `SocialLinks[2].Icon "myspace" is not one of`,
		},
		{
			name:   "bad color",
			mutate: func(s *Site) { s.SocialLinks[0].HoverIconColor = "blurple" },
			want:   `SocialLinks[0].HoverIconColor "blurple" is not a color`,
		},
		{
			name:   "missing post href",
			mutate: func(s *Site) { s.Posts[3].Href = "" },
			want:   "Posts[3].Href is required",
		},
		{
			name:   "missing name",
			mutate: func(s *Site) { s.Profile.Name = "" },
			want:   "Profile.Name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			err := Prepare(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPrepareAllowsEmptyLists(t *testing.T) {
	s := Default()
	s.SocialLinks = nil
	s.Projects = nil
	s.Posts = []Post{}
	assert.NoError(t, Prepare(s))
}

func TestRenderMarkdownIsolatesLinks(t *testing.T) {
	out, err := RenderMarkdown("See [my work](https://example.com/work).")
	require.NoError(t, err)
	assert.Equal(t,
		`<p>See <a href="https://example.com/work" target="_blank" rel="noopener noreferrer">my work</a>.</p>`+"\n",
		out)
}

func TestRenderMarkdownDropsRawHTML(t *testing.T) {
	out, err := RenderMarkdown("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestRenderMarkdownEmpty(t *testing.T) {
	out, err := RenderMarkdown("")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNewValidatorRegistersIconTag(t *testing.T) {
	var v *validator.Validate
	require.NotPanics(t, func() { v = newValidator() })

	type ref struct {
		Icon string `validate:"icon"`
	}
	assert.NoError(t, v.Struct(ref{Icon: "github"}))
	assert.Error(t, v.Struct(ref{Icon: "myspace"}))
}
