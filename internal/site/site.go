// Package site holds the content rendered on the portfolio page and loads it
// once at startup, either from the built-in literal or from a YAML file.
package site

// SocialLink is one outbound profile button in the hero section.
type SocialLink struct {
	ID             string `yaml:"id" validate:"required"`
	Href           string `yaml:"href" validate:"required"`
	Icon           string `yaml:"icon" validate:"required,icon"`
	HoverBgClass   string `yaml:"hover_bg_class"`
	IconColor      string `yaml:"icon_color" validate:"required,iscolor"`
	HoverIconColor string `yaml:"hover_icon_color" validate:"required,iscolor"`
	Label          string `yaml:"label"`
}

// Project is one card in the Projects section.
type Project struct {
	Href        string `yaml:"href" validate:"required"`
	ImageSrc    string `yaml:"image_src"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// Post is one row in the Latest Posts section. Date is shown as written.
type Post struct {
	Href  string `yaml:"href" validate:"required"`
	Title string `yaml:"title" validate:"required"`
	Date  string `yaml:"date"`
}

// Profile is the hero block content.
type Profile struct {
	Name     string `yaml:"name" validate:"required"`
	Subtitle string `yaml:"subtitle"`
	Avatar   string `yaml:"avatar"`

	// Bio is markdown. BioHTML is filled by Prepare.
	Bio     string `yaml:"bio"`
	BioHTML string `yaml:"-"`
}

// Site is everything the page shows. It must not be modified after Prepare.
type Site struct {
	Title       string       `yaml:"title" validate:"required"`
	Profile     Profile      `yaml:"profile"`
	SocialLinks []SocialLink `yaml:"social_links" validate:"unique=ID,dive"`
	Projects    []Project    `yaml:"projects" validate:"unique=Title,dive"`
	Posts       []Post       `yaml:"posts" validate:"unique=Title,dive"`
	Footer      string       `yaml:"footer"`
}
