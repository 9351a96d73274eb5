package site

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/pagimos/portfolio/internal/icon"
)

// ErrInvalid is wrapped by every validation failure returned from Prepare.
var ErrInvalid = errors.New("invalid site content")

var validate = newValidator()

// newValidator panics if a custom tag cannot be registered.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("icon", knownIcon); err != nil {
		panic(fmt.Sprintf("site: registering icon validation: %v", err))
	}
	return v
}

func knownIcon(fl validator.FieldLevel) bool {
	return icon.Known(fl.Field().String())
}

// Load reads site content from a YAML file. An empty path returns the
// built-in content. The result has been through Prepare.
func Load(path string) (*Site, error) {
	if path == "" {
		s := Default()
		if err := Prepare(s); err != nil {
			return nil, fmt.Errorf("built-in content: %w", err)
		}
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading content file %s: %w", path, err)
	}
	return Parse(raw, path)
}

// Parse decodes YAML content and prepares it. name is only used in errors.
func Parse(raw []byte, name string) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("error unmarshalling content file %s: %w", name, err)
	}
	if err := Prepare(&s); err != nil {
		return nil, fmt.Errorf("content file %s: %w", name, err)
	}
	return &s, nil
}

// Prepare fills defaults, validates, and renders the bio. It is the last
// point at which s may change.
func Prepare(s *Site) error {
	normalize(s)

	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describe(fe))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	bio, err := RenderMarkdown(s.Profile.Bio)
	if err != nil {
		return fmt.Errorf("rendering bio: %w", err)
	}
	s.Profile.BioHTML = bio
	return nil
}

func normalize(s *Site) {
	title := cases.Title(language.English)
	for i := range s.SocialLinks {
		l := &s.SocialLinks[i]
		l.Icon = strings.ToLower(strings.TrimSpace(l.Icon))
		if l.Label == "" {
			l.Label = title.String(strings.NewReplacer("-", " ", "_", " ").Replace(l.ID))
		}
	}
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Site.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "unique":
		return field + " must not repeat " + fe.Param()
	case "icon":
		return fmt.Sprintf("%s %q is not one of %s", field, fe.Value(), strings.Join(icon.Names(), ", "))
	case "iscolor":
		return fmt.Sprintf("%s %q is not a color", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
