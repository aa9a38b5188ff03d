// Package content defines the static tables rendered by the portfolio:
// profile, certificates, skills, projects and contact details. Tables are
// read-only once loaded.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("content: invalid")

// Icons known to the page templates.
var Icons = map[string]bool{
	"github": true, "linkedin": true, "mail": true, "phone": true, "map-pin": true,
	"book-open": true, "award": true, "code": true, "graduation-cap": true,
	"database": true, "cpu": true, "globe": true, "brain": true, "zap": true,
}

type Profile struct {
	Name       string `yaml:"name"`
	Role       string `yaml:"role"`
	Highlight  string `yaml:"highlight"`
	Degree     string `yaml:"degree"`
	University string `yaml:"university"`
	Heading    string `yaml:"heading"`
	About      string `yaml:"about"` // markdown
	ResumeURL  string `yaml:"resume_url"`
	Footer     string `yaml:"footer"`
}

type Certificate struct {
	Title  string   `yaml:"title"`
	Issuer string   `yaml:"issuer"`
	Date   string   `yaml:"date"`
	Image  string   `yaml:"image"`
	Skills []string `yaml:"skills"`
}

type SkillCategory struct {
	Category string   `yaml:"category"`
	Icon     string   `yaml:"icon"`
	Color    string   `yaml:"color"`
	Skills   []string `yaml:"skills"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"` // markdown
	Image       string   `yaml:"image"`
	Tech        []string `yaml:"tech"`
	GitHub      string   `yaml:"github"`
	Live        string   `yaml:"live"`
	Status      string   `yaml:"status"`
}

type ContactChannel struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Href  string `yaml:"href"`
}

type SocialLink struct {
	Icon string `yaml:"icon"`
	Href string `yaml:"href"`
}

// Stat is one tile of the about section, e.g. {"3.75/4.00", "CGPA"}.
type Stat struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Focus is a subject with a progress percentage.
type Focus struct {
	Subject  string `yaml:"subject"`
	Progress int    `yaml:"progress"`
}

// Content is the full set of tables behind one page.
type Content struct {
	Profile      Profile          `yaml:"profile"`
	Stats        []Stat           `yaml:"stats"`
	Focus        []Focus          `yaml:"focus"`
	Certificates []Certificate    `yaml:"certificates"`
	Skills       []SkillCategory  `yaml:"skills"`
	Projects     []Project        `yaml:"projects"`
	Contact      []ContactChannel `yaml:"contact"`
	Social       []SocialLink     `yaml:"social"`
}

// Certificate returns the i-th certificate.
func (c *Content) Certificate(i int) (Certificate, bool) {
	if i < 0 || i >= len(c.Certificates) {
		return Certificate{}, false
	}
	return c.Certificates[i], true
}

// Load reads a YAML file over Default. Lists present in the file replace the
// default lists; profile fields are merged one by one.
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Content, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Marshal encodes c as YAML.
func Marshal(c *Content) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("content: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks the invariants templates rely on.
func (c *Content) Validate() error {
	if c.Profile.Name == "" {
		return fmt.Errorf("%w: profile name is empty", ErrInvalid)
	}
	for i, cert := range c.Certificates {
		if cert.Title == "" {
			return fmt.Errorf("%w: certificate %d has no title", ErrInvalid, i)
		}
	}
	for i, sk := range c.Skills {
		if sk.Category == "" {
			return fmt.Errorf("%w: skill category %d has no name", ErrInvalid, i)
		}
		if err := checkIcon(sk.Icon); err != nil {
			return fmt.Errorf("%w: skill category %q: %v", ErrInvalid, sk.Category, err)
		}
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("%w: project %d has no title", ErrInvalid, i)
		}
	}
	for _, f := range c.Focus {
		if f.Progress < 0 || f.Progress > 100 {
			return fmt.Errorf("%w: focus %q progress %d not in 0..100", ErrInvalid, f.Subject, f.Progress)
		}
	}
	for _, s := range c.Stats {
		if err := checkIcon(s.Icon); err != nil {
			return fmt.Errorf("%w: stat %q: %v", ErrInvalid, s.Label, err)
		}
	}
	for _, ch := range c.Contact {
		if err := checkIcon(ch.Icon); err != nil {
			return fmt.Errorf("%w: contact %q: %v", ErrInvalid, ch.Label, err)
		}
	}
	for _, s := range c.Social {
		if err := checkIcon(s.Icon); err != nil {
			return fmt.Errorf("%w: social link %q: %v", ErrInvalid, s.Href, err)
		}
	}
	return nil
}

func checkIcon(name string) error {
	if !Icons[name] {
		return fmt.Errorf("unknown icon %q", name)
	}
	return nil
}
