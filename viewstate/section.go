// Package viewstate holds the interactive state of one rendered portfolio
// page: the active section, the mobile menu, the certificate carousel and
// the certificate modal. A Controller serializes every write, whether it
// comes from a request handler or the carousel timer.
package viewstate

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Section identifies one anchored section of the page.
type Section string

const (
	Home         Section = "home"
	About        Section = "about"
	Certificates Section = "certificates"
	Skills       Section = "skills"
	Projects     Section = "projects"
	Contact      Section = "contact"
)

// Sections lists every section in declaration order. The scroll tracker
// scans in this order and the first match wins.
var Sections = []Section{Home, About, Certificates, Skills, Projects, Contact}

var titleCaser = cases.Title(language.English)

// ParseSection returns the section named s.
func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}

// Valid reports whether s is one of the declared sections.
func (s Section) Valid() bool {
	_, ok := ParseSection(string(s))
	return ok
}

// Label is the navigation label, e.g. "Certificates".
func (s Section) Label() string {
	return titleCaser.String(string(s))
}

func (s Section) String() string { return string(s) }
