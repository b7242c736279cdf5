package models

import (
	"encoding/xml"
)

// Atom 1.0 feed document. Field order matters to keep the output
// byte-stable across runs.
type AtomFeed struct {
	XMLName   xml.Name      `xml:"feed"`
	Xmlns     string        `xml:"xmlns,attr"`
	Title     string        `xml:"title"`
	Links     []AtomLink    `xml:"link"`
	Generator AtomGenerator `xml:"generator"`
	Updated   string        `xml:"updated,omitempty"`
	Entries   []AtomEntry   `xml:"entry"`
}

type AtomLink struct {
	Rel  string `xml:"rel,attr,omitempty"`
	Type string `xml:"type,attr,omitempty"`
	Href string `xml:"href,attr"`
}

type AtomGenerator struct {
	Version string `xml:"version,attr"`
	URI     string `xml:"uri,attr"`
}

type AtomEntry struct {
	Base      string     `xml:"xml:base,attr"`
	Author    AtomAuthor `xml:"author"`
	Published string     `xml:"published"`
	Link      AtomLink   `xml:"link"`
	Title     string     `xml:"title"`
	Content   string     `xml:"content"`
}

type AtomAuthor struct {
	Name string `xml:"name"`
}
