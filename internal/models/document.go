package models

// AppType is the target platform of a generated document.
type AppType string

const (
	AppTypeMobile AppType = "mobile"
	AppTypeWeb    AppType = "web"
)

// Valid reports whether t is one of the supported platforms.
func (t AppType) Valid() bool {
	return t == AppTypeMobile || t == AppTypeWeb
}

// GenerateRequest represents the JSON body of a document generation request
// swagger:model GenerateRequest
type GenerateRequest struct {
	// Free-text app idea
	// required: true
	// example: A marketplace for renting camping gear
	Idea string `json:"idea"`

	// Target platform, mobile or web
	// required: true
	// example: web
	AppType AppType `json:"appType"`
}

// Document is a generated Markdown specification.
type Document struct {
	Markdown string
	Filename string
	Source   DocumentSource
}

// DocumentSource tells which path produced a document.
type DocumentSource string

const (
	SourceModel    DocumentSource = "model"
	SourceFallback DocumentSource = "fallback"
)
