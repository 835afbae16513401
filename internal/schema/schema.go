// Package schema declares the CMS document types and studio configuration
// as static values. They are data only; nothing here talks to the store.
package schema

import "github.com/CortexBlog/blog-service/internal/model"

type Option struct {
	Title string `json:"title" yaml:"title"`
	Value string `json:"value" yaml:"value"`
}

type Options struct {
	Hotspot   bool     `json:"hotspot,omitempty" yaml:"hotspot,omitempty"`
	Source    string   `json:"source,omitempty" yaml:"source,omitempty"`
	MaxLength int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	List      []Option `json:"list,omitempty" yaml:"list,omitempty"`
}

type Marks struct {
	Decorators  []Option `json:"decorators,omitempty" yaml:"decorators,omitempty"`
	Annotations []Type   `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

type Reference struct {
	Type string `json:"type" yaml:"type"`
}

// Type is one schema node: a document, a field or an array member.
type Type struct {
	Name     string      `json:"name,omitempty" yaml:"name,omitempty"`
	Title    string      `json:"title,omitempty" yaml:"title,omitempty"`
	Type     string      `json:"type" yaml:"type"`
	Required bool        `json:"required,omitempty" yaml:"required,omitempty"`
	Options  *Options    `json:"options,omitempty" yaml:"options,omitempty"`
	Fields   []Type      `json:"fields,omitempty" yaml:"fields,omitempty"`
	Of       []Type      `json:"of,omitempty" yaml:"of,omitempty"`
	To       []Reference `json:"to,omitempty" yaml:"to,omitempty"`
	Styles   []Option    `json:"styles,omitempty" yaml:"styles,omitempty"`
	Lists    []Option    `json:"lists,omitempty" yaml:"lists,omitempty"`
	Marks    *Marks      `json:"marks,omitempty" yaml:"marks,omitempty"`
}

// Field looks up a direct field by name.
func (t Type) Field(name string) (Type, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Type{}, false
}

var CodeLanguages = []Option{
	{Title: "JavaScript", Value: "javascript"},
	{Title: "TypeScript", Value: "typescript"},
	{Title: "Python", Value: "python"},
	{Title: "CSS", Value: "css"},
	{Title: "HTML", Value: "html"},
	{Title: "JSON", Value: "json"},
}

var BlockContent = Type{
	Name:  "blockContent",
	Title: "Block Content",
	Type:  "array",
	Of: []Type{
		{
			Title: "Block",
			Type:  model.BlockTypeBlock,
			Styles: []Option{
				{Title: "Normal", Value: "normal"},
				{Title: "H2", Value: "h2"},
				{Title: "H3", Value: "h3"},
				{Title: "H4", Value: "h4"},
				{Title: "Quote", Value: "blockquote"},
			},
			Lists: []Option{
				{Title: "Bullet", Value: "bullet"},
				{Title: "Numbered", Value: "number"},
			},
			Marks: &Marks{
				Decorators: []Option{
					{Title: "Strong", Value: "strong"},
					{Title: "Emphasis", Value: "em"},
				},
				Annotations: []Type{
					{
						Name:  "link",
						Title: "URL",
						Type:  "object",
						Fields: []Type{
							{Name: "href", Title: "URL", Type: "url"},
						},
					},
				},
			},
		},
		{
			Type:    model.BlockTypeImage,
			Options: &Options{Hotspot: true},
			Fields: []Type{
				{Name: "caption", Title: "Image Caption", Type: "string"},
				{Name: "alt", Title: "Alternative Text", Type: "string"},
			},
		},
		{
			Name:  model.BlockTypeCode,
			Title: "Code Block",
			Type:  "object",
			Fields: []Type{
				{Name: "language", Title: "Language", Type: "string", Options: &Options{List: CodeLanguages}},
				{Name: "code", Title: "Code", Type: "text"},
			},
		},
	},
}

var Category = Type{
	Name:  "category",
	Title: "Category",
	Type:  "document",
	Fields: []Type{
		{Name: "title", Title: "Title", Type: "string", Required: true},
		{Name: "slug", Title: "Slug", Type: "slug", Required: true, Options: &Options{Source: "title", MaxLength: 96}},
		{Name: "description", Title: "Description", Type: "text"},
	},
}

var Author = Type{
	Name:  "author",
	Title: "Author",
	Type:  "document",
	Fields: []Type{
		{Name: "name", Title: "Name", Type: "string", Required: true},
		{Name: "slug", Title: "Slug", Type: "slug", Required: true, Options: &Options{Source: "name", MaxLength: 96}},
		{Name: "image", Title: "Image", Type: "image", Options: &Options{Hotspot: true}},
		{
			Name:  "bio",
			Title: "Bio",
			Type:  "array",
			Of:    []Type{{Title: "Block", Type: model.BlockTypeBlock, Styles: []Option{{Title: "Normal", Value: "normal"}}}},
		},
	},
}

var Post = Type{
	Name:  "post",
	Title: "Post",
	Type:  "document",
	Fields: []Type{
		{Name: "title", Title: "Title", Type: "string", Required: true},
		{Name: "slug", Title: "Slug", Type: "slug", Required: true, Options: &Options{Source: "title", MaxLength: 96}},
		{Name: "author", Title: "Author", Type: "reference", To: []Reference{{Type: Author.Name}}},
		{
			Name:    "mainImage",
			Title:   "Main image",
			Type:    "image",
			Options: &Options{Hotspot: true},
			Fields: []Type{
				{Name: "alt", Title: "Alternative Text", Type: "string"},
				{Name: "caption", Title: "Caption", Type: "string"},
			},
		},
		{
			Name:  "categories",
			Title: "Categories",
			Type:  "array",
			Of:    []Type{{Type: "reference", To: []Reference{{Type: Category.Name}}}},
		},
		{Name: "publishedAt", Title: "Published at", Type: "datetime"},
		{Name: "excerpt", Title: "Excerpt", Type: "text"},
		{Name: "body", Title: "Body", Type: BlockContent.Name},
	},
}

// Types returns every registered schema type, documents first.
func Types() []Type {
	return []Type{Post, Author, Category, BlockContent}
}
