package model

const (
	BlockTypeBlock = "block"
	BlockTypeImage = "image"
	BlockTypeCode  = "code"
)

// Block is one node of a rich-text body. Text blocks use Style, ListItem,
// Children and MarkDefs; image nodes use Asset, Alt and Caption; code nodes
// use Language and Code.
type Block struct {
	Type     string      `json:"_type"`
	Key      string      `json:"_key,omitempty"`
	Style    string      `json:"style,omitempty"`
	ListItem string      `json:"listItem,omitempty"`
	Level    int         `json:"level,omitempty"`
	Children []Span      `json:"children,omitempty"`
	MarkDefs []MarkDef   `json:"markDefs,omitempty"`
	Asset    *ImageAsset `json:"asset,omitempty"`
	Alt      string      `json:"alt,omitempty"`
	Caption  string      `json:"caption,omitempty"`
	Language string      `json:"language,omitempty"`
	Code     string      `json:"code,omitempty"`
}

type Span struct {
	Type  string   `json:"_type,omitempty"`
	Key   string   `json:"_key,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}
