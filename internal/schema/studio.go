package schema

const (
	StudioName     = "cortex-blog"
	StudioTitle    = "Cortex Blog"
	DefaultDataset = "production"
	devOrigin      = "http://localhost:3000"
)

type Studio struct {
	Name        string   `json:"name" yaml:"name"`
	Title       string   `json:"title" yaml:"title"`
	ProjectID   string   `json:"projectId" yaml:"projectId"`
	Dataset     string   `json:"dataset" yaml:"dataset"`
	Plugins     []string `json:"plugins" yaml:"plugins"`
	CORSOrigins []string `json:"corsOrigins" yaml:"corsOrigins"`
	Types       []Type   `json:"types" yaml:"types"`
}

// NewStudio builds the studio configuration. The local dev origin is always
// allowed alongside frontendURL.
func NewStudio(projectID, dataset, frontendURL string) Studio {
	if dataset == "" {
		dataset = DefaultDataset
	}

	origins := []string{}
	if frontendURL != "" && frontendURL != "*" {
		origins = append(origins, frontendURL)
	}
	origins = append(origins, devOrigin)

	return Studio{
		Name:        StudioName,
		Title:       StudioTitle,
		ProjectID:   projectID,
		Dataset:     dataset,
		Plugins:     []string{"structure", "vision"},
		CORSOrigins: origins,
		Types:       Types(),
	}
}
