package model

type Namespace struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	FullPath string `json:"full_path"`
	WebURL   string `json:"web_url"`
}

type Project struct {
	ID                int64     `json:"id"`
	Description       string    `json:"description"`
	Name              string    `json:"name"`
	NameWithNamespace string    `json:"name_with_namespace"`
	Path              string    `json:"path"`
	PathWithNamespace string    `json:"path_with_namespace"`
	CreatedAt         string    `json:"created_at"`
	WebURL            string    `json:"web_url"`
	LastActivityAt    string    `json:"last_activity_at"`
	Archived          bool      `json:"archived"`
	Namespace         Namespace `json:"namespace"`
}

// DisplayName is the label used in progress and result output. Synthetic
// projects resolved from a raw numeric id carry the id string in Name and
// nothing else.
func (p Project) DisplayName() string {
	if p.NameWithNamespace != "" {
		return p.NameWithNamespace
	}
	if p.PathWithNamespace != "" {
		return p.PathWithNamespace
	}
	return p.Name
}
