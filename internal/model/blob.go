package model

import "strings"

// Blob is one code match from the project-scoped blob search endpoint.
type Blob struct {
	Basename  string `json:"basename"`
	Data      string `json:"data"`
	Path      string `json:"path"`
	Filename  string `json:"filename"`
	ID        *int64 `json:"id"`
	Ref       string `json:"ref"`
	Startline int    `json:"startline"`
	ProjectID int64  `json:"project_id"`
}

// Lines splits the matched snippet, dropping a single trailing newline so a
// "foo\n" payload renders as one line, not two.
func (b Blob) Lines() []string {
	return strings.Split(strings.TrimSuffix(b.Data, "\n"), "\n")
}

type Version struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
}
