package mdpdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

type frontMatterEnvelope struct {
	Title    string   `yaml:"title" toml:"title"`
	Author   string   `yaml:"author" toml:"author"`
	Subject  string   `yaml:"subject" toml:"subject"`
	Summary  string   `yaml:"summary" toml:"summary"`
	Keywords []string `yaml:"keywords" toml:"keywords"`
	Tags     []string `yaml:"tags" toml:"tags"`
}

// ParseFrontMatter splits a leading YAML or TOML front matter block from
// src. Without front matter the body is src and the metadata is empty.
func ParseFrontMatter(src []byte) (Metadata, []byte, error) {
	var env frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(src), &env)
	if err != nil {
		return Metadata{}, nil, fmt.Errorf("parse front matter: %w", err)
	}
	meta := Metadata{
		Title:   strings.TrimSpace(env.Title),
		Author:  strings.TrimSpace(env.Author),
		Subject: strings.TrimSpace(env.Subject),
	}
	if meta.Subject == "" {
		meta.Subject = strings.TrimSpace(env.Summary)
	}
	meta.Keywords = append(meta.Keywords, env.Keywords...)
	meta.Keywords = append(meta.Keywords, env.Tags...)
	return meta, body, nil
}
