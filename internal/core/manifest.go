package core

import (
	"encoding/json"
)

type ManifestEntry struct {
	HTML string `json:"html"`
	CSS  string `json:"css,omitempty"`
	Hash string `json:"hash,omitempty"`
}

type Manifest struct {
	Entries map[string]ManifestEntry `json:"entries"`
}

func NewManifest(page RenderedPage) *Manifest {
	return &Manifest{
		Entries: map[string]ManifestEntry{
			"index": {
				HTML: AssetHref(IndexFile, false),
				CSS:  AssetHref(page.CSSName, false),
				Hash: HashContent(page.CSS),
			},
		},
	}
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Encode writes entries with sorted keys, so equal manifests encode to equal bytes.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func GetAssets(man *Manifest, entryName string) (htmlPath, cssHref string) {
	if man != nil && man.Entries[entryName].HTML != "" {
		entry := man.Entries[entryName]
		return entry.HTML, entry.CSS
	}
	return "/" + IndexFile, ""
}
