package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/prodipto2001/journal-stitch/pkg/entry"
	"github.com/prodipto2001/journal-stitch/pkg/profile"
)

const (
	keyProfile = "profile"
	keyEntries = "entries"
)

// Persistence is the local persistence contract for the journal. Reads never
// fail: a missing, corrupt, or misshapen value degrades to nil/empty. Writes
// are best-effort and silently no-op on storage failure.
type Persistence interface {
	LoadProfile() *profile.Profile
	SaveProfile(p *profile.Profile)
	LoadEntries() []entry.Entry
	SaveEntries(list []entry.Entry)
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// flatTransform keeps both keys as plain files directly under the base path.
func flatTransform(string) []string { return []string{} }

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) LoadProfile() *profile.Profile {
	val, err := p.d.Read(keyProfile)
	if err != nil {
		return nil
	}
	var pr profile.Profile
	if err := json.Unmarshal(val, &pr); err != nil {
		return nil
	}
	if strings.TrimSpace(pr.Name) == "" {
		return nil
	}
	return &pr
}

func (p *persistence) SaveProfile(pr *profile.Profile) {
	if pr == nil {
		return
	}
	data, err := json.Marshal(pr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: encode profile: %v\n", err)
		return
	}
	if err := p.d.Write(keyProfile, data); err != nil {
		fmt.Fprintf(os.Stderr, "store: write profile: %v\n", err)
	}
}

// LoadEntries returns the persisted entry list. Records without a numeric id
// are dropped; a missing badges field defaults to an empty list.
func (p *persistence) LoadEntries() []entry.Entry {
	out := make([]entry.Entry, 0)

	val, err := p.d.Read(keyEntries)
	if err != nil {
		return out
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(val, &raw); err != nil {
		return out
	}

	for _, rec := range raw {
		var probe struct {
			ID *float64 `json:"id"`
		}
		if err := json.Unmarshal(rec, &probe); err != nil || probe.ID == nil {
			continue
		}
		var e entry.Entry
		if err := json.Unmarshal(rec, &e); err != nil {
			continue
		}
		if e.Badges == nil {
			e.Badges = []entry.Badge{}
		}
		out = append(out, e)
	}
	return out
}

func (p *persistence) SaveEntries(list []entry.Entry) {
	if list == nil {
		list = []entry.Entry{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: encode entries: %v\n", err)
		return
	}
	if err := p.d.Write(keyEntries, data); err != nil {
		fmt.Fprintf(os.Stderr, "store: write entries: %v\n", err)
	}
}
