package gear

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/gearbox-dev/gearbox/ent"
	entgear "github.com/gearbox-dev/gearbox/ent/gear"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// ErrNotFound is returned when a gear id is not installed.
var ErrNotFound = fmt.Errorf("gear not found")

// ErrAlreadyInstalled is returned when installing an id that exists.
var ErrAlreadyInstalled = fmt.Errorf("gear already installed")

// ScanError carries the vulnerability findings that blocked an install.
type ScanError struct {
	GearID string
	Issues []Issue
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("gear %s failed vulnerability scan: %v", e.GearID, e.Issues)
}

// cacheEntry is the immutable per-gear snapshot held by the lookup
// cache. Only enabled gears appear in the cache.
type cacheEntry struct {
	Manifest    *models.Manifest
	Checksum    string
	PackagePath string
	Config      map[string]any
}

// Registry manages installed gears. Durable state lives in the gears
// table; reads on the hot path (prompt construction, dispatch checks)
// go through an in-memory copy-on-write cache of enabled gears so a
// lookup never touches the database.
type Registry struct {
	client *ent.Client

	mu    sync.RWMutex
	cache map[string]*cacheEntry
}

// NewRegistry creates a registry with an empty cache. Call LoadCache
// before serving lookups.
func NewRegistry(client *ent.Client) *Registry {
	return &Registry{client: client, cache: map[string]*cacheEntry{}}
}

// LoadCache replaces the lookup cache with the enabled gears from the
// database.
func (r *Registry) LoadCache(ctx context.Context) error {
	rows, err := r.client.Gear.Query().
		Where(entgear.EnabledEQ(true)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("loading gear cache: %w", err)
	}

	next := make(map[string]*cacheEntry, len(rows))
	for _, row := range rows {
		next[row.ID] = entryFromRow(row)
	}

	r.mu.Lock()
	r.cache = next
	r.mu.Unlock()

	slog.Info("Gear cache loaded", "enabled_gears", len(next))
	return nil
}

// Install validates, scans, checksums, and persists a new gear. The id
// must not already be installed. The gear is enabled immediately.
func (r *Registry) Install(ctx context.Context, m *models.Manifest, packagePath string) (*ent.Gear, error) {
	if err := ValidateManifest(m); err != nil {
		return nil, err
	}
	if issues := Scan(m); len(issues) > 0 {
		return nil, &ScanError{GearID: m.ID, Issues: issues}
	}

	checksum, err := ComputeChecksum(packagePath)
	if err != nil {
		return nil, err
	}
	m.Checksum = checksum

	exists, err := r.client.Gear.Query().Where(entgear.IDEQ(m.ID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking gear %s: %w", m.ID, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyInstalled, m.ID)
	}

	create := r.client.Gear.Create().
		SetID(m.ID).
		SetName(m.Name).
		SetVersion(m.Version).
		SetManifest(m).
		SetOrigin(entgear.Origin(m.Origin)).
		SetDraft(m.Draft).
		SetEnabled(true).
		SetChecksum(checksum).
		SetPackagePath(packagePath)
	if m.Signature != "" {
		create.SetSignature(m.Signature)
	}
	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("installing gear %s: %w", m.ID, err)
	}

	r.cachePut(row.ID, entryFromRow(row))
	slog.Info("Gear installed",
		"gear_id", row.ID,
		"version", row.Version,
		"origin", row.Origin)
	return row, nil
}

// InstallBuiltin upserts a built-in gear. It is idempotent so startup
// can re-register the built-in set on every boot. Built-in gears have
// no package file; the checksum comes from the manifest.
func (r *Registry) InstallBuiltin(ctx context.Context, m *models.Manifest) (*ent.Gear, error) {
	m.Origin = models.OriginBuiltin
	if err := ValidateManifest(m); err != nil {
		return nil, err
	}
	if issues := Scan(m); len(issues) > 0 {
		return nil, &ScanError{GearID: m.ID, Issues: issues}
	}

	existing, err := r.client.Gear.Query().Where(entgear.IDEQ(m.ID)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("checking builtin gear %s: %w", m.ID, err)
	}

	var row *ent.Gear
	if existing != nil {
		row, err = existing.Update().
			SetName(m.Name).
			SetVersion(m.Version).
			SetManifest(m).
			SetChecksum(m.Checksum).
			Save(ctx)
	} else {
		row, err = r.client.Gear.Create().
			SetID(m.ID).
			SetName(m.Name).
			SetVersion(m.Version).
			SetManifest(m).
			SetOrigin(entgear.OriginBuiltin).
			SetEnabled(true).
			SetChecksum(m.Checksum).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("registering builtin gear %s: %w", m.ID, err)
	}

	if row.Enabled {
		r.cachePut(row.ID, entryFromRow(row))
	}
	return row, nil
}

// Uninstall removes a gear and evicts it from the cache.
func (r *Registry) Uninstall(ctx context.Context, id string) error {
	n, err := r.client.Gear.Delete().Where(entgear.IDEQ(id)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("uninstalling gear %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	r.cacheEvict(id)
	slog.Info("Gear uninstalled", "gear_id", id)
	return nil
}

// Get returns the stored gear row.
func (r *Registry) Get(ctx context.Context, id string) (*ent.Gear, error) {
	row, err := r.client.Gear.Query().Where(entgear.IDEQ(id)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading gear %s: %w", id, err)
	}
	return row, nil
}

// ListFilter narrows List results. Nil fields match everything.
type ListFilter struct {
	Origin  *models.GearOrigin
	Enabled *bool
}

// List returns installed gears ordered by id.
func (r *Registry) List(ctx context.Context, filter ListFilter) ([]*ent.Gear, error) {
	q := r.client.Gear.Query().Order(ent.Asc(entgear.FieldID))
	if filter.Origin != nil {
		q = q.Where(entgear.OriginEQ(entgear.Origin(*filter.Origin)))
	}
	if filter.Enabled != nil {
		q = q.Where(entgear.EnabledEQ(*filter.Enabled))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing gears: %w", err)
	}
	return rows, nil
}

// Enable marks a gear enabled and adds it to the lookup cache.
func (r *Registry) Enable(ctx context.Context, id string) error {
	row, err := r.setEnabled(ctx, id, true)
	if err != nil {
		return err
	}
	r.cachePut(id, entryFromRow(row))
	slog.Info("Gear enabled", "gear_id", id)
	return nil
}

// Disable marks a gear disabled and evicts it from the lookup cache,
// making it invisible to the planner immediately.
func (r *Registry) Disable(ctx context.Context, id string) error {
	if _, err := r.setEnabled(ctx, id, false); err != nil {
		return err
	}
	r.cacheEvict(id)
	slog.Info("Gear disabled", "gear_id", id)
	return nil
}

func (r *Registry) setEnabled(ctx context.Context, id string, enabled bool) (*ent.Gear, error) {
	row, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	row, err = row.Update().SetEnabled(enabled).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating gear %s: %w", id, err)
	}
	return row, nil
}

// UpdateConfig replaces a gear's runtime configuration.
func (r *Registry) UpdateConfig(ctx context.Context, id string, cfg map[string]any) error {
	row, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	row, err = row.Update().SetConfig(cfg).Save(ctx)
	if err != nil {
		return fmt.Errorf("updating gear %s config: %w", id, err)
	}
	if row.Enabled {
		r.cachePut(id, entryFromRow(row))
	}
	return nil
}

// GetConfig returns a gear's runtime configuration.
func (r *Registry) GetConfig(ctx context.Context, id string) (map[string]any, error) {
	row, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return row.Config, nil
}

// IsEnabled reports whether a gear is enabled, from the cache only.
func (r *Registry) IsEnabled(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.cache[id]
	return ok
}

// GetManifest returns an enabled gear's manifest from the cache, or nil
// if the gear is unknown or disabled.
func (r *Registry) GetManifest(id string) *models.Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if entry, ok := r.cache[id]; ok {
		return entry.Manifest
	}
	return nil
}

// GetChecksum returns an enabled gear's package checksum from the
// cache.
func (r *Registry) GetChecksum(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.cache[id]
	if !ok {
		return "", false
	}
	return entry.Checksum, true
}

// GetPackagePath returns an enabled gear's installed package location.
// Built-in gears have no package file and return an empty path.
func (r *Registry) GetPackagePath(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.cache[id]
	if !ok {
		return "", false
	}
	return entry.PackagePath, true
}

// Manifests returns the enabled manifests ordered by gear id. This is
// the planner's catalog view.
func (r *Registry) Manifests() []*models.Manifest {
	r.mu.RLock()
	out := make([]*models.Manifest, 0, len(r.cache))
	for _, entry := range r.cache {
		out = append(out, entry.Manifest)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// cachePut copies the cache and inserts the entry. Readers holding the
// old map are unaffected.
func (r *Registry) cachePut(id string, entry *cacheEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make(map[string]*cacheEntry, len(r.cache)+1)
	for k, v := range r.cache {
		next[k] = v
	}
	next[id] = entry
	r.cache = next
}

func (r *Registry) cacheEvict(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make(map[string]*cacheEntry, len(r.cache))
	for k, v := range r.cache {
		if k != id {
			next[k] = v
		}
	}
	r.cache = next
}

func entryFromRow(row *ent.Gear) *cacheEntry {
	entry := &cacheEntry{
		Manifest: row.Manifest,
		Checksum: row.Checksum,
		Config:   row.Config,
	}
	if row.PackagePath != nil {
		entry.PackagePath = *row.PackagePath
	}
	return entry
}
