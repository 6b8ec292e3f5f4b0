package models

// GearOrigin identifies where a gear package came from.
type GearOrigin string

// Gear origin constants.
const (
	OriginBuiltin GearOrigin = "builtin"
	OriginUser    GearOrigin = "user"
	OriginJournal GearOrigin = "journal"
)

// Valid reports whether the origin is a known value.
func (o GearOrigin) Valid() bool {
	switch o {
	case OriginBuiltin, OriginUser, OriginJournal:
		return true
	}
	return false
}

// Manifest declares a gear's identity, actions, and capability grants.
type Manifest struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Author      string         `json:"author"`
	License     string         `json:"license"`
	Origin      GearOrigin     `json:"origin"`
	Checksum    string         `json:"checksum,omitempty"`
	Signature   string         `json:"signature,omitempty"`
	Draft       bool           `json:"draft,omitempty"`
	Actions     []GearAction   `json:"actions"`
	Permissions GearPermission `json:"permissions"`
	Resources   *GearResources `json:"resources,omitempty"`
}

// GearAction is a single operation a gear exposes.
type GearAction struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	RiskLevel   RiskLevel      `json:"riskLevel,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// GearPermission is the capability grant set declared by a manifest.
type GearPermission struct {
	Filesystem  *FilesystemPermission `json:"filesystem,omitempty"`
	Network     *NetworkPermission    `json:"network,omitempty"`
	Secrets     []string              `json:"secrets,omitempty"`
	Shell       bool                  `json:"shell,omitempty"`
	Environment []string              `json:"environment,omitempty"`
}

// FilesystemPermission lists readable and writable path globs.
type FilesystemPermission struct {
	Read  []string `json:"read,omitempty"`
	Write []string `json:"write,omitempty"`
}

// NetworkPermission lists reachable domains and protocols.
type NetworkPermission struct {
	Domains   []string `json:"domains,omitempty"`
	Protocols []string `json:"protocols,omitempty"`
}

// GearResources caps a sandboxed gear process.
type GearResources struct {
	MaxMemoryMb            int   `json:"maxMemoryMb,omitempty"`
	MaxCPUPercent          int   `json:"maxCpuPercent,omitempty"`
	TimeoutMs              int64 `json:"timeoutMs,omitempty"`
	MaxNetworkBytesPerCall int64 `json:"maxNetworkBytesPerCall,omitempty"`
}

// Resource defaults applied after manifest validation.
const (
	DefaultGearMemoryMb   = 256
	DefaultGearCPUPercent = 50
	DefaultGearTimeoutMs  = 300_000
)

// EffectiveResources returns the manifest's resource caps with defaults
// filled in.
func (m *Manifest) EffectiveResources() GearResources {
	r := GearResources{
		MaxMemoryMb:   DefaultGearMemoryMb,
		MaxCPUPercent: DefaultGearCPUPercent,
		TimeoutMs:     DefaultGearTimeoutMs,
	}
	if m.Resources == nil {
		return r
	}
	if m.Resources.MaxMemoryMb > 0 {
		r.MaxMemoryMb = m.Resources.MaxMemoryMb
	}
	if m.Resources.MaxCPUPercent > 0 {
		r.MaxCPUPercent = m.Resources.MaxCPUPercent
	}
	if m.Resources.TimeoutMs > 0 {
		r.TimeoutMs = m.Resources.TimeoutMs
	}
	r.MaxNetworkBytesPerCall = m.Resources.MaxNetworkBytesPerCall
	return r
}

// HasAction reports whether the manifest declares the named action.
func (m *Manifest) HasAction(name string) bool {
	for _, a := range m.Actions {
		if a.Name == name {
			return true
		}
	}
	return false
}
