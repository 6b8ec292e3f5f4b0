// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gearbox-dev/gearbox/ent/gear"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// Gear is the model entity for the Gear schema.
type Gear struct {
	config `json:"-"`
	// ID of the ent.
	// Manifest id: lowercase letters/digits/hyphen, letter-initial
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Semver
	Version string `json:"version,omitempty"`
	// Manifest holds the value of the "manifest" field.
	Manifest *models.Manifest `json:"manifest,omitempty"`
	// Origin holds the value of the "origin" field.
	Origin gear.Origin `json:"origin,omitempty"`
	// Draft holds the value of the "draft" field.
	Draft bool `json:"draft,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Config holds the value of the "config" field.
	Config map[string]interface{} `json:"config,omitempty"`
	// Signature holds the value of the "signature" field.
	Signature *string `json:"signature,omitempty"`
	// Hex SHA-256 of the package file
	Checksum string `json:"checksum,omitempty"`
	// On-disk location of the installed package
	PackagePath *string `json:"package_path,omitempty"`
	// InstalledAt holds the value of the "installed_at" field.
	InstalledAt  time.Time `json:"installed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Gear) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gear.FieldManifest, gear.FieldConfig:
			values[i] = new([]byte)
		case gear.FieldDraft, gear.FieldEnabled:
			values[i] = new(sql.NullBool)
		case gear.FieldID, gear.FieldName, gear.FieldVersion, gear.FieldOrigin, gear.FieldSignature, gear.FieldChecksum, gear.FieldPackagePath:
			values[i] = new(sql.NullString)
		case gear.FieldInstalledAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Gear fields.
func (_m *Gear) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gear.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case gear.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case gear.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.String
			}
		case gear.FieldManifest:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field manifest", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Manifest); err != nil {
					return fmt.Errorf("unmarshal field manifest: %w", err)
				}
			}
		case gear.FieldOrigin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field origin", values[i])
			} else if value.Valid {
				_m.Origin = gear.Origin(value.String)
			}
		case gear.FieldDraft:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field draft", values[i])
			} else if value.Valid {
				_m.Draft = value.Bool
			}
		case gear.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case gear.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case gear.FieldSignature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signature", values[i])
			} else if value.Valid {
				_m.Signature = new(string)
				*_m.Signature = value.String
			}
		case gear.FieldChecksum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checksum", values[i])
			} else if value.Valid {
				_m.Checksum = value.String
			}
		case gear.FieldPackagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field package_path", values[i])
			} else if value.Valid {
				_m.PackagePath = new(string)
				*_m.PackagePath = value.String
			}
		case gear.FieldInstalledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field installed_at", values[i])
			} else if value.Valid {
				_m.InstalledAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Gear.
// This includes values selected through modifiers, order, etc.
func (_m *Gear) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Gear.
// Note that you need to call Gear.Unwrap() before calling this method if this Gear
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Gear) Update() *GearUpdateOne {
	return NewGearClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Gear entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Gear) Unwrap() *Gear {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Gear is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Gear) String() string {
	var builder strings.Builder
	builder.WriteString("Gear(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(_m.Version)
	builder.WriteString(", ")
	builder.WriteString("manifest=")
	builder.WriteString(fmt.Sprintf("%v", _m.Manifest))
	builder.WriteString(", ")
	builder.WriteString("origin=")
	builder.WriteString(fmt.Sprintf("%v", _m.Origin))
	builder.WriteString(", ")
	builder.WriteString("draft=")
	builder.WriteString(fmt.Sprintf("%v", _m.Draft))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	if v := _m.Signature; v != nil {
		builder.WriteString("signature=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("checksum=")
	builder.WriteString(_m.Checksum)
	builder.WriteString(", ")
	if v := _m.PackagePath; v != nil {
		builder.WriteString("package_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("installed_at=")
	builder.WriteString(_m.InstalledAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Gears is a parsable slice of Gear.
type Gears []*Gear
