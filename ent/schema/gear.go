package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

// Gear holds the schema definition for installed plugin packages.
type Gear struct {
	ent.Schema
}

// Fields of the Gear.
func (Gear) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Manifest id: lowercase letters/digits/hyphen, letter-initial"),
		field.String("name"),
		field.String("version").
			Comment("Semver"),
		field.JSON("manifest", &models.Manifest{}),
		field.Enum("origin").
			Values("builtin", "user", "journal"),
		field.Bool("draft").
			Default(false),
		field.Bool("enabled").
			Default(true),
		field.JSON("config", map[string]interface{}{}).
			Optional(),
		field.String("signature").
			Optional().
			Nillable(),
		field.String("checksum").
			Comment("Hex SHA-256 of the package file"),
		field.String("package_path").
			Optional().
			Nillable().
			Comment("On-disk location of the installed package"),
		field.Time("installed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Gear.
func (Gear) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled"),
		index.Fields("origin"),
	}
}
