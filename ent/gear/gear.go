// Code generated by ent, DO NOT EDIT.

package gear

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gear type in the database.
	Label = "gear"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldManifest holds the string denoting the manifest field in the database.
	FieldManifest = "manifest"
	// FieldOrigin holds the string denoting the origin field in the database.
	FieldOrigin = "origin"
	// FieldDraft holds the string denoting the draft field in the database.
	FieldDraft = "draft"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldSignature holds the string denoting the signature field in the database.
	FieldSignature = "signature"
	// FieldChecksum holds the string denoting the checksum field in the database.
	FieldChecksum = "checksum"
	// FieldPackagePath holds the string denoting the package_path field in the database.
	FieldPackagePath = "package_path"
	// FieldInstalledAt holds the string denoting the installed_at field in the database.
	FieldInstalledAt = "installed_at"
	// Table holds the table name of the gear in the database.
	Table = "gears"
)

// Columns holds all SQL columns for gear fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldVersion,
	FieldManifest,
	FieldOrigin,
	FieldDraft,
	FieldEnabled,
	FieldConfig,
	FieldSignature,
	FieldChecksum,
	FieldPackagePath,
	FieldInstalledAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDraft holds the default value on creation for the "draft" field.
	DefaultDraft bool
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultInstalledAt holds the default value on creation for the "installed_at" field.
	DefaultInstalledAt func() time.Time
)

// Origin defines the type for the "origin" enum field.
type Origin string

// Origin values.
const (
	OriginBuiltin Origin = "builtin"
	OriginUser    Origin = "user"
	OriginJournal Origin = "journal"
)

func (o Origin) String() string {
	return string(o)
}

// OriginValidator is a validator for the "origin" field enum values. It is called by the builders before save.
func OriginValidator(o Origin) error {
	switch o {
	case OriginBuiltin, OriginUser, OriginJournal:
		return nil
	default:
		return fmt.Errorf("gear: invalid enum value for origin field: %q", o)
	}
}

// OrderOption defines the ordering options for the Gear queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByOrigin orders the results by the origin field.
func ByOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrigin, opts...).ToFunc()
}

// ByDraft orders the results by the draft field.
func ByDraft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDraft, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// BySignature orders the results by the signature field.
func BySignature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignature, opts...).ToFunc()
}

// ByChecksum orders the results by the checksum field.
func ByChecksum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChecksum, opts...).ToFunc()
}

// ByPackagePath orders the results by the package_path field.
func ByPackagePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackagePath, opts...).ToFunc()
}

// ByInstalledAt orders the results by the installed_at field.
func ByInstalledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstalledAt, opts...).ToFunc()
}
