// Code generated by ent, DO NOT EDIT.

package gear

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gearbox-dev/gearbox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Gear {
	return predicate.Gear(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Gear {
	return predicate.Gear(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Gear {
	return predicate.Gear(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Gear {
	return predicate.Gear(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Gear {
	return predicate.Gear(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Gear {
	return predicate.Gear(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Gear {
	return predicate.Gear(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Gear {
	return predicate.Gear(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Gear {
	return predicate.Gear(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldName, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldVersion, v))
}

// Draft applies equality check predicate on the "draft" field. It's identical to DraftEQ.
func Draft(v bool) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldDraft, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldEnabled, v))
}

// Signature applies equality check predicate on the "signature" field. It's identical to SignatureEQ.
func Signature(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldSignature, v))
}

// Checksum applies equality check predicate on the "checksum" field. It's identical to ChecksumEQ.
func Checksum(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldChecksum, v))
}

// PackagePath applies equality check predicate on the "package_path" field. It's identical to PackagePathEQ.
func PackagePath(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldPackagePath, v))
}

// InstalledAt applies equality check predicate on the "installed_at" field. It's identical to InstalledAtEQ.
func InstalledAt(v time.Time) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldInstalledAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Gear {
	return predicate.Gear(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Gear {
	return predicate.Gear(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Gear {
	return predicate.Gear(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Gear {
	return predicate.Gear(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Gear {
	return predicate.Gear(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Gear {
	return predicate.Gear(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Gear {
	return predicate.Gear(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Gear {
	return predicate.Gear(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Gear {
	return predicate.Gear(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Gear {
	return predicate.Gear(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Gear {
	return predicate.Gear(sql.FieldContainsFold(FieldName, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.Gear {
	return predicate.Gear(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.Gear {
	return predicate.Gear(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.Gear {
	return predicate.Gear(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.Gear {
	return predicate.Gear(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.Gear {
	return predicate.Gear(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.Gear {
	return predicate.Gear(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.Gear {
	return predicate.Gear(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.Gear {
	return predicate.Gear(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.Gear {
	return predicate.Gear(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.Gear {
	return predicate.Gear(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.Gear {
	return predicate.Gear(sql.FieldContainsFold(FieldVersion, v))
}

// OriginEQ applies the EQ predicate on the "origin" field.
func OriginEQ(v Origin) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldOrigin, v))
}

// OriginNEQ applies the NEQ predicate on the "origin" field.
func OriginNEQ(v Origin) predicate.Gear {
	return predicate.Gear(sql.FieldNEQ(FieldOrigin, v))
}

// OriginIn applies the In predicate on the "origin" field.
func OriginIn(vs ...Origin) predicate.Gear {
	return predicate.Gear(sql.FieldIn(FieldOrigin, vs...))
}

// OriginNotIn applies the NotIn predicate on the "origin" field.
func OriginNotIn(vs ...Origin) predicate.Gear {
	return predicate.Gear(sql.FieldNotIn(FieldOrigin, vs...))
}

// DraftEQ applies the EQ predicate on the "draft" field.
func DraftEQ(v bool) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldDraft, v))
}

// DraftNEQ applies the NEQ predicate on the "draft" field.
func DraftNEQ(v bool) predicate.Gear {
	return predicate.Gear(sql.FieldNEQ(FieldDraft, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Gear {
	return predicate.Gear(sql.FieldNEQ(FieldEnabled, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.Gear {
	return predicate.Gear(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.Gear {
	return predicate.Gear(sql.FieldNotNull(FieldConfig))
}

// SignatureEQ applies the EQ predicate on the "signature" field.
func SignatureEQ(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldSignature, v))
}

// SignatureNEQ applies the NEQ predicate on the "signature" field.
func SignatureNEQ(v string) predicate.Gear {
	return predicate.Gear(sql.FieldNEQ(FieldSignature, v))
}

// SignatureIn applies the In predicate on the "signature" field.
func SignatureIn(vs ...string) predicate.Gear {
	return predicate.Gear(sql.FieldIn(FieldSignature, vs...))
}

// SignatureNotIn applies the NotIn predicate on the "signature" field.
func SignatureNotIn(vs ...string) predicate.Gear {
	return predicate.Gear(sql.FieldNotIn(FieldSignature, vs...))
}

// SignatureGT applies the GT predicate on the "signature" field.
func SignatureGT(v string) predicate.Gear {
	return predicate.Gear(sql.FieldGT(FieldSignature, v))
}

// SignatureGTE applies the GTE predicate on the "signature" field.
func SignatureGTE(v string) predicate.Gear {
	return predicate.Gear(sql.FieldGTE(FieldSignature, v))
}

// SignatureLT applies the LT predicate on the "signature" field.
func SignatureLT(v string) predicate.Gear {
	return predicate.Gear(sql.FieldLT(FieldSignature, v))
}

// SignatureLTE applies the LTE predicate on the "signature" field.
func SignatureLTE(v string) predicate.Gear {
	return predicate.Gear(sql.FieldLTE(FieldSignature, v))
}

// SignatureContains applies the Contains predicate on the "signature" field.
func SignatureContains(v string) predicate.Gear {
	return predicate.Gear(sql.FieldContains(FieldSignature, v))
}

// SignatureHasPrefix applies the HasPrefix predicate on the "signature" field.
func SignatureHasPrefix(v string) predicate.Gear {
	return predicate.Gear(sql.FieldHasPrefix(FieldSignature, v))
}

// SignatureHasSuffix applies the HasSuffix predicate on the "signature" field.
func SignatureHasSuffix(v string) predicate.Gear {
	return predicate.Gear(sql.FieldHasSuffix(FieldSignature, v))
}

// SignatureIsNil applies the IsNil predicate on the "signature" field.
func SignatureIsNil() predicate.Gear {
	return predicate.Gear(sql.FieldIsNull(FieldSignature))
}

// SignatureNotNil applies the NotNil predicate on the "signature" field.
func SignatureNotNil() predicate.Gear {
	return predicate.Gear(sql.FieldNotNull(FieldSignature))
}

// SignatureEqualFold applies the EqualFold predicate on the "signature" field.
func SignatureEqualFold(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEqualFold(FieldSignature, v))
}

// SignatureContainsFold applies the ContainsFold predicate on the "signature" field.
func SignatureContainsFold(v string) predicate.Gear {
	return predicate.Gear(sql.FieldContainsFold(FieldSignature, v))
}

// ChecksumEQ applies the EQ predicate on the "checksum" field.
func ChecksumEQ(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldChecksum, v))
}

// ChecksumNEQ applies the NEQ predicate on the "checksum" field.
func ChecksumNEQ(v string) predicate.Gear {
	return predicate.Gear(sql.FieldNEQ(FieldChecksum, v))
}

// ChecksumIn applies the In predicate on the "checksum" field.
func ChecksumIn(vs ...string) predicate.Gear {
	return predicate.Gear(sql.FieldIn(FieldChecksum, vs...))
}

// ChecksumNotIn applies the NotIn predicate on the "checksum" field.
func ChecksumNotIn(vs ...string) predicate.Gear {
	return predicate.Gear(sql.FieldNotIn(FieldChecksum, vs...))
}

// ChecksumGT applies the GT predicate on the "checksum" field.
func ChecksumGT(v string) predicate.Gear {
	return predicate.Gear(sql.FieldGT(FieldChecksum, v))
}

// ChecksumGTE applies the GTE predicate on the "checksum" field.
func ChecksumGTE(v string) predicate.Gear {
	return predicate.Gear(sql.FieldGTE(FieldChecksum, v))
}

// ChecksumLT applies the LT predicate on the "checksum" field.
func ChecksumLT(v string) predicate.Gear {
	return predicate.Gear(sql.FieldLT(FieldChecksum, v))
}

// ChecksumLTE applies the LTE predicate on the "checksum" field.
func ChecksumLTE(v string) predicate.Gear {
	return predicate.Gear(sql.FieldLTE(FieldChecksum, v))
}

// ChecksumContains applies the Contains predicate on the "checksum" field.
func ChecksumContains(v string) predicate.Gear {
	return predicate.Gear(sql.FieldContains(FieldChecksum, v))
}

// ChecksumHasPrefix applies the HasPrefix predicate on the "checksum" field.
func ChecksumHasPrefix(v string) predicate.Gear {
	return predicate.Gear(sql.FieldHasPrefix(FieldChecksum, v))
}

// ChecksumHasSuffix applies the HasSuffix predicate on the "checksum" field.
func ChecksumHasSuffix(v string) predicate.Gear {
	return predicate.Gear(sql.FieldHasSuffix(FieldChecksum, v))
}

// ChecksumEqualFold applies the EqualFold predicate on the "checksum" field.
func ChecksumEqualFold(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEqualFold(FieldChecksum, v))
}

// ChecksumContainsFold applies the ContainsFold predicate on the "checksum" field.
func ChecksumContainsFold(v string) predicate.Gear {
	return predicate.Gear(sql.FieldContainsFold(FieldChecksum, v))
}

// PackagePathEQ applies the EQ predicate on the "package_path" field.
func PackagePathEQ(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldPackagePath, v))
}

// PackagePathNEQ applies the NEQ predicate on the "package_path" field.
func PackagePathNEQ(v string) predicate.Gear {
	return predicate.Gear(sql.FieldNEQ(FieldPackagePath, v))
}

// PackagePathIn applies the In predicate on the "package_path" field.
func PackagePathIn(vs ...string) predicate.Gear {
	return predicate.Gear(sql.FieldIn(FieldPackagePath, vs...))
}

// PackagePathNotIn applies the NotIn predicate on the "package_path" field.
func PackagePathNotIn(vs ...string) predicate.Gear {
	return predicate.Gear(sql.FieldNotIn(FieldPackagePath, vs...))
}

// PackagePathGT applies the GT predicate on the "package_path" field.
func PackagePathGT(v string) predicate.Gear {
	return predicate.Gear(sql.FieldGT(FieldPackagePath, v))
}

// PackagePathGTE applies the GTE predicate on the "package_path" field.
func PackagePathGTE(v string) predicate.Gear {
	return predicate.Gear(sql.FieldGTE(FieldPackagePath, v))
}

// PackagePathLT applies the LT predicate on the "package_path" field.
func PackagePathLT(v string) predicate.Gear {
	return predicate.Gear(sql.FieldLT(FieldPackagePath, v))
}

// PackagePathLTE applies the LTE predicate on the "package_path" field.
func PackagePathLTE(v string) predicate.Gear {
	return predicate.Gear(sql.FieldLTE(FieldPackagePath, v))
}

// PackagePathContains applies the Contains predicate on the "package_path" field.
func PackagePathContains(v string) predicate.Gear {
	return predicate.Gear(sql.FieldContains(FieldPackagePath, v))
}

// PackagePathHasPrefix applies the HasPrefix predicate on the "package_path" field.
func PackagePathHasPrefix(v string) predicate.Gear {
	return predicate.Gear(sql.FieldHasPrefix(FieldPackagePath, v))
}

// PackagePathHasSuffix applies the HasSuffix predicate on the "package_path" field.
func PackagePathHasSuffix(v string) predicate.Gear {
	return predicate.Gear(sql.FieldHasSuffix(FieldPackagePath, v))
}

// PackagePathIsNil applies the IsNil predicate on the "package_path" field.
func PackagePathIsNil() predicate.Gear {
	return predicate.Gear(sql.FieldIsNull(FieldPackagePath))
}

// PackagePathNotNil applies the NotNil predicate on the "package_path" field.
func PackagePathNotNil() predicate.Gear {
	return predicate.Gear(sql.FieldNotNull(FieldPackagePath))
}

// PackagePathEqualFold applies the EqualFold predicate on the "package_path" field.
func PackagePathEqualFold(v string) predicate.Gear {
	return predicate.Gear(sql.FieldEqualFold(FieldPackagePath, v))
}

// PackagePathContainsFold applies the ContainsFold predicate on the "package_path" field.
func PackagePathContainsFold(v string) predicate.Gear {
	return predicate.Gear(sql.FieldContainsFold(FieldPackagePath, v))
}

// InstalledAtEQ applies the EQ predicate on the "installed_at" field.
func InstalledAtEQ(v time.Time) predicate.Gear {
	return predicate.Gear(sql.FieldEQ(FieldInstalledAt, v))
}

// InstalledAtNEQ applies the NEQ predicate on the "installed_at" field.
func InstalledAtNEQ(v time.Time) predicate.Gear {
	return predicate.Gear(sql.FieldNEQ(FieldInstalledAt, v))
}

// InstalledAtIn applies the In predicate on the "installed_at" field.
func InstalledAtIn(vs ...time.Time) predicate.Gear {
	return predicate.Gear(sql.FieldIn(FieldInstalledAt, vs...))
}

// InstalledAtNotIn applies the NotIn predicate on the "installed_at" field.
func InstalledAtNotIn(vs ...time.Time) predicate.Gear {
	return predicate.Gear(sql.FieldNotIn(FieldInstalledAt, vs...))
}

// InstalledAtGT applies the GT predicate on the "installed_at" field.
func InstalledAtGT(v time.Time) predicate.Gear {
	return predicate.Gear(sql.FieldGT(FieldInstalledAt, v))
}

// InstalledAtGTE applies the GTE predicate on the "installed_at" field.
func InstalledAtGTE(v time.Time) predicate.Gear {
	return predicate.Gear(sql.FieldGTE(FieldInstalledAt, v))
}

// InstalledAtLT applies the LT predicate on the "installed_at" field.
func InstalledAtLT(v time.Time) predicate.Gear {
	return predicate.Gear(sql.FieldLT(FieldInstalledAt, v))
}

// InstalledAtLTE applies the LTE predicate on the "installed_at" field.
func InstalledAtLTE(v time.Time) predicate.Gear {
	return predicate.Gear(sql.FieldLTE(FieldInstalledAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Gear) predicate.Gear {
	return predicate.Gear(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Gear) predicate.Gear {
	return predicate.Gear(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Gear) predicate.Gear {
	return predicate.Gear(sql.NotPredicates(p))
}
