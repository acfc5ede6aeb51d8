package genes

// Role classifies a gene's developmental role in the neural crest gene
// regulatory network. Roles drive grouping and coloring in derived reports.
type Role string

// String returns the string representation of a Role.
func (r Role) String() string {
	return string(r)
}

// Role constants for compile-time safety and consistency.
const (
	RoleBorderSpec   Role = "border_spec"   // neural plate border specification
	RoleNCSpecifier  Role = "nc_specifier"  // neural crest specifiers
	RoleEMTMigration Role = "emt_migration" // EMT and migration
	RoleSignaling    Role = "signaling"     // signaling pathways (BMP, WNT, FGF, SHH, NOTCH, EDN, RA)
	RoleCraniofacial Role = "craniofacial"  // craniofacial patterning and disease
	RoleMelanocyte   Role = "melanocyte"    // melanocyte / pigmentation
	RoleEnteric      Role = "enteric"       // enteric nervous system
	RoleCardiac      Role = "cardiac"       // cardiac neural crest
)

// AllRoles returns all roles in canonical display order.
func AllRoles() []Role {
	return []Role{
		RoleBorderSpec,
		RoleNCSpecifier,
		RoleEMTMigration,
		RoleSignaling,
		RoleCraniofacial,
		RoleMelanocyte,
		RoleEnteric,
		RoleCardiac,
	}
}

// IsValid reports whether the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleBorderSpec, RoleNCSpecifier, RoleEMTMigration, RoleSignaling,
		RoleCraniofacial, RoleMelanocyte, RoleEnteric, RoleCardiac:
		return true
	}
	return false
}

// roleLabels maps each role to its human-readable display label.
var roleLabels = map[Role]string{
	RoleBorderSpec:   "Border specification",
	RoleNCSpecifier:  "NC specifier",
	RoleEMTMigration: "EMT / migration",
	RoleSignaling:    "Signaling",
	RoleCraniofacial: "Craniofacial",
	RoleMelanocyte:   "Melanocyte",
	RoleEnteric:      "Enteric NS",
	RoleCardiac:      "Cardiac NC",
}

// roleColors maps each role to its hex display color.
var roleColors = map[Role]string{
	RoleBorderSpec:   "#58a6ff",
	RoleNCSpecifier:  "#a371f7",
	RoleEMTMigration: "#3fb950",
	RoleSignaling:    "#d29922",
	RoleCraniofacial: "#f85149",
	RoleMelanocyte:   "#db61a2",
	RoleEnteric:      "#79c0ff",
	RoleCardiac:      "#f0883e",
}

// Label returns the human-readable display label for the role.
func (r Role) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return string(r)
}

// Color returns the hex display color for the role.
func (r Role) Color() string {
	if color, ok := roleColors[r]; ok {
		return color
	}
	return "#999999"
}
