// Package permission define el modelo de permisos por rol: un mapeo estático
// rol → conjunto de permisos y la función de guardia que consulta la capa
// HTTP antes de despachar cada operación protegida.
package permission

// Roles válidos del sistema.
const (
	RoleAdmin      = "admin"      // administra usuarios y roles, acceso total
	RoleSupervisor = "supervisor" // gestiona ítems y reportes
	RoleTechnician = "technician" // consulta ítems y registra consumos
)

// Permission identifica una capacidad concreta de la aplicación.
type Permission string

// Permisos de la aplicación.
const (
	ItemsRead          Permission = "items.read"
	ItemsWrite         Permission = "items.write"
	ConsumptionsCreate Permission = "consumptions.create"
	ReportsRead        Permission = "reports.read"
	UsersManage        Permission = "users.manage"
)

// rolePermissions mapeo estático rol → permisos. Es la única fuente de verdad
// del modelo; no hay permisos por usuario ni asignación dinámica.
var rolePermissions = map[string][]Permission{
	RoleAdmin: {
		ItemsRead, ItemsWrite, ConsumptionsCreate, ReportsRead, UsersManage,
	},
	RoleSupervisor: {
		ItemsRead, ItemsWrite, ConsumptionsCreate, ReportsRead,
	},
	RoleTechnician: {
		ItemsRead, ConsumptionsCreate,
	},
}

// Allowed responde si el rol tiene el permiso. Roles desconocidos no tienen
// ningún permiso.
func Allowed(role string, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// PermissionsFor devuelve la lista de permisos de un rol (copia defensiva
// para que el caller no pueda mutar el mapeo).
func PermissionsFor(role string) []Permission {
	perms := rolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// ValidRole responde si el rol existe en el modelo.
func ValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}
