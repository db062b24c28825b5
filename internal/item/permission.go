package item

// Permissions checked by the HTTP layer before a use case runs.
const (
	PermCreate  = "item:create"
	PermRead    = "item:read"
	PermUpdate  = "item:update"
	PermArchive = "item:archive"
	PermRestore = "item:restore"
	PermDelete  = "item:delete"
)

// AllPermissions lists every item permission, in route order.
var AllPermissions = []string{PermCreate, PermRead, PermUpdate, PermArchive, PermRestore, PermDelete}
