package auth

// RoleAdmin is the only role the console issues. There is no finer-grained
// permission model: any valid admin token may perform any mutation.
const RoleAdmin = "admin"
