// Package ldap provides the LDAP transport layer used to talk to Active
// Directory domain controllers: SRV-based server discovery, a pooled
// connection client with retry and re-authentication, simple-bind and
// Kerberos (GSSAPI) authentication, and helpers for the AD-specific wire
// formats (RFC 4514 DN escaping, mixed-endian objectGUID, binary objectSid).
//
// Higher layers should not touch go-ldap directly; they consume the Client
// interface and the typed request/result structs defined here.
package ldap
