// Package clientip resolves the address of the client behind an HTTP
// request, honouring common reverse proxy headers.
//
// Proxy headers are trusted as sent, so only rely on them when the service
// runs behind a proxy that overwrites them.
package clientip
