// Package http implements the gateway's HTTP surface: the version and
// delta-sync endpoints clients poll, the batch asset-URL resolver, the
// token-checked asset download route and the admin mutation routes. Every
// error leaves the package as the uniform JSON envelope the mobile client
// matches on.
package http
