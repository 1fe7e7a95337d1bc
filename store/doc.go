// Package store implements the key-value surfaces the calculators persist their state in.
//
// Every store holds opaque string blobs under string keys. Memory is meant for
// tests and the HTTP server, Dir for the command line, Postgres for a shared
// deployment.
package store
