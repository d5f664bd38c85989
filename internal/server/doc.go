// Package server runs the blog API over HTTP and the health service over
// gRPC, and stops both on SIGINT/SIGTERM.
package server
