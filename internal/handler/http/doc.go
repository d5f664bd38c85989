// Package http serves the blog REST API: user sign-up and login, user
// administration, post CRUD and /version.
//
// Middleware handles trace IDs, access logging, panic recovery, gzip,
// HashSHA256 body signatures, bearer authentication and per-IP rate
// limiting of the public auth routes.
package http
