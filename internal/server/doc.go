// Package server exposes rep dispatch as a small JSON API built on chi.
package server
