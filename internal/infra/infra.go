// Package infra holds the shared plumbing used by the article fetcher:
// a TTL cache for downloaded pages and per-host rate limiting.
package infra
