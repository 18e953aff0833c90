// Package service exposes the reading pipeline's single external entry
// point. Boundary collaborators (CLI, web handler, batch job) hand it a
// validated birth date and optional full name and receive a composed
// report back; everything in between runs in strict data-dependency
// order.
package service
