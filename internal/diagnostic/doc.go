// Package diagnostic provides structured errors and warnings raised while
// reading directives and building descriptors.
//
// Every diagnostic carries a stable code, the native type it concerns and,
// where relevant, the field, variant or option. Any error diagnostic aborts
// generation before a single file is written.
package diagnostic
