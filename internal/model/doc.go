// Package model defines the domain types for the Biolink API.
//
// The central entity is Account: a public link-in-bio profile with an
// ordered list of links, a set of platform connections, a follow graph
// (followers/following ID sets with denormalized counters), and view/click
// counters. GlobalMeta is the singleton holding site-wide counters.
//
// The package also defines the RFC 9457 Problem Details error model used by
// all HTTP responses, along with typed error codes and constructors.
package model
