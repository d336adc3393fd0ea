// Package naming provides consistent names for resources created on behalf
// of another resource.
//
// Derived names follow the pattern {owner}-{role}, so a server "web" gets a
// system drive named "web-system".
package naming
