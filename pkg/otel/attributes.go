// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package otel

// Constants for commonly used OTEL attribute names.
// Note: attribute names are an open set, here we define just those we need as literals in loglens code.
const (
	AttrServiceName  = "service.name"
	AttrScopeName    = "scope.name"
	AttrScopeVersion = "scope.version"
)
