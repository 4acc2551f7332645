// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

// package build contains build information for the loglens module.
package build

import (
	_ "embed"
)

//go:embed version.txt
var Version string
