// Copyright (c) Jeeplatform
// SPDX-License-Identifier: MPL-2.0

//go:build tools
// +build tools

// This file pins tool dependencies so everyone formats with the same
// gofumpt. Install with:
// $ go generate -tags tools tools/tools.go

package tools

//go:generate go install mvdan.cc/gofumpt

import (
	_ "mvdan.cc/gofumpt"
)
