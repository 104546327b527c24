//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package local

// defaultBaseDir is the default directory for eval set result files.
const defaultBaseDir = "evalset_results"

type options struct {
	baseDir string
}

func newOptions(opt ...Option) *options {
	opts := &options{baseDir: defaultBaseDir}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures the local eval result manager.
type Option func(*options)

// WithBaseDir sets the directory result files are stored under.
func WithBaseDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.baseDir = dir
		}
	}
}
