//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package retrieval

// Defaults for rubric construction.
const (
	// defaultArgName is the tool argument holding the document reference.
	defaultArgName = "section_id"
	// defaultTargetKey is the state key holding the ground-truth documents.
	defaultTargetKey = "target_documents"
)

type options struct {
	argName   string
	targetKey string
	parser    IDParser
}

func newOptions(opt ...Option) *options {
	opts := &options{
		argName:   defaultArgName,
		targetKey: defaultTargetKey,
		parser:    defaultParser,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option customizes rubric construction.
type Option func(*options)

// WithArgName sets the name of the tool argument containing the document
// reference.
func WithArgName(argName string) Option {
	return func(o *options) {
		if argName != "" {
			o.argName = argName
		}
	}
}

// WithTargetKey sets the state key containing the target document IDs.
func WithTargetKey(targetKey string) Option {
	return func(o *options) {
		if targetKey != "" {
			o.targetKey = targetKey
		}
	}
}

// WithDocumentIDParser sets the normalization applied to both retrieved and
// target document identifiers.
func WithDocumentIDParser(parser IDParser) Option {
	return func(o *options) {
		if parser != nil {
			o.parser = parser
		}
	}
}
