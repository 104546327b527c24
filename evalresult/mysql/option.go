//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package mysql

import (
	"database/sql"
	"time"
)

// defaultTablePrefix is prepended to the table name.
const defaultTablePrefix = "docretrieval_"

// defaultInitTimeout bounds schema initialization at construction.
const defaultInitTimeout = 10 * time.Second

type options struct {
	dsn         string
	db          *sql.DB
	tablePrefix string
	skipDBInit  bool
	initTimeout time.Duration
}

func newOptions(opt ...Option) *options {
	opts := &options{
		tablePrefix: defaultTablePrefix,
		initTimeout: defaultInitTimeout,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures the MySQL eval result manager.
type Option func(*options)

// WithDSN sets the MySQL data source name used to open the connection.
func WithDSN(dsn string) Option {
	return func(o *options) {
		o.dsn = dsn
	}
}

// WithDB supplies an existing database handle instead of opening one from a
// DSN. The caller remains the owner and Close does not close it.
func WithDB(db *sql.DB) Option {
	return func(o *options) {
		o.db = db
	}
}

// WithTablePrefix overrides the default table name prefix.
func WithTablePrefix(prefix string) Option {
	return func(o *options) {
		o.tablePrefix = prefix
	}
}

// WithSkipDBInit skips schema creation at construction. Use it when the
// schema is managed externally or the account lacks DDL privileges.
func WithSkipDBInit(skip bool) Option {
	return func(o *options) {
		o.skipDBInit = skip
	}
}
