//
// Tencent is pleased to support the open source community by making docretrieval available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// docretrieval is licensed under the Apache License Version 2.0.
//
//

package local

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/docretrieval/evalresult"
	"trpc.group/trpc-go/docretrieval/evalset"
	"trpc.group/trpc-go/docretrieval/service"
)

type evalCaseEvaluationParam struct {
	idx      int
	ctx      context.Context
	req      *service.EvaluateRequest
	evalCase *evalset.EvalCase
	svc      *local
	results  []*evalresult.EvalCaseResult
	wg       *sync.WaitGroup
}

func (p *evalCaseEvaluationParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.req = nil
	p.evalCase = nil
	p.svc = nil
	p.results = nil
	p.wg = nil
}

var evalCaseEvaluationParamPool = &sync.Pool{
	New: func() any { return new(evalCaseEvaluationParam) },
}

func createEvalCaseEvaluationPool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*evalCaseEvaluationParam)
		if !ok {
			panic("eval case evaluation pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			evalCaseEvaluationParamPool.Put(param)
		}()
		param.results[param.idx] = param.svc.evaluateCase(param.ctx, param.req, param.evalCase)
	})
	if err != nil {
		return nil, fmt.Errorf("create eval case evaluation pool: %w", err)
	}
	return pool, nil
}
